// Package plugin provides an extensible plugin system for Tycoon.
// Plugins can hook into various lifecycle events to extend functionality.
package plugin

import (
	"context"
	"time"

	"github.com/xraph/tycoon/types"
)

// Plugin is the base interface that all plugins must implement.
type Plugin interface {
	Name() string
}

// ──────────────────────────────────────────────────
// Lifecycle hooks
// ──────────────────────────────────────────────────

// OnInit is called when the plugin is initialized.
type OnInit interface {
	Plugin
	OnInit(ctx context.Context, engine interface{}) error
}

// OnShutdown is called when the plugin is shutting down.
type OnShutdown interface {
	Plugin
	OnShutdown(ctx context.Context) error
}

// ──────────────────────────────────────────────────
// Account lifecycle hooks
// ──────────────────────────────────────────────────

// OnAccountCreated is called when a new account is created.
type OnAccountCreated interface {
	Plugin
	OnAccountCreated(ctx context.Context, acct interface{}) error
}

// OnEntryPaid is called when an account's entry fee is marked paid.
type OnEntryPaid interface {
	Plugin
	OnEntryPaid(ctx context.Context, owner string) error
}

// ──────────────────────────────────────────────────
// Slot hooks
// ──────────────────────────────────────────────────

// OnSlotUnlocked is called when an account unlocks a regular slot.
type OnSlotUnlocked interface {
	Plugin
	OnSlotUnlocked(ctx context.Context, owner string, slot int, cost types.Coins) error
}

// OnPremiumSlotAdded is called when a premium slot is appended.
type OnPremiumSlotAdded interface {
	Plugin
	OnPremiumSlotAdded(ctx context.Context, owner string, slot int, slotType string) error
}

// ──────────────────────────────────────────────────
// Business lifecycle hooks
// ──────────────────────────────────────────────────

// OnBusinessPlaced is called when a business is placed into a slot.
type OnBusinessPlaced interface {
	Plugin
	OnBusinessPlaced(ctx context.Context, owner string, slot int, biz interface{}) error
}

// OnBusinessUpgraded is called when a business is upgraded in place.
type OnBusinessUpgraded interface {
	Plugin
	OnBusinessUpgraded(ctx context.Context, owner string, slot int, biz interface{}, cost types.Coins) error
}

// OnBusinessSold is called when a business is sold out of a slot.
type OnBusinessSold interface {
	Plugin
	OnBusinessSold(ctx context.Context, owner string, slot int, biz interface{}) error
}

// ──────────────────────────────────────────────────
// Earnings hooks
// ──────────────────────────────────────────────────

// OnEarningsAccrued is called after an accrual pass moves pending value.
type OnEarningsAccrued interface {
	Plugin
	OnEarningsAccrued(ctx context.Context, owner string, amount types.Coins, auto bool) error
}

// OnEarningsClaimed is called when pending earnings are claimed.
type OnEarningsClaimed interface {
	Plugin
	OnEarningsClaimed(ctx context.Context, owner string, amount types.Coins) error
}

// OnReferralCredited is called when a referral bonus is credited.
type OnReferralCredited interface {
	Plugin
	OnReferralCredited(ctx context.Context, owner string, amount types.Coins) error
}

// ──────────────────────────────────────────────────
// Integrity hooks
// ──────────────────────────────────────────────────

// OnIntegrityFailure is called when an account fails its health check.
type OnIntegrityFailure interface {
	Plugin
	OnIntegrityFailure(ctx context.Context, owner string, err error) error
}

// ──────────────────────────────────────────────────
// Scheduler hooks
// ──────────────────────────────────────────────────

// OnDueSweep is called after a poke pass over due accounts completes.
type OnDueSweep interface {
	Plugin
	OnDueSweep(ctx context.Context, count int, elapsed time.Duration) error
}
