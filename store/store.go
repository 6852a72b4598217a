// Package store defines the storage interface for Tycoon accounts.
//
// An account — including its full slot sequence — is persisted as one
// fixed-capacity serialized record per owner, sized for the maximum
// configured slot count. Every UpdateAccount replaces the whole record
// atomically; there is no partial-row mutation.
package store

import (
	"context"
	"time"

	"github.com/xraph/tycoon/account"
)

// ListOpts controls pagination for account listings.
type ListOpts struct {
	Limit  int
	Offset int
}

// Store is the storage interface all backends implement.
type Store interface {
	// CreateAccount persists a new account record. A record for the same
	// owner is rejected: account creation happens once per owner.
	CreateAccount(ctx context.Context, a *account.Account) error

	// GetAccount loads the full record for an owner.
	GetAccount(ctx context.Context, owner string) (*account.Account, error)

	// UpdateAccount replaces the owner's record with the given state.
	UpdateAccount(ctx context.Context, a *account.Account) error

	// ListAccounts returns account records ordered by creation time.
	ListAccounts(ctx context.Context, opts ListOpts) ([]*account.Account, error)

	// ListDueAccounts returns the owners whose next earnings instant is at
	// or before now, oldest due first, capped at limit. Accounts that never
	// armed their schedule are excluded.
	ListDueAccounts(ctx context.Context, now time.Time, limit int) ([]string, error)

	// Core methods
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
