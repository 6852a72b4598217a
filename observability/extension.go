// Package observability provides a metrics extension for Tycoon that records
// lifecycle event counts via a MetricFactory.
package observability

import (
	"context"
	"time"

	"github.com/xraph/tycoon/plugin"
	"github.com/xraph/tycoon/types"
)

// Ensure MetricsExtension implements required interfaces.
var (
	_ plugin.Plugin             = (*MetricsExtension)(nil)
	_ plugin.OnInit             = (*MetricsExtension)(nil)
	_ plugin.OnAccountCreated   = (*MetricsExtension)(nil)
	_ plugin.OnSlotUnlocked     = (*MetricsExtension)(nil)
	_ plugin.OnPremiumSlotAdded = (*MetricsExtension)(nil)
	_ plugin.OnBusinessPlaced   = (*MetricsExtension)(nil)
	_ plugin.OnBusinessUpgraded = (*MetricsExtension)(nil)
	_ plugin.OnBusinessSold     = (*MetricsExtension)(nil)
	_ plugin.OnEarningsAccrued  = (*MetricsExtension)(nil)
	_ plugin.OnEarningsClaimed  = (*MetricsExtension)(nil)
	_ plugin.OnReferralCredited = (*MetricsExtension)(nil)
	_ plugin.OnIntegrityFailure = (*MetricsExtension)(nil)
	_ plugin.OnDueSweep         = (*MetricsExtension)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// Histogram interface for metric histograms.
type Histogram interface {
	Observe(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// MetricsExtension records system-wide lifecycle metrics.
// Register it as a Tycoon plugin to automatically track account metrics.
type MetricsExtension struct {
	factory MetricFactory

	// Account metrics
	AccountCreated Counter

	// Slot metrics
	SlotUnlocked     Counter
	PremiumSlotAdded Counter

	// Business metrics
	BusinessPlaced   Counter
	BusinessUpgraded Counter
	BusinessSold     Counter

	// Earnings metrics
	EarningsAccrued  Counter
	AccruedAmount    Histogram
	EarningsClaimed  Counter
	ClaimedAmount    Histogram
	ReferralCredited Counter

	// Scheduler metrics
	DueSweeps       Counter
	DueSweepSize    Histogram
	DueSweepLatency Histogram

	// Error metrics
	IntegrityFailures Counter
	StoreErrors       Counter
	PluginErrors      Counter
}

// NewMetricsExtension creates a MetricsExtension with the provided MetricFactory.
// Use app.Metrics() in forge extensions.
func NewMetricsExtension(factory MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		factory: factory,

		// Account metrics
		AccountCreated: factory.Counter("tycoon.account.created"),

		// Slot metrics
		SlotUnlocked:     factory.Counter("tycoon.slot.unlocked"),
		PremiumSlotAdded: factory.Counter("tycoon.slot.premium_added"),

		// Business metrics
		BusinessPlaced:   factory.Counter("tycoon.business.placed"),
		BusinessUpgraded: factory.Counter("tycoon.business.upgraded"),
		BusinessSold:     factory.Counter("tycoon.business.sold"),

		// Earnings metrics
		EarningsAccrued:  factory.Counter("tycoon.earnings.accrued"),
		AccruedAmount:    factory.Histogram("tycoon.earnings.accrued_amount"),
		EarningsClaimed:  factory.Counter("tycoon.earnings.claimed"),
		ClaimedAmount:    factory.Histogram("tycoon.earnings.claimed_amount"),
		ReferralCredited: factory.Counter("tycoon.referral.credited"),

		// Scheduler metrics
		DueSweeps:       factory.Counter("tycoon.sweep.runs"),
		DueSweepSize:    factory.Histogram("tycoon.sweep.size"),
		DueSweepLatency: factory.Histogram("tycoon.sweep.latency_ms"),

		// Error metrics
		IntegrityFailures: factory.Counter("tycoon.integrity.failures"),
		StoreErrors:       factory.Counter("tycoon.store.errors"),
		PluginErrors:      factory.Counter("tycoon.plugin.errors"),
	}
}

// Name implements plugin.Plugin.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnInit implements plugin.OnInit.
func (m *MetricsExtension) OnInit(_ context.Context, _ interface{}) error {
	// No initialization needed
	return nil
}

// ──────────────────────────────────────────────────
// Account lifecycle hooks
// ──────────────────────────────────────────────────

// OnAccountCreated implements plugin.OnAccountCreated.
func (m *MetricsExtension) OnAccountCreated(_ context.Context, _ interface{}) error {
	m.AccountCreated.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Slot hooks
// ──────────────────────────────────────────────────

// OnSlotUnlocked implements plugin.OnSlotUnlocked.
func (m *MetricsExtension) OnSlotUnlocked(_ context.Context, _ string, _ int, _ types.Coins) error {
	m.SlotUnlocked.Inc()
	return nil
}

// OnPremiumSlotAdded implements plugin.OnPremiumSlotAdded.
func (m *MetricsExtension) OnPremiumSlotAdded(_ context.Context, _ string, _ int, _ string) error {
	m.PremiumSlotAdded.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Business lifecycle hooks
// ──────────────────────────────────────────────────

// OnBusinessPlaced implements plugin.OnBusinessPlaced.
func (m *MetricsExtension) OnBusinessPlaced(_ context.Context, _ string, _ int, _ interface{}) error {
	m.BusinessPlaced.Inc()
	return nil
}

// OnBusinessUpgraded implements plugin.OnBusinessUpgraded.
func (m *MetricsExtension) OnBusinessUpgraded(_ context.Context, _ string, _ int, _ interface{}, _ types.Coins) error {
	m.BusinessUpgraded.Inc()
	return nil
}

// OnBusinessSold implements plugin.OnBusinessSold.
func (m *MetricsExtension) OnBusinessSold(_ context.Context, _ string, _ int, _ interface{}) error {
	m.BusinessSold.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Earnings hooks
// ──────────────────────────────────────────────────

// OnEarningsAccrued implements plugin.OnEarningsAccrued.
func (m *MetricsExtension) OnEarningsAccrued(_ context.Context, _ string, amount types.Coins, _ bool) error {
	m.EarningsAccrued.Inc()
	m.AccruedAmount.Observe(float64(amount))
	return nil
}

// OnEarningsClaimed implements plugin.OnEarningsClaimed.
func (m *MetricsExtension) OnEarningsClaimed(_ context.Context, _ string, amount types.Coins) error {
	m.EarningsClaimed.Inc()
	m.ClaimedAmount.Observe(float64(amount))
	return nil
}

// OnReferralCredited implements plugin.OnReferralCredited.
func (m *MetricsExtension) OnReferralCredited(_ context.Context, _ string, _ types.Coins) error {
	m.ReferralCredited.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Integrity and scheduler hooks
// ──────────────────────────────────────────────────

// OnIntegrityFailure implements plugin.OnIntegrityFailure.
func (m *MetricsExtension) OnIntegrityFailure(_ context.Context, _ string, _ error) error {
	m.IntegrityFailures.Inc()
	return nil
}

// OnDueSweep implements plugin.OnDueSweep.
func (m *MetricsExtension) OnDueSweep(_ context.Context, count int, elapsed time.Duration) error {
	m.DueSweeps.Inc()
	m.DueSweepSize.Observe(float64(count))
	m.DueSweepLatency.Observe(float64(elapsed.Milliseconds()))
	return nil
}
