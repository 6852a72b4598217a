package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/xraph/tycoon/types"
)

// Registry manages all registered plugins and provides efficient dispatch.
// It uses type-cached discovery for O(1) dispatch performance.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
	logger  *slog.Logger

	// Type-cached plugin lists for efficient dispatch
	onInit             []OnInit
	onShutdown         []OnShutdown
	onAccountCreated   []OnAccountCreated
	onEntryPaid        []OnEntryPaid
	onSlotUnlocked     []OnSlotUnlocked
	onPremiumSlotAdded []OnPremiumSlotAdded
	onBusinessPlaced   []OnBusinessPlaced
	onBusinessUpgraded []OnBusinessUpgraded
	onBusinessSold     []OnBusinessSold
	onEarningsAccrued  []OnEarningsAccrued
	onEarningsClaimed  []OnEarningsClaimed
	onReferralCredited []OnReferralCredited
	onIntegrityFailure []OnIntegrityFailure
	onDueSweep         []OnDueSweep
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the registry.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register adds a plugin to the registry and caches its interfaces.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check for duplicate
	for _, existing := range r.plugins {
		if existing.Name() == p.Name() {
			return fmt.Errorf("plugin: duplicate registration: %s", p.Name())
		}
	}

	r.plugins = append(r.plugins, p)

	// Type-switch to cache interfaces
	if v, ok := p.(OnInit); ok {
		r.onInit = append(r.onInit, v)
	}
	if v, ok := p.(OnShutdown); ok {
		r.onShutdown = append(r.onShutdown, v)
	}
	if v, ok := p.(OnAccountCreated); ok {
		r.onAccountCreated = append(r.onAccountCreated, v)
	}
	if v, ok := p.(OnEntryPaid); ok {
		r.onEntryPaid = append(r.onEntryPaid, v)
	}
	if v, ok := p.(OnSlotUnlocked); ok {
		r.onSlotUnlocked = append(r.onSlotUnlocked, v)
	}
	if v, ok := p.(OnPremiumSlotAdded); ok {
		r.onPremiumSlotAdded = append(r.onPremiumSlotAdded, v)
	}
	if v, ok := p.(OnBusinessPlaced); ok {
		r.onBusinessPlaced = append(r.onBusinessPlaced, v)
	}
	if v, ok := p.(OnBusinessUpgraded); ok {
		r.onBusinessUpgraded = append(r.onBusinessUpgraded, v)
	}
	if v, ok := p.(OnBusinessSold); ok {
		r.onBusinessSold = append(r.onBusinessSold, v)
	}
	if v, ok := p.(OnEarningsAccrued); ok {
		r.onEarningsAccrued = append(r.onEarningsAccrued, v)
	}
	if v, ok := p.(OnEarningsClaimed); ok {
		r.onEarningsClaimed = append(r.onEarningsClaimed, v)
	}
	if v, ok := p.(OnReferralCredited); ok {
		r.onReferralCredited = append(r.onReferralCredited, v)
	}
	if v, ok := p.(OnIntegrityFailure); ok {
		r.onIntegrityFailure = append(r.onIntegrityFailure, v)
	}
	if v, ok := p.(OnDueSweep); ok {
		r.onDueSweep = append(r.onDueSweep, v)
	}

	r.logger.Info("plugin registered",
		"name", p.Name(),
		"interfaces", r.getImplementedInterfaces(p),
	)

	return nil
}

// getImplementedInterfaces returns a list of interfaces implemented by the plugin.
func (r *Registry) getImplementedInterfaces(p Plugin) []string {
	var interfaces []string
	v := reflect.TypeOf(p)

	// Check each interface
	checkInterface := func(iface reflect.Type, name string) {
		if v.Implements(iface) {
			interfaces = append(interfaces, name)
		}
	}

	// List all interfaces to check
	checkInterface(reflect.TypeOf((*OnInit)(nil)).Elem(), "OnInit")
	checkInterface(reflect.TypeOf((*OnShutdown)(nil)).Elem(), "OnShutdown")
	checkInterface(reflect.TypeOf((*OnAccountCreated)(nil)).Elem(), "OnAccountCreated")
	checkInterface(reflect.TypeOf((*OnSlotUnlocked)(nil)).Elem(), "OnSlotUnlocked")
	checkInterface(reflect.TypeOf((*OnBusinessPlaced)(nil)).Elem(), "OnBusinessPlaced")
	checkInterface(reflect.TypeOf((*OnEarningsAccrued)(nil)).Elem(), "OnEarningsAccrued")
	checkInterface(reflect.TypeOf((*OnEarningsClaimed)(nil)).Elem(), "OnEarningsClaimed")
	checkInterface(reflect.TypeOf((*OnIntegrityFailure)(nil)).Elem(), "OnIntegrityFailure")
	checkInterface(reflect.TypeOf((*OnDueSweep)(nil)).Elem(), "OnDueSweep")

	return interfaces
}

// Get returns a plugin by name.
func (r *Registry) Get(name string) Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plugins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// List returns all registered plugins.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Plugin, len(r.plugins))
	copy(result, r.plugins)
	return result
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// ──────────────────────────────────────────────────
// Event emission methods
// ──────────────────────────────────────────────────

// EmitInit calls OnInit for all plugins that implement it.
func (r *Registry) EmitInit(ctx context.Context, engine interface{}) {
	r.mu.RLock()
	plugins := r.onInit
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnInit(ctx, engine)
		}); err != nil {
			r.logger.Warn("plugin OnInit failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitShutdown calls OnShutdown for all plugins that implement it.
func (r *Registry) EmitShutdown(ctx context.Context) {
	r.mu.RLock()
	plugins := r.onShutdown
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnShutdown(ctx)
		}); err != nil {
			r.logger.Warn("plugin OnShutdown failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitAccountCreated emits an account created event.
func (r *Registry) EmitAccountCreated(ctx context.Context, acct interface{}) {
	r.mu.RLock()
	plugins := r.onAccountCreated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnAccountCreated(ctx, acct)
		}); err != nil {
			r.logger.Warn("plugin OnAccountCreated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitEntryPaid emits an entry fee paid event.
func (r *Registry) EmitEntryPaid(ctx context.Context, owner string) {
	r.mu.RLock()
	plugins := r.onEntryPaid
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnEntryPaid(ctx, owner)
		}); err != nil {
			r.logger.Warn("plugin OnEntryPaid failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitSlotUnlocked emits a slot unlocked event.
func (r *Registry) EmitSlotUnlocked(ctx context.Context, owner string, slot int, cost types.Coins) {
	r.mu.RLock()
	plugins := r.onSlotUnlocked
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnSlotUnlocked(ctx, owner, slot, cost)
		}); err != nil {
			r.logger.Warn("plugin OnSlotUnlocked failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitPremiumSlotAdded emits a premium slot added event.
func (r *Registry) EmitPremiumSlotAdded(ctx context.Context, owner string, slot int, slotType string) {
	r.mu.RLock()
	plugins := r.onPremiumSlotAdded
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnPremiumSlotAdded(ctx, owner, slot, slotType)
		}); err != nil {
			r.logger.Warn("plugin OnPremiumSlotAdded failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitBusinessPlaced emits a business placed event.
func (r *Registry) EmitBusinessPlaced(ctx context.Context, owner string, slot int, biz interface{}) {
	r.mu.RLock()
	plugins := r.onBusinessPlaced
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnBusinessPlaced(ctx, owner, slot, biz)
		}); err != nil {
			r.logger.Warn("plugin OnBusinessPlaced failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitBusinessUpgraded emits a business upgraded event.
func (r *Registry) EmitBusinessUpgraded(ctx context.Context, owner string, slot int, biz interface{}, cost types.Coins) {
	r.mu.RLock()
	plugins := r.onBusinessUpgraded
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnBusinessUpgraded(ctx, owner, slot, biz, cost)
		}); err != nil {
			r.logger.Warn("plugin OnBusinessUpgraded failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitBusinessSold emits a business sold event.
func (r *Registry) EmitBusinessSold(ctx context.Context, owner string, slot int, biz interface{}) {
	r.mu.RLock()
	plugins := r.onBusinessSold
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnBusinessSold(ctx, owner, slot, biz)
		}); err != nil {
			r.logger.Warn("plugin OnBusinessSold failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitEarningsAccrued emits an earnings accrued event.
func (r *Registry) EmitEarningsAccrued(ctx context.Context, owner string, amount types.Coins, auto bool) {
	r.mu.RLock()
	plugins := r.onEarningsAccrued
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnEarningsAccrued(ctx, owner, amount, auto)
		}); err != nil {
			r.logger.Warn("plugin OnEarningsAccrued failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitEarningsClaimed emits an earnings claimed event.
func (r *Registry) EmitEarningsClaimed(ctx context.Context, owner string, amount types.Coins) {
	r.mu.RLock()
	plugins := r.onEarningsClaimed
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnEarningsClaimed(ctx, owner, amount)
		}); err != nil {
			r.logger.Warn("plugin OnEarningsClaimed failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitReferralCredited emits a referral credited event.
func (r *Registry) EmitReferralCredited(ctx context.Context, owner string, amount types.Coins) {
	r.mu.RLock()
	plugins := r.onReferralCredited
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnReferralCredited(ctx, owner, amount)
		}); err != nil {
			r.logger.Warn("plugin OnReferralCredited failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitIntegrityFailure emits an integrity failure event.
func (r *Registry) EmitIntegrityFailure(ctx context.Context, owner string, failure error) {
	r.mu.RLock()
	plugins := r.onIntegrityFailure
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnIntegrityFailure(ctx, owner, failure)
		}); err != nil {
			r.logger.Warn("plugin OnIntegrityFailure failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitDueSweep emits a due sweep completed event.
func (r *Registry) EmitDueSweep(ctx context.Context, count int, elapsed time.Duration) {
	r.mu.RLock()
	plugins := r.onDueSweep
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnDueSweep(ctx, count, elapsed)
		}); err != nil {
			r.logger.Warn("plugin OnDueSweep failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// callWithTimeout calls a plugin function with a timeout.
// Plugins should never block the account pipeline.
func (r *Registry) callWithTimeout(ctx context.Context, pluginName string, fn func() error) error {
	done := make(chan error, 1)

	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		return fmt.Errorf("plugin timeout: %s", pluginName)
	case <-ctx.Done():
		return ctx.Err()
	}
}
