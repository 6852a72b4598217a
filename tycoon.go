package tycoon

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/xraph/tycoon/account"
	"github.com/xraph/tycoon/business"
	"github.com/xraph/tycoon/plugin"
	"github.com/xraph/tycoon/store"
	"github.com/xraph/tycoon/types"
)

// Engine is the main account engine. It wires the pure account state
// transitions to a store, a plugin registry, and an optional background
// worker that sweeps due accounts.
type Engine struct {
	store   store.Store
	plugins *plugin.Registry
	logger  *slog.Logger

	// Background worker
	stopChan chan struct{}
	wg       sync.WaitGroup

	// Configuration
	accountConfig account.Config
	pokeInterval  time.Duration
	pokeBatchSize int
}

// New creates a new Engine instance.
func New(s store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:         s,
		plugins:       plugin.NewRegistry(),
		logger:        slog.Default(),
		stopChan:      make(chan struct{}),
		accountConfig: account.DefaultConfig(),
		pokeInterval:  time.Minute,
		pokeBatchSize: 100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Option configures an Engine instance.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
		e.plugins.WithLogger(logger)
	}
}

// WithPlugin registers a plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(e *Engine) {
		_ = e.plugins.Register(p) //nolint:errcheck // best-effort plugin registration during init
	}
}

// WithAccountConfig sets the slot configuration for new accounts.
func WithAccountConfig(cfg account.Config) Option {
	return func(e *Engine) {
		e.accountConfig = cfg
	}
}

// WithPokeConfig configures the due-account sweep worker.
func WithPokeConfig(interval time.Duration, batchSize int) Option {
	return func(e *Engine) {
		e.pokeInterval = interval
		e.pokeBatchSize = batchSize
	}
}

// Start migrates the store, initializes plugins, and begins the poke worker.
func (e *Engine) Start(ctx context.Context) error {
	if err := e.store.Migrate(ctx); err != nil {
		return err
	}

	e.plugins.EmitInit(ctx, e)

	e.wg.Add(1)
	go e.pokeWorker(ctx)

	e.logger.Info("tycoon started",
		"poke_interval", e.pokeInterval,
		"poke_batch_size", e.pokeBatchSize,
	)

	return nil
}

// Stop shuts down the Engine.
func (e *Engine) Stop() error {
	close(e.stopChan)
	e.wg.Wait()

	ctx := context.Background()
	e.plugins.EmitShutdown(ctx)

	return e.store.Close()
}

// Plugins returns the plugin registry.
func (e *Engine) Plugins() *plugin.Registry { return e.plugins }

// ──────────────────────────────────────────────────
// Account Management
// ──────────────────────────────────────────────────

// CreateAccount creates a fresh account for owner. The owner string doubles
// as the structural nonce source: its FNV-64a hash phase-spreads the
// account's earnings schedule once the first business lands.
func (e *Engine) CreateAccount(ctx context.Context, owner string, now time.Time) (*account.Account, error) {
	if owner == "" {
		return nil, &ValidationError{Field: "owner", Message: "must not be empty"}
	}

	a := account.New(owner, now, ownerSeed(owner), e.accountConfig)
	if err := e.store.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	e.plugins.EmitAccountCreated(ctx, a)
	return a, nil
}

// GetAccount retrieves an account by owner.
func (e *Engine) GetAccount(ctx context.Context, owner string) (*account.Account, error) {
	return e.store.GetAccount(ctx, owner)
}

// ListAccounts lists accounts in creation order.
func (e *Engine) ListAccounts(ctx context.Context, opts store.ListOpts) ([]*account.Account, error) {
	return e.store.ListAccounts(ctx, opts)
}

// MarkEntryPaid records that the owner's entry fee cleared. Business
// placement is gated on this flag.
func (e *Engine) MarkEntryPaid(ctx context.Context, owner string, now time.Time) error {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return err
	}

	a.MarkEntryPaid()
	a.Touch(now)
	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return err
	}

	e.plugins.EmitEntryPaid(ctx, owner)
	return nil
}

// ──────────────────────────────────────────────────
// Slot Management
// ──────────────────────────────────────────────────

// UnlockNextSlot unlocks the next locked regular slot, spending cost.
// Returns the unlocked slot index.
func (e *Engine) UnlockNextSlot(ctx context.Context, owner string, cost types.Coins, now time.Time) (int, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return 0, err
	}

	idx := nextLockedRegular(a)
	if err := a.UnlockNextSlot(cost); err != nil {
		return 0, err
	}
	a.Touch(now)

	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return 0, err
	}

	e.plugins.EmitSlotUnlocked(ctx, owner, idx, cost)
	return idx, nil
}

// AddPremiumSlot appends a paid slot of the given type. Returns the new
// slot index.
func (e *Engine) AddPremiumSlot(ctx context.Context, owner string, slotType account.SlotType, cost types.Coins, now time.Time) (int, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return 0, err
	}

	idx := len(a.Slots)
	if err := a.AddPremiumSlot(slotType, cost); err != nil {
		return 0, err
	}
	a.Touch(now)

	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return 0, err
	}

	e.plugins.EmitPremiumSlotAdded(ctx, owner, idx, string(slotType))
	return idx, nil
}

// ──────────────────────────────────────────────────
// Business Lifecycle
// ──────────────────────────────────────────────────

// PlaceBusiness creates a level-1 business of the given kind in the first
// free slot. The account must have its entry fee paid. The first placement
// arms the account's earnings schedule.
func (e *Engine) PlaceBusiness(ctx context.Context, owner string, kind business.Kind, now time.Time) (*business.Business, int, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return nil, 0, err
	}
	if !a.HasPaidEntry {
		return nil, 0, ErrEntryNotPaid
	}

	idx, ok := a.FindFreeSlot()
	if !ok {
		return nil, 0, ErrNoFreeSlot
	}

	b, err := business.New(kind, now)
	if err != nil {
		return nil, 0, err
	}

	if err := a.PlaceBusinessInSlot(idx, *b); err != nil {
		return nil, 0, err
	}
	a.SetEarningsSchedule(now, a.ScheduleSeed)
	a.Touch(now)

	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return nil, 0, err
	}

	e.plugins.EmitBusinessPlaced(ctx, owner, idx, b)
	return b, idx, nil
}

// UpgradeBusiness upgrades the business in the given slot to level. The
// upgrade cost comes from the catalog.
func (e *Engine) UpgradeBusiness(ctx context.Context, owner string, index int, level uint8, now time.Time) (*business.Business, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(a.Slots) {
		return nil, account.ErrInvalidSlotIndex
	}
	slot := a.Slots[index]
	if !slot.Occupied {
		return nil, account.ErrBusinessNotFound
	}

	spec, err := business.SpecFor(slot.Business.Kind)
	if err != nil {
		return nil, err
	}
	replacement, err := slot.Business.Upgraded(level, now)
	if err != nil {
		return nil, err
	}
	cost := spec.Levels[level-1].Cost

	if _, err := a.UpgradeBusinessInSlot(index, cost, *replacement); err != nil {
		return nil, err
	}
	a.Touch(now)

	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return nil, err
	}

	e.plugins.EmitBusinessUpgraded(ctx, owner, index, replacement, cost)
	return replacement, nil
}

// SellBusiness removes the business from the given slot and returns it plus
// the slot's sell-fee discount in basis points. Proceeds settlement is the
// caller's concern.
func (e *Engine) SellBusiness(ctx context.Context, owner string, index int, now time.Time) (business.Business, uint32, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return business.Business{}, 0, err
	}

	removed, discount, err := a.SellBusinessFromSlot(index)
	if err != nil {
		return business.Business{}, 0, err
	}
	a.Touch(now)

	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return business.Business{}, 0, err
	}

	e.plugins.EmitBusinessSold(ctx, owner, index, &removed)
	return removed, discount, nil
}

// ──────────────────────────────────────────────────
// Earnings
// ──────────────────────────────────────────────────

// UpdateEarnings runs a manual accrual pass over every occupied slot.
func (e *Engine) UpdateEarnings(ctx context.Context, owner string, now time.Time) (types.Coins, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return 0, err
	}

	accrued, err := a.UpdateAllSlotEarnings(now)
	if err != nil {
		return 0, err
	}
	a.Touch(now)

	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return 0, err
	}

	if !accrued.IsZero() {
		e.plugins.EmitEarningsAccrued(ctx, owner, accrued, false)
	}
	return accrued, nil
}

// AutoUpdateEarnings runs a schedule-gated accrual pass. A pass before the
// account's next due instant is a no-op.
func (e *Engine) AutoUpdateEarnings(ctx context.Context, owner string, now time.Time) (types.Coins, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return 0, err
	}

	if !a.IsEarningsDue(now) {
		return 0, nil
	}

	accrued, err := a.AutoUpdateEarnings(now)
	if err != nil {
		return 0, err
	}
	a.Touch(now)

	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return 0, err
	}

	if !accrued.IsZero() {
		e.plugins.EmitEarningsAccrued(ctx, owner, accrued, true)
	}
	return accrued, nil
}

// Claim atomically moves all pending value (earnings plus referral) into the
// lifetime earned counter and returns the claimed amount.
func (e *Engine) Claim(ctx context.Context, owner string, now time.Time) (types.Coins, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return 0, err
	}

	claimed, err := a.ClaimAll()
	if err != nil {
		return 0, err
	}
	a.Touch(now)

	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return 0, err
	}

	if !claimed.IsZero() {
		e.plugins.EmitEarningsClaimed(ctx, owner, claimed)
	}
	return claimed, nil
}

// AddReferralBonus credits a referral bonus to the pending referral pool.
func (e *Engine) AddReferralBonus(ctx context.Context, owner string, amount types.Coins, now time.Time) error {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return err
	}

	if err := a.AddReferralBonus(amount); err != nil {
		return err
	}
	a.Touch(now)

	if err := e.store.UpdateAccount(ctx, a); err != nil {
		return err
	}

	e.plugins.EmitReferralCredited(ctx, owner, amount)
	return nil
}

// Claimable returns the total claimable amount without mutating anything.
func (e *Engine) Claimable(ctx context.Context, owner string) (types.Coins, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return 0, err
	}
	return a.Claimable()
}

// ──────────────────────────────────────────────────
// Introspection
// ──────────────────────────────────────────────────

// Summary returns the display projection of an account.
func (e *Engine) Summary(ctx context.Context, owner string) (account.Summary, error) {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return account.Summary{}, err
	}
	return a.Summarize(), nil
}

// HealthCheck verifies the account's structural invariants. A failure is
// reported to plugins before being returned.
func (e *Engine) HealthCheck(ctx context.Context, owner string, now time.Time) error {
	a, err := e.store.GetAccount(ctx, owner)
	if err != nil {
		return err
	}

	if err := a.HealthCheck(now); err != nil {
		e.plugins.EmitIntegrityFailure(ctx, owner, err)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────
// Due sweeping
// ──────────────────────────────────────────────────

// PokeDue lists accounts whose next due instant has passed and runs a
// schedule-gated accrual pass on each. Returns the number of accounts
// swept. Individual account failures are logged and skipped so one bad
// record cannot stall the sweep.
func (e *Engine) PokeDue(ctx context.Context, now time.Time, limit int) (int, error) {
	start := time.Now()

	owners, err := e.store.ListDueAccounts(ctx, now, limit)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, owner := range owners {
		if _, err := e.AutoUpdateEarnings(ctx, owner, now); err != nil {
			e.logger.Error("auto-update failed during sweep",
				"owner", owner,
				"error", err,
			)
			continue
		}
		swept++
	}

	elapsed := time.Since(start)
	e.plugins.EmitDueSweep(ctx, swept, elapsed)

	e.logger.Debug("due sweep complete",
		"due", len(owners),
		"swept", swept,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return swept, nil
}

// pokeWorker periodically sweeps due accounts.
func (e *Engine) pokeWorker(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.pokeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stopChan:
			return
		case <-ticker.C:
			if _, err := e.PokeDue(ctx, time.Now(), e.pokeBatchSize); err != nil {
				e.logger.Error("due sweep failed", "error", err)
			}
		}
	}
}

// ──────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────

// nextLockedRegular returns the index the next unlock will open, or -1 when
// every regular slot is already unlocked.
func nextLockedRegular(a *account.Account) int {
	for i := 0; i < a.Config.RegularSlots && i < len(a.Slots); i++ {
		if !a.Slots[i].Unlocked {
			return i
		}
	}
	return -1
}

// ownerSeed derives the stable per-account schedule seed from the owner id.
func ownerSeed(owner string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(owner)) //nolint:errcheck // hash.Write never fails
	return h.Sum64()
}
