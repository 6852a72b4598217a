// Package account implements the per-owner ledger and slot inventory at the
// core of Tycoon. Every operation here is a pure, deterministic state
// transition: no I/O, no clocks — all time values are caller-supplied. A
// failed operation leaves the account exactly as it was.
package account

import (
	"errors"
	"time"

	"github.com/xraph/tycoon/business"
	"github.com/xraph/tycoon/types"
)

// Sentinel errors for slot and ledger transitions.
var (
	ErrInvalidSlotIndex    = errors.New("tycoon: invalid slot index")
	ErrBusinessNotFound    = errors.New("tycoon: no business in slot")
	ErrSlotOccupied        = errors.New("tycoon: slot already occupied")
	ErrSlotNotUnlocked     = errors.New("tycoon: slot not unlocked")
	ErrSlotAlreadyUnlocked = errors.New("tycoon: slot already unlocked")
	ErrNoMoreSlotsToUnlock = errors.New("tycoon: no more slots to unlock")
	ErrSlotLimitReached    = errors.New("tycoon: slot capacity reached")
	ErrIntegrity           = errors.New("tycoon: account integrity check failed")
)

// SlotType classifies a slot and keys its yield bonus and sell-fee discount.
type SlotType string

// Slot types. Regular slots are always Basic; purchased premium slots carry
// one of the paid types.
const (
	SlotBasic     SlotType = "basic"
	SlotPremium   SlotType = "premium"
	SlotVIP       SlotType = "vip"
	SlotLegendary SlotType = "legendary"
)

// YieldBonusBps returns the earnings bonus the slot type applies, in
// basis points. Basic slots carry no bonus.
func (t SlotType) YieldBonusBps() uint32 {
	switch t {
	case SlotPremium:
		return 500
	case SlotVIP:
		return 1_000
	case SlotLegendary:
		return 2_000
	default:
		return 0
	}
}

// SellFeeDiscountBps returns the discount off the sale fee for businesses
// sold out of this slot, in basis points. Basic slots carry no discount.
func (t SlotType) SellFeeDiscountBps() uint32 {
	switch t {
	case SlotPremium:
		return 100
	case SlotVIP:
		return 250
	case SlotLegendary:
		return 500
	default:
		return 0
	}
}

// Slot is one fixed inventory position. It holds at most one business;
// Occupied is the explicit presence marker — Business is meaningful only
// while Occupied is true. Once unlocked, a slot never re-locks.
type Slot struct {
	Type           SlotType          `json:"type"`
	Unlocked       bool              `json:"unlocked"`
	Occupied       bool              `json:"occupied"`
	Business       business.Business `json:"business,omitempty"`
	UnlockCostPaid types.Coins       `json:"unlock_cost_paid"`
}

// Config bounds the slot arena and sets the accrual cadence.
type Config struct {
	RegularSlots     int   `json:"regular_slots"`
	PreUnlocked      int   `json:"pre_unlocked"`
	MaxPremiumSlots  int   `json:"max_premium_slots"`
	EarningsInterval int64 `json:"earnings_interval"` // seconds
}

// DefaultConfig is the standard game configuration: six regular slots,
// three unlocked from the start, up to four purchasable premium slots,
// one accrual per day.
func DefaultConfig() Config {
	return Config{
		RegularSlots:     6,
		PreUnlocked:      3,
		MaxPremiumSlots:  4,
		EarningsInterval: 86_400,
	}
}

// MaxSlots is the hard capacity of the slot sequence — the statically
// reserved size of the persisted record.
func (c Config) MaxSlots() int { return c.RegularSlots + c.MaxPremiumSlots }

// Account is the one persisted record per owner: the slot sequence, all
// financial counters, and the accrual schedule. Counters are monotonically
// non-decreasing except the two pending fields, which reset to zero only
// at claim.
type Account struct {
	types.Entity
	Owner  string `json:"owner"`
	Config Config `json:"config"`

	Slots         []Slot `json:"slots"`
	UnlockedSlots int    `json:"unlocked_slots"` // unlocked among the regular positions
	PremiumSlots  int    `json:"premium_slots"`

	TotalInvested     types.Coins `json:"total_invested"`
	TotalUpgradeSpent types.Coins `json:"total_upgrade_spent"`
	TotalSlotSpent    types.Coins `json:"total_slot_spent"`
	TotalEarned       types.Coins `json:"total_earned"`
	PendingEarnings   types.Coins `json:"pending_earnings"`
	PendingReferral   types.Coins `json:"pending_referral_earnings"`

	HasPaidEntry bool `json:"has_paid_entry"`

	FirstBusinessAt time.Time `json:"first_business_at"`
	NextEarningsAt  time.Time `json:"next_earnings_at"`
	LastAutoUpdate  time.Time `json:"last_auto_update"`

	// ScheduleSeed is the structural nonce supplied at construction. It is
	// the default seed for SetEarningsSchedule so the phase offset is
	// reproducible across restarts.
	ScheduleSeed uint64 `json:"schedule_seed"`
}

// New builds a fresh account for owner: PreUnlocked regular slots open, the
// remainder locked up to the regular cap, all counters zero, entry unpaid.
func New(owner string, now time.Time, nonce uint64, cfg Config) *Account {
	slots := make([]Slot, cfg.RegularSlots)
	for i := range slots {
		slots[i] = Slot{
			Type:     SlotBasic,
			Unlocked: i < cfg.PreUnlocked,
		}
	}

	return &Account{
		Entity:        types.NewEntity(now),
		Owner:         owner,
		Config:        cfg,
		Slots:         slots,
		UnlockedSlots: cfg.PreUnlocked,
		ScheduleSeed:  nonce,
	}
}

// Clone returns a deep copy of the account, including the slot sequence.
func (a *Account) Clone() *Account {
	dup := *a
	dup.Slots = make([]Slot, len(a.Slots))
	copy(dup.Slots, a.Slots)
	return &dup
}

// MarkEntryPaid records that the owner paid the one-time entry fee.
func (a *Account) MarkEntryPaid() {
	a.HasPaidEntry = true
}

// ActiveBusinessCount returns the number of occupied slots whose business
// is active.
func (a *Account) ActiveBusinessCount() int {
	n := 0
	for i := range a.Slots {
		if a.Slots[i].Occupied && a.Slots[i].Business.Active {
			n++
		}
	}
	return n
}

// AllBusinesses returns an ordered snapshot of every occupying business.
func (a *Account) AllBusinesses() []business.Business {
	out := make([]business.Business, 0, len(a.Slots))
	for i := range a.Slots {
		if a.Slots[i].Occupied {
			out = append(out, a.Slots[i].Business)
		}
	}
	return out
}

// HealthCheck verifies account integrity: an account with active businesses
// must have a nonzero invested counter, and now may not precede creation.
// Both conditions map to ErrIntegrity; inspect the account to tell them
// apart.
func (a *Account) HealthCheck(now time.Time) error {
	if a.TotalInvested.IsZero() && a.ActiveBusinessCount() > 0 {
		return ErrIntegrity
	}
	if now.Before(a.CreatedAt) {
		return ErrIntegrity
	}
	return nil
}
