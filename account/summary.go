package account

import (
	"time"

	"github.com/xraph/tycoon/business"
	"github.com/xraph/tycoon/id"
	"github.com/xraph/tycoon/types"
)

// BusinessView is the external-display projection of one occupied slot.
type BusinessView struct {
	SlotIndex   int            `json:"slot_index"`
	SlotType    SlotType       `json:"slot_type"`
	ID          id.BusinessID  `json:"id"`
	Kind        business.Kind  `json:"kind"`
	Level       uint8          `json:"level"`
	Invested    types.Coins    `json:"invested"`
	DailyRate   types.Coins    `json:"daily_rate"`
	Active      bool           `json:"active"`
	LastClaimAt time.Time      `json:"last_claim_at"`
}

// Summary is the filtered read-only projection of an account for external
// display. Pending earnings and referral credit are reported separately so
// callers can render the split without re-deriving it.
type Summary struct {
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
	HasPaidEntry bool      `json:"has_paid_entry"`

	SlotCount     int `json:"slot_count"`
	UnlockedSlots int `json:"unlocked_slots"`
	PremiumSlots  int `json:"premium_slots"`

	TotalInvested     types.Coins `json:"total_invested"`
	TotalUpgradeSpent types.Coins `json:"total_upgrade_spent"`
	TotalSlotSpent    types.Coins `json:"total_slot_spent"`
	TotalEarned       types.Coins `json:"total_earned"`
	PendingEarnings   types.Coins `json:"pending_earnings"`
	PendingReferral   types.Coins `json:"pending_referral_earnings"`

	NextEarningsAt time.Time `json:"next_earnings_at,omitempty"`
	LastAutoUpdate time.Time `json:"last_auto_update,omitempty"`

	Businesses []BusinessView `json:"businesses"`
}

// Summarize builds the display projection from the current account state.
func (a *Account) Summarize() Summary {
	views := make([]BusinessView, 0, len(a.Slots))
	for i := range a.Slots {
		slot := &a.Slots[i]
		if !slot.Occupied {
			continue
		}
		views = append(views, BusinessView{
			SlotIndex:   i,
			SlotType:    slot.Type,
			ID:          slot.Business.ID,
			Kind:        slot.Business.Kind,
			Level:       slot.Business.Level,
			Invested:    slot.Business.Invested,
			DailyRate:   slot.Business.DailyRate,
			Active:      slot.Business.Active,
			LastClaimAt: slot.Business.LastClaimAt,
		})
	}

	return Summary{
		Owner:             a.Owner,
		CreatedAt:         a.CreatedAt,
		HasPaidEntry:      a.HasPaidEntry,
		SlotCount:         len(a.Slots),
		UnlockedSlots:     a.UnlockedSlots,
		PremiumSlots:      a.PremiumSlots,
		TotalInvested:     a.TotalInvested,
		TotalUpgradeSpent: a.TotalUpgradeSpent,
		TotalSlotSpent:    a.TotalSlotSpent,
		TotalEarned:       a.TotalEarned,
		PendingEarnings:   a.PendingEarnings,
		PendingReferral:   a.PendingReferral,
		NextEarningsAt:    a.NextEarningsAt,
		LastAutoUpdate:    a.LastAutoUpdate,
		Businesses:        views,
	}
}
