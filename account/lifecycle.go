package account

import (
	"github.com/xraph/tycoon/business"
	"github.com/xraph/tycoon/types"
)

// FindFreeSlot returns the index of the first unlocked, empty slot scanned
// left to right, or false if none exists. The scan order is load-bearing:
// it decides which slot a new business lands in.
func (a *Account) FindFreeSlot() (int, bool) {
	for i := range a.Slots {
		if a.Slots[i].Unlocked && !a.Slots[i].Occupied {
			return i, true
		}
	}
	return 0, false
}

// UnlockNextSlot unlocks the first locked regular slot in sequence order,
// recording cost against the slot-spend counter. Fails with
// ErrNoMoreSlotsToUnlock once every regular slot is open.
func (a *Account) UnlockNextSlot(cost types.Coins) error {
	idx := -1
	for i := 0; i < a.Config.RegularSlots && i < len(a.Slots); i++ {
		if !a.Slots[i].Unlocked {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNoMoreSlotsToUnlock
	}

	newSpent, err := a.TotalSlotSpent.Add(cost)
	if err != nil {
		return err
	}

	if err := a.Slots[idx].Unlock(cost); err != nil {
		return err
	}
	a.UnlockedSlots++
	a.TotalSlotSpent = newSpent
	return nil
}

// AddPremiumSlot appends a new unlocked slot of the given paid type. The
// slot sequence is a fixed-capacity arena sized for the persisted record;
// growing past it is rejected with ErrSlotLimitReached rather than assumed
// to succeed.
func (a *Account) AddPremiumSlot(slotType SlotType, cost types.Coins) error {
	if len(a.Slots) >= a.Config.MaxSlots() {
		return ErrSlotLimitReached
	}

	newSpent, err := a.TotalSlotSpent.Add(cost)
	if err != nil {
		return err
	}

	a.Slots = append(a.Slots, Slot{
		Type:           slotType,
		Unlocked:       true,
		UnlockCostPaid: cost,
	})
	a.PremiumSlots++
	a.TotalSlotSpent = newSpent
	return nil
}

// PlaceBusinessInSlot attaches b to the slot at index and adds its invested
// amount to the account's invested counter.
func (a *Account) PlaceBusinessInSlot(index int, b business.Business) error {
	if index < 0 || index >= len(a.Slots) {
		return ErrInvalidSlotIndex
	}

	slot := &a.Slots[index]
	if !slot.Unlocked {
		return ErrSlotNotUnlocked
	}
	if slot.Occupied {
		return ErrSlotOccupied
	}

	newInvested, err := a.TotalInvested.Add(b.Invested)
	if err != nil {
		return err
	}

	slot.Business = b
	slot.Occupied = true
	a.TotalInvested = newInvested
	return nil
}

// UpgradeBusinessInSlot replaces the occupying business in place, keeping
// the slot. The upgrade cost is added to both the upgrade-spend and
// invested counters. The replaced business is returned; any destroy/burn of
// its external representation is the caller's responsibility.
func (a *Account) UpgradeBusinessInSlot(index int, cost types.Coins, replacement business.Business) (business.Business, error) {
	if index < 0 || index >= len(a.Slots) {
		return business.Business{}, ErrInvalidSlotIndex
	}

	slot := &a.Slots[index]
	if !slot.Occupied {
		return business.Business{}, ErrBusinessNotFound
	}

	newUpgradeSpent, err := a.TotalUpgradeSpent.Add(cost)
	if err != nil {
		return business.Business{}, err
	}
	newInvested, err := a.TotalInvested.Add(cost)
	if err != nil {
		return business.Business{}, err
	}

	removed := slot.Business
	slot.Business = replacement
	a.TotalUpgradeSpent = newUpgradeSpent
	a.TotalInvested = newInvested
	return removed, nil
}

// SellBusinessFromSlot removes the occupying business and returns it along
// with the slot's sell-fee discount in basis points. Proceeds computation
// and counter adjustments on sale belong to the caller; the invested
// counters keep recording lifetime invested value.
func (a *Account) SellBusinessFromSlot(index int) (business.Business, uint32, error) {
	if index < 0 || index >= len(a.Slots) {
		return business.Business{}, 0, ErrInvalidSlotIndex
	}

	slot := &a.Slots[index]
	removed, ok := slot.Remove()
	if !ok {
		return business.Business{}, 0, ErrBusinessNotFound
	}
	return removed, slot.Type.SellFeeDiscountBps(), nil
}
