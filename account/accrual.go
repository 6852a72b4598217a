package account

import (
	"time"

	"github.com/xraph/tycoon/types"
)

// accrue is the single accrual routine shared by the manual and automatic
// paths: per occupied slot with an active business, compute elapsed-time
// pending earnings, apply the slot's yield bonus, and accumulate into the
// pending counter. It runs in two passes — compute everything first, then
// apply — so an overflow mid-sequence mutates nothing.
func (a *Account) accrue(now time.Time) (types.Coins, error) {
	var total types.Coins
	for i := range a.Slots {
		slot := &a.Slots[i]
		if !slot.Occupied || !slot.Business.Active {
			continue
		}

		base, err := slot.Business.PendingEarnings(now)
		if err != nil {
			return 0, err
		}
		earned, err := base.AddBps(slot.Type.YieldBonusBps())
		if err != nil {
			return 0, err
		}
		total, err = total.Add(earned)
		if err != nil {
			return 0, err
		}
	}

	newPending, err := a.PendingEarnings.Add(total)
	if err != nil {
		return 0, err
	}

	a.PendingEarnings = newPending
	for i := range a.Slots {
		if a.Slots[i].Occupied && a.Slots[i].Business.Active {
			a.Slots[i].Business.MarkClaimed(now)
		}
	}
	return total, nil
}

// UpdateAllSlotEarnings accrues pending earnings for every slot
// unconditionally and advances each business's last-claim marker to now.
// Calling it twice with the same now adds zero the second time.
func (a *Account) UpdateAllSlotEarnings(now time.Time) (types.Coins, error) {
	return a.accrue(now)
}

// AutoUpdateEarnings is the gated accrual path driven by external pokes.
// If the account is not yet due it returns zero and mutates nothing.
// When due it runs the shared accrual, advances the next due instant by
// one earnings interval, and records the poke time.
func (a *Account) AutoUpdateEarnings(now time.Time) (types.Coins, error) {
	if !a.IsEarningsDue(now) {
		return 0, nil
	}

	earned, err := a.accrue(now)
	if err != nil {
		return 0, err
	}

	// Advance from the previous due instant, not from now, so the phase
	// offset chosen at schedule time is preserved across pokes.
	a.NextEarningsAt = a.NextEarningsAt.Add(time.Duration(a.Config.EarningsInterval) * time.Second)
	a.LastAutoUpdate = now
	return earned, nil
}
