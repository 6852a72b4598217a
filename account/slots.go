package account

import (
	"github.com/xraph/tycoon/business"
	"github.com/xraph/tycoon/types"
)

// Unlock transitions the slot from locked to unlocked and records the cost
// paid. Unlocking is one-way; an already-unlocked slot is rejected.
func (s *Slot) Unlock(cost types.Coins) error {
	if s.Unlocked {
		return ErrSlotAlreadyUnlocked
	}
	s.Unlocked = true
	s.UnlockCostPaid = cost
	return nil
}

// Place attaches a business to the slot. The slot must be unlocked and
// empty.
func (s *Slot) Place(b business.Business) error {
	if !s.Unlocked {
		return ErrSlotNotUnlocked
	}
	if s.Occupied {
		return ErrSlotOccupied
	}
	s.Business = b
	s.Occupied = true
	return nil
}

// Remove detaches and returns the occupying business. Removing from an
// empty slot is a no-op that reports false.
func (s *Slot) Remove() (business.Business, bool) {
	if !s.Occupied {
		return business.Business{}, false
	}
	b := s.Business
	s.Business = business.Business{}
	s.Occupied = false
	return b, true
}

// DailyEarnings returns the occupying business's daily rate inflated by
// the slot's yield bonus, floored. An empty slot earns nothing.
func (s *Slot) DailyEarnings() (types.Coins, error) {
	if !s.Occupied {
		return 0, nil
	}
	return s.Business.DailyRate.AddBps(s.Type.YieldBonusBps())
}
