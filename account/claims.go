package account

import "github.com/xraph/tycoon/types"

// Claimable returns the full pending sum — earnings plus referral credit —
// overflow-checked.
func (a *Account) Claimable() (types.Coins, error) {
	return a.PendingEarnings.Add(a.PendingReferral)
}

// ClaimAll moves the full claimable sum into the earned counter and zeroes
// both pending fields in one transition: no path observes a nonzero pending
// value after this returns. The claimed amount is returned for the caller
// to pay out.
func (a *Account) ClaimAll() (types.Coins, error) {
	sum, err := a.Claimable()
	if err != nil {
		return 0, err
	}
	newEarned, err := a.TotalEarned.Add(sum)
	if err != nil {
		return 0, err
	}

	a.TotalEarned = newEarned
	a.PendingEarnings = 0
	a.PendingReferral = 0
	return sum, nil
}

// AddReferralBonus credits amount to the pending referral balance. This is
// the only cross-account effect in the system and it mutates solely the
// referring account, through its own call.
func (a *Account) AddReferralBonus(amount types.Coins) error {
	newPending, err := a.PendingReferral.Add(amount)
	if err != nil {
		return err
	}
	a.PendingReferral = newPending
	return nil
}
