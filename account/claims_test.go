package account

import (
	"errors"
	"testing"

	"github.com/xraph/tycoon/types"
)

func TestClaimable(t *testing.T) {
	a := newTestAccount()
	a.PendingEarnings = 700
	a.PendingReferral = 300

	got, err := a.Claimable()
	if err != nil {
		t.Fatal(err)
	}
	if got != 1_000 {
		t.Errorf("claimable: got %d, want 1000", got)
	}
}

func TestClaimableOverflow(t *testing.T) {
	a := newTestAccount()
	a.PendingEarnings = types.MaxCoins
	a.PendingReferral = 1

	if _, err := a.Claimable(); !errors.Is(err, types.ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

// After a claim the claimable sum is zero and total earned grew by exactly
// the pre-claim claimable value.
func TestClaimAll(t *testing.T) {
	a := newTestAccount()
	a.TotalEarned = 5_000
	a.PendingEarnings = 700
	a.PendingReferral = 300

	claimed, err := a.ClaimAll()
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if claimed != 1_000 {
		t.Errorf("claimed: got %d, want 1000", claimed)
	}
	if a.TotalEarned != 6_000 {
		t.Errorf("total earned: got %d, want 6000", a.TotalEarned)
	}
	if !a.PendingEarnings.IsZero() || !a.PendingReferral.IsZero() {
		t.Error("pending fields not zeroed")
	}
	if got, _ := a.Claimable(); !got.IsZero() {
		t.Errorf("claimable after claim: got %d, want 0", got)
	}
}

func TestClaimAllNothingPending(t *testing.T) {
	a := newTestAccount()
	claimed, err := a.ClaimAll()
	if err != nil || !claimed.IsZero() {
		t.Errorf("empty claim: got %d, %v", claimed, err)
	}
}

func TestClaimAllOverflowIsAtomic(t *testing.T) {
	a := newTestAccount()
	a.TotalEarned = types.MaxCoins
	a.PendingEarnings = 1

	if _, err := a.ClaimAll(); !errors.Is(err, types.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if a.PendingEarnings != 1 || a.TotalEarned != types.MaxCoins {
		t.Error("failed claim mutated the account")
	}
}

func TestAddReferralBonus(t *testing.T) {
	a := newTestAccount()
	if err := a.AddReferralBonus(400); err != nil {
		t.Fatal(err)
	}
	if err := a.AddReferralBonus(100); err != nil {
		t.Fatal(err)
	}
	if a.PendingReferral != 500 {
		t.Errorf("pending referral: got %d, want 500", a.PendingReferral)
	}

	a.PendingReferral = types.MaxCoins
	if err := a.AddReferralBonus(1); !errors.Is(err, types.ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
	if a.PendingReferral != types.MaxCoins {
		t.Error("failed credit mutated the balance")
	}
}
