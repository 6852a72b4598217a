package account

import (
	"errors"
	"testing"
	"time"

	"github.com/xraph/tycoon/business"
	"github.com/xraph/tycoon/types"
)

// placeEarner puts a business with the given daily rate into slot index,
// bypassing the catalog so rates can be chosen exactly.
func placeEarner(t *testing.T, a *Account, index int, daily types.Coins) {
	t.Helper()
	b := mustBusiness(t, business.KindCoffeeShop, t0)
	b.DailyRate = daily
	if !a.Slots[index].Unlocked {
		a.Slots[index].Unlocked = true
	}
	if err := a.PlaceBusinessInSlot(index, b); err != nil {
		t.Fatalf("place failed: %v", err)
	}
}

func TestUpdateAllSlotEarnings(t *testing.T) {
	a := newTestAccount()
	placeEarner(t, a, 0, types.FromWhole(100)) // basic slot, no bonus
	placeEarner(t, a, 1, types.FromWhole(200))

	now := t0.Add(12 * time.Hour)
	earned, err := a.UpdateAllSlotEarnings(now)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	want := types.FromWhole(150) // half of 100+200 per day
	if earned != want {
		t.Errorf("earned: got %v, want %v", earned, want)
	}
	if a.PendingEarnings != want {
		t.Errorf("pending: got %v, want %v", a.PendingEarnings, want)
	}
	for i := 0; i < 2; i++ {
		if !a.Slots[i].Business.LastClaimAt.Equal(now) {
			t.Errorf("slot %d marker not advanced", i)
		}
	}
}

// Accrual is idempotent with respect to now: the second call with an
// identical timestamp adds nothing.
func TestAccrualIdempotentAtSameInstant(t *testing.T) {
	a := newTestAccount()
	placeEarner(t, a, 0, types.FromWhole(100))

	now := t0.Add(6 * time.Hour)
	first, err := a.UpdateAllSlotEarnings(now)
	if err != nil {
		t.Fatal(err)
	}
	if first.IsZero() {
		t.Fatal("expected nonzero first accrual")
	}

	second, err := a.UpdateAllSlotEarnings(now)
	if err != nil {
		t.Fatal(err)
	}
	if !second.IsZero() {
		t.Errorf("second accrual at same now: got %v, want 0", second)
	}
	if a.PendingEarnings != first {
		t.Error("pending changed on idempotent re-run")
	}
}

// A slot with a 500 bp bonus on base pending earnings of 1,000,000 micros
// adds exactly 50,000 micros via floor division.
func TestAccrualBonusScaling(t *testing.T) {
	a := newTestAccount()
	if err := a.AddPremiumSlot(SlotPremium, types.FromWhole(2_000)); err != nil {
		t.Fatal(err)
	}

	// Daily rate chosen so one full day accrues exactly 1,000,000 micros.
	placeEarner(t, a, 6, types.Coins(1_000_000))

	earned, err := a.UpdateAllSlotEarnings(t0.Add(24 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if earned != 1_050_000 {
		t.Errorf("earned with 5%% bonus: got %d, want 1050000", earned)
	}
}

func TestAccrualSkipsInactiveAndEmpty(t *testing.T) {
	a := newTestAccount()
	placeEarner(t, a, 0, types.FromWhole(100))
	a.Slots[0].Business.Active = false

	earned, err := a.UpdateAllSlotEarnings(t0.Add(24 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !earned.IsZero() {
		t.Errorf("inactive business accrued %v", earned)
	}
	if a.Slots[0].Business.LastClaimAt != t0 {
		t.Error("inactive business marker advanced")
	}
}

func TestAutoUpdateGating(t *testing.T) {
	a := newTestAccount()
	placeEarner(t, a, 0, types.FromWhole(100))
	a.SetEarningsSchedule(t0, 3_600) // due at t0+1h

	// Not yet due: zero delta, nothing mutated.
	earned, err := a.AutoUpdateEarnings(t0.Add(30 * time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if !earned.IsZero() {
		t.Errorf("not-due poke accrued %v", earned)
	}
	if !a.PendingEarnings.IsZero() || !a.LastAutoUpdate.IsZero() {
		t.Error("not-due poke mutated the account")
	}

	// Due: accrues and advances the schedule.
	now := t0.Add(2 * time.Hour)
	earned, err = a.AutoUpdateEarnings(now)
	if err != nil {
		t.Fatal(err)
	}
	if earned.IsZero() {
		t.Error("due poke accrued nothing")
	}
	wantNext := t0.Add(time.Hour).Add(24 * time.Hour)
	if !a.NextEarningsAt.Equal(wantNext) {
		t.Errorf("next due: got %v, want %v", a.NextEarningsAt, wantNext)
	}
	if !a.LastAutoUpdate.Equal(now) {
		t.Errorf("last auto update: got %v, want %v", a.LastAutoUpdate, now)
	}
}

// Two auto-updates with the same now produce a nonzero delta only on the
// first; the second adds zero and mutates nothing else.
func TestAutoUpdateIdempotentGating(t *testing.T) {
	a := newTestAccount()
	placeEarner(t, a, 0, types.FromWhole(100))
	a.SetEarningsSchedule(t0, 0)

	now := t0.Add(6 * time.Hour)
	first, err := a.AutoUpdateEarnings(now)
	if err != nil {
		t.Fatal(err)
	}
	if first.IsZero() {
		t.Fatal("expected nonzero first delta")
	}

	snapshot := *a
	second, err := a.AutoUpdateEarnings(now)
	if err != nil {
		t.Fatal(err)
	}
	if !second.IsZero() {
		t.Errorf("second delta: got %v, want 0", second)
	}
	if !a.NextEarningsAt.Equal(snapshot.NextEarningsAt) || a.PendingEarnings != snapshot.PendingEarnings {
		t.Error("second poke mutated the account")
	}
}

// An overflow anywhere in the accrual leaves the account untouched.
func TestAccrualOverflowIsAtomic(t *testing.T) {
	a := newTestAccount()
	placeEarner(t, a, 0, types.FromWhole(100))
	a.PendingEarnings = types.MaxCoins // next accumulation must wrap

	markerBefore := a.Slots[0].Business.LastClaimAt
	_, err := a.UpdateAllSlotEarnings(t0.Add(24 * time.Hour))
	if !errors.Is(err, types.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if a.PendingEarnings != types.MaxCoins {
		t.Error("pending mutated on failed accrual")
	}
	if !a.Slots[0].Business.LastClaimAt.Equal(markerBefore) {
		t.Error("marker advanced on failed accrual")
	}
}

func TestAutoUpdateNeverDueWithoutSchedule(t *testing.T) {
	a := newTestAccount()
	placeEarner(t, a, 0, types.FromWhole(100))

	earned, err := a.AutoUpdateEarnings(t0.Add(48 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !earned.IsZero() {
		t.Error("unarmed schedule should never be due")
	}
}
