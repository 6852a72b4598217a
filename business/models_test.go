package business

import (
	"testing"
	"time"

	"github.com/xraph/tycoon/types"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	b, err := New(KindCoffeeShop, t0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if b.Level != 1 {
		t.Errorf("level: got %d, want 1", b.Level)
	}
	if !b.Active {
		t.Error("new business should be active")
	}
	if b.Invested != types.FromWhole(900) {
		t.Errorf("invested: got %v", b.Invested)
	}
	if b.DailyRate != types.FromWhole(40) {
		t.Errorf("daily rate: got %v", b.DailyRate)
	}
	if !b.LastClaimAt.Equal(t0) {
		t.Errorf("last claim: got %v, want %v", b.LastClaimAt, t0)
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(Kind("pet_rock_emporium"), t0); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSpecForNormalizesInput(t *testing.T) {
	spec, err := SpecFor(Kind("  Coffee_Shop "))
	if err != nil {
		t.Fatalf("SpecFor failed: %v", err)
	}
	if spec.Kind != KindCoffeeShop {
		t.Errorf("got %q", spec.Kind)
	}
}

func TestUpgraded(t *testing.T) {
	b, err := New(KindFoodTruck, t0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	later := t0.Add(time.Hour)
	up, err := b.Upgraded(2, later)
	if err != nil {
		t.Fatalf("Upgraded failed: %v", err)
	}
	if up.Level != 2 {
		t.Errorf("level: got %d, want 2", up.Level)
	}
	if up.ID != b.ID {
		t.Error("upgrade must preserve the business identity")
	}
	// 2500 created + 5500 upgrade.
	if up.Invested != types.FromWhole(8_000) {
		t.Errorf("invested: got %v", up.Invested)
	}
	if up.DailyRate != types.FromWhole(240) {
		t.Errorf("daily rate: got %v", up.DailyRate)
	}
	if !up.LastClaimAt.Equal(later) {
		t.Error("upgrade must reset the last-claim marker")
	}
}

func TestUpgradedRejectsBadLevels(t *testing.T) {
	b, _ := New(KindLemonadeStand, t0)

	if _, err := b.Upgraded(1, t0); err == nil {
		t.Error("expected error for non-increasing level")
	}
	if _, err := b.Upgraded(4, t0); err == nil {
		t.Error("expected error for level past catalog max")
	}
}

func TestPendingEarnings(t *testing.T) {
	tests := []struct {
		name    string
		daily   types.Coins
		elapsed time.Duration
		active  bool
		want    types.Coins
	}{
		{"full day", types.FromWhole(100), 24 * time.Hour, true, types.FromWhole(100)},
		{"half day", types.FromWhole(100), 12 * time.Hour, true, types.FromWhole(50)},
		{"one second", 86_400, time.Second, true, 1},
		{"floors sub-second rate", 86_399, time.Second, true, 0},
		{"zero elapsed", types.FromWhole(100), 0, true, 0},
		{"inactive", types.FromWhole(100), 24 * time.Hour, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Business{
				Kind:        KindCoffeeShop,
				Level:       1,
				DailyRate:   tt.daily,
				Active:      tt.active,
				LastClaimAt: t0,
			}
			got, err := b.PendingEarnings(t0.Add(tt.elapsed))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPendingEarningsBeforeMarker(t *testing.T) {
	b := &Business{DailyRate: types.FromWhole(100), Active: true, LastClaimAt: t0}
	got, err := b.PendingEarnings(t0.Add(-time.Hour))
	if err != nil || got != 0 {
		t.Errorf("now before marker: got %d, %v", got, err)
	}
}

func TestMarkClaimed(t *testing.T) {
	b := &Business{Active: true, LastClaimAt: t0}

	later := t0.Add(time.Hour)
	b.MarkClaimed(later)
	if !b.LastClaimAt.Equal(later) {
		t.Errorf("marker: got %v, want %v", b.LastClaimAt, later)
	}

	// The marker never moves backwards.
	b.MarkClaimed(t0)
	if !b.LastClaimAt.Equal(later) {
		t.Error("marker moved backwards")
	}
}

func TestCatalogLevelsAscend(t *testing.T) {
	for _, spec := range Catalog() {
		t.Run(string(spec.Kind), func(t *testing.T) {
			if spec.MaxLevel() == 0 {
				t.Fatal("catalog entry has no levels")
			}
			for i := 1; i < len(spec.Levels); i++ {
				if spec.Levels[i].DailyRate <= spec.Levels[i-1].DailyRate {
					t.Errorf("level %d daily rate does not ascend", i+1)
				}
			}
		})
	}
}
