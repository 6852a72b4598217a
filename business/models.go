// Package business defines the value-generating entity that occupies an
// account slot. A business has a kind, a level, and a daily earnings rate;
// the pending-earnings computation it owns is consumed by the accrual engine.
package business

import (
	"fmt"
	"strings"
	"time"

	"github.com/xraph/tycoon/id"
	"github.com/xraph/tycoon/types"
)

// Kind identifies a business archetype in the catalog.
type Kind string

// Catalog kinds.
const (
	KindLemonadeStand Kind = "lemonade_stand"
	KindCoffeeShop    Kind = "coffee_shop"
	KindFoodTruck     Kind = "food_truck"
	KindArcadeHall    Kind = "arcade_hall"
	KindNightclub     Kind = "nightclub"
	KindTechStartup   Kind = "tech_startup"
)

// Business is an owned, leveled entity occupying exactly one slot.
// It accrues value over time at a daily rate; LastClaimAt is the marker
// the accrual engine advances every time pending earnings are consumed.
type Business struct {
	types.Entity
	ID          id.BusinessID `json:"id"`
	Kind        Kind          `json:"kind"`
	Level       uint8         `json:"level"`
	Invested    types.Coins   `json:"invested"`
	DailyRate   types.Coins   `json:"daily_rate"`
	Active      bool          `json:"active"`
	LastClaimAt time.Time     `json:"last_claim_at"`
}

// New builds a level-1 business of the given kind. The creation cost from
// the catalog becomes the business's invested amount and now becomes both
// its creation and last-claim timestamp.
func New(kind Kind, now time.Time) (*Business, error) {
	spec, err := SpecFor(kind)
	if err != nil {
		return nil, err
	}

	return &Business{
		Entity:      types.NewEntity(now),
		ID:          id.NewBusinessID(),
		Kind:        kind,
		Level:       1,
		Invested:    spec.Levels[0].Cost,
		DailyRate:   spec.Levels[0].DailyRate,
		Active:      true,
		LastClaimAt: now,
	}, nil
}

// Upgraded builds the replacement business for an in-place upgrade.
// The new level must exist in the catalog and exceed the current one.
func (b *Business) Upgraded(level uint8, now time.Time) (*Business, error) {
	spec, err := SpecFor(b.Kind)
	if err != nil {
		return nil, err
	}
	if level <= b.Level {
		return nil, fmt.Errorf("business: upgrade level %d not above current %d", level, b.Level)
	}
	if int(level) > len(spec.Levels) {
		return nil, fmt.Errorf("business: %s has no level %d", b.Kind, level)
	}

	lvl := spec.Levels[level-1]
	invested, err := b.Invested.Add(lvl.Cost)
	if err != nil {
		return nil, err
	}

	return &Business{
		Entity:      types.NewEntity(now),
		ID:          b.ID,
		Kind:        b.Kind,
		Level:       level,
		Invested:    invested,
		DailyRate:   lvl.DailyRate,
		Active:      true,
		LastClaimAt: now,
	}, nil
}

const secondsPerDay = 86_400

// PendingEarnings returns the value accrued between LastClaimAt and now,
// prorated from the daily rate by elapsed seconds and floored. An inactive
// business, or a now at or before the marker, yields zero.
func (b *Business) PendingEarnings(now time.Time) (types.Coins, error) {
	if !b.Active || !now.After(b.LastClaimAt) {
		return 0, nil
	}

	elapsed := uint64(now.Unix() - b.LastClaimAt.Unix())
	return b.DailyRate.MulDiv(elapsed, secondsPerDay)
}

// MarkClaimed advances the last-claim marker. The marker never moves
// backwards: an earlier now is ignored.
func (b *Business) MarkClaimed(now time.Time) {
	if now.After(b.LastClaimAt) {
		b.LastClaimAt = now
	}
}

// LevelSpec is one catalog row: the cost to reach the level (creation cost
// for level 1, upgrade cost above that) and the daily rate it earns.
type LevelSpec struct {
	Cost      types.Coins
	DailyRate types.Coins
}

// Spec describes a business archetype.
type Spec struct {
	Kind        Kind
	DisplayName string
	Levels      []LevelSpec
}

// MaxLevel returns the highest level the catalog defines for this kind.
func (s Spec) MaxLevel() uint8 { return uint8(len(s.Levels)) }

var catalog = []Spec{
	{Kind: KindLemonadeStand, DisplayName: "Lemonade Stand", Levels: []LevelSpec{
		{Cost: types.FromWhole(250), DailyRate: types.FromWhole(12)},
		{Cost: types.FromWhole(600), DailyRate: types.FromWhole(30)},
		{Cost: types.FromWhole(1_400), DailyRate: types.FromWhole(72)},
	}},
	{Kind: KindCoffeeShop, DisplayName: "Coffee Shop", Levels: []LevelSpec{
		{Cost: types.FromWhole(900), DailyRate: types.FromWhole(40)},
		{Cost: types.FromWhole(2_100), DailyRate: types.FromWhole(95)},
		{Cost: types.FromWhole(4_800), DailyRate: types.FromWhole(220)},
	}},
	{Kind: KindFoodTruck, DisplayName: "Food Truck", Levels: []LevelSpec{
		{Cost: types.FromWhole(2_500), DailyRate: types.FromWhole(105)},
		{Cost: types.FromWhole(5_500), DailyRate: types.FromWhole(240)},
		{Cost: types.FromWhole(12_000), DailyRate: types.FromWhole(540)},
	}},
	{Kind: KindArcadeHall, DisplayName: "Arcade Hall", Levels: []LevelSpec{
		{Cost: types.FromWhole(6_500), DailyRate: types.FromWhole(260)},
		{Cost: types.FromWhole(14_000), DailyRate: types.FromWhole(580)},
		{Cost: types.FromWhole(30_000), DailyRate: types.FromWhole(1_300)},
	}},
	{Kind: KindNightclub, DisplayName: "Nightclub", Levels: []LevelSpec{
		{Cost: types.FromWhole(18_000), DailyRate: types.FromWhole(700)},
		{Cost: types.FromWhole(38_000), DailyRate: types.FromWhole(1_550)},
		{Cost: types.FromWhole(80_000), DailyRate: types.FromWhole(3_400)},
	}},
	{Kind: KindTechStartup, DisplayName: "Tech Startup", Levels: []LevelSpec{
		{Cost: types.FromWhole(40_000), DailyRate: types.FromWhole(1_500)},
		{Cost: types.FromWhole(85_000), DailyRate: types.FromWhole(3_300)},
		{Cost: types.FromWhole(180_000), DailyRate: types.FromWhole(7_200)},
	}},
}

// SpecFor looks up the catalog entry for a kind.
func SpecFor(kind Kind) (Spec, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(string(kind))))
	for _, spec := range catalog {
		if spec.Kind == k {
			return spec, nil
		}
	}
	return Spec{}, fmt.Errorf("business: unknown kind: %s", kind)
}

// Catalog returns the full archetype catalog in display order.
func Catalog() []Spec {
	out := make([]Spec, len(catalog))
	copy(out, catalog)
	return out
}
