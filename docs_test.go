package tycoon_test

import (
	"context"
	"log"
	"log/slog"
	"testing"
	"time"

	"github.com/xraph/tycoon"
	"github.com/xraph/tycoon/business"
	"github.com/xraph/tycoon/store/memory"
	"github.com/xraph/tycoon/types"
)

// TestDocumentationExamples verifies that all examples in the documentation compile
func TestDocumentationExamples(t *testing.T) {
	// Test Quick Start example from README
	t.Run("QuickStartExample", func(t *testing.T) {
		// Create store (memory for demo, use PostgreSQL in production)
		store := memory.New()

		// Initialize the engine
		eng := tycoon.New(store,
			tycoon.WithLogger(slog.Default()),
			tycoon.WithPokeConfig(time.Minute, 100),
		)

		// Start the engine
		ctx := context.Background()
		if err := eng.Start(ctx); err != nil {
			t.Fatal(err)
		}
		defer eng.Stop()

		now := time.Now()

		// Create an account
		acct, err := eng.CreateAccount(ctx, "player-42", now)
		if err != nil {
			t.Fatal(err)
		}
		log.Printf("account created with %d slots\n", len(acct.Slots))

		// Entry fee cleared externally; record it
		if err := eng.MarkEntryPaid(ctx, "player-42", now); err != nil {
			t.Fatal(err)
		}

		// Place a business from the catalog
		biz, slot, err := eng.PlaceBusiness(ctx, "player-42", business.KindCoffeeShop, now)
		if err != nil {
			t.Fatal(err)
		}
		log.Printf("%s placed in slot %d\n", biz.Kind, slot)

		// A day later, accrue and claim
		later := now.Add(24 * time.Hour)
		accrued, err := eng.UpdateEarnings(ctx, "player-42", later)
		if err != nil {
			t.Fatal(err)
		}

		claimed, err := eng.Claim(ctx, "player-42", later)
		if err != nil {
			t.Fatal(err)
		}
		if claimed != accrued {
			t.Fatalf("claimed %s, accrued %s", claimed, accrued)
		}

		// Summary projection for display
		summary, err := eng.Summary(ctx, "player-42")
		if err != nil {
			t.Fatal(err)
		}
		log.Printf("total earned: %s\n", summary.TotalEarned)
	})

	// Test Coins type examples
	t.Run("CoinsExamples", func(t *testing.T) {
		// Constructors
		_ = types.FromWhole(49)  // 49 coins
		_ = types.Coins(500_000) // half a coin in micros

		// Arithmetic is overflow-checked
		c1 := types.FromWhole(1)
		c2 := types.FromWhole(2)
		if _, err := c1.Add(c2); err != nil {
			t.Fatal(err)
		}
		if _, err := c1.Mul(3); err != nil {
			t.Fatal(err)
		}

		// Basis-point scaling floors
		bonus, err := types.Coins(1_000_000).ApplyBps(500) // 5% of one coin
		if err != nil {
			t.Fatal(err)
		}
		if bonus != 50_000 {
			t.Fatalf("bonus = %d, want 50000", bonus)
		}

		// Formatting
		_ = c1.String() // "1.000000"
		_ = c1.Whole()  // 1
	})
}
