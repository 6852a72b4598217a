// Package tycoon provides a per-account slot inventory and time-based
// earnings engine for Go applications.
//
// Tycoon is designed as a library, not a service. Each account owns a fixed
// sequence of typed slots; businesses placed in those slots accrue value over
// time at a catalog-defined daily rate, and the account's ledger tracks
// invested, earned, and pending amounts with strictly overflow-checked
// unsigned arithmetic. It provides:
//
//   - Slot inventory with typed Basic/Premium/VIP/Legendary positions
//   - A business catalog with per-level cost and daily-rate tables
//   - Two-pass atomic accrual: a failed pass leaves the account untouched
//   - Pull-based earnings scheduling with per-account phase spreading
//   - A claim ledger separating pending earnings from referral credits
//   - Pluggable lifecycle hooks for audit trails and metrics
//
// # Quick Start
//
// Create an engine with your preferred store:
//
//	import (
//	    "github.com/xraph/tycoon"
//	    "github.com/xraph/tycoon/store/memory"
//	)
//
//	eng := tycoon.New(memory.New())
//
//	// Start the engine (migrates the store, begins the due sweep worker)
//	if err := eng.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Stop()
//
// # Core Concepts
//
// Accounts are created per owner and start with a few pre-unlocked slots:
//
//	acct, err := eng.CreateAccount(ctx, "player-42", time.Now())
//
// Businesses come from a typed catalog and land in the first free slot:
//
//	if err := eng.MarkEntryPaid(ctx, "player-42", time.Now()); err != nil { ... }
//	biz, slot, err := eng.PlaceBusiness(ctx, "player-42", business.KindCoffeeShop, time.Now())
//
// Earnings accrue per business from its last-claim marker and are moved into
// the claimable pool by accrual passes; a claim then moves the pool into the
// lifetime earned counter:
//
//	accrued, err := eng.UpdateEarnings(ctx, "player-42", time.Now())
//	claimed, err := eng.Claim(ctx, "player-42", time.Now())
//
// # Determinism
//
// Every state transition in the account and business packages is pure: the
// caller supplies now, no clocks or I/O are read, and all value arithmetic is
// unsigned and overflow-checked. Operations validate first and mutate last,
// so any error leaves the account exactly as it was.
//
// # TypeID
//
// Entities use TypeID for globally unique, type-safe identifiers:
//
//	acct_01h2xcejqtf2nbrexx3vqjhp41  // Account ID
//	biz_01h2xcejqtf2nbrexx3vqjhp41   // Business ID
//	ref_01h455vb4pex5vsknk084sn02q   // Referral ID
//
// TypeIDs are K-sortable, making them ideal for database indexes and
// providing natural time-ordering of entities.
package tycoon
