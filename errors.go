package tycoon

import (
	"errors"
	"fmt"

	"github.com/xraph/tycoon/account"
	"github.com/xraph/tycoon/types"
)

// Sentinel errors for common failure scenarios. Slot and arithmetic
// sentinels are defined next to the transitions that raise them and
// re-exported here so callers have one catalog to match against.
var (
	// General errors
	ErrNotFound     = errors.New("tycoon: not found")
	ErrInvalidInput = errors.New("tycoon: invalid input")

	// Account errors
	ErrAccountExists   = errors.New("tycoon: account already exists")
	ErrAccountNotFound = errors.New("tycoon: account not found")
	ErrEntryNotPaid    = errors.New("tycoon: entry fee not paid")
	ErrNoFreeSlot      = errors.New("tycoon: no free unlocked slot")

	// Slot and lifecycle errors (caller-correctable)
	ErrInvalidSlotIndex    = account.ErrInvalidSlotIndex
	ErrBusinessNotFound    = account.ErrBusinessNotFound
	ErrSlotOccupied        = account.ErrSlotOccupied
	ErrSlotNotUnlocked     = account.ErrSlotNotUnlocked
	ErrSlotAlreadyUnlocked = account.ErrSlotAlreadyUnlocked
	ErrNoMoreSlotsToUnlock = account.ErrNoMoreSlotsToUnlock
	ErrSlotLimitReached    = account.ErrSlotLimitReached

	// Arithmetic errors (fatal for the call; no partial mutation)
	ErrMathOverflow = types.ErrOverflow

	// Integrity errors
	ErrIntegrity = account.ErrIntegrity

	// Store errors
	ErrStoreNotReady     = errors.New("tycoon: store not ready")
	ErrStoreClosed       = errors.New("tycoon: store is closed")
	ErrTransactionFailed = errors.New("tycoon: transaction failed")
	ErrMigrationFailed   = errors.New("tycoon: migration failed")
)

// ValidationError represents a validation failure with details.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("tycoon: validation failed for %s: %s", e.Field, e.Message)
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrBusinessNotFound)
}

// IsSlotError returns true if the error is a caller-correctable slot or
// index failure: retry with a valid index or state.
func IsSlotError(err error) bool {
	return errors.Is(err, ErrInvalidSlotIndex) ||
		errors.Is(err, ErrSlotOccupied) ||
		errors.Is(err, ErrSlotNotUnlocked) ||
		errors.Is(err, ErrSlotAlreadyUnlocked) ||
		errors.Is(err, ErrNoMoreSlotsToUnlock) ||
		errors.Is(err, ErrSlotLimitReached) ||
		errors.Is(err, ErrNoFreeSlot)
}

// IsOverflow returns true if the error is an arithmetic overflow. These
// are fatal for the triggering call and signal either corrupted state or
// an out-of-economic-bounds value.
func IsOverflow(err error) bool {
	return errors.Is(err, ErrMathOverflow)
}

// IsIntegrity returns true if the error came from an account health check.
// Not fatal to the triggering call, but trust in the account should halt
// until investigated.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// IsRetryable returns true if the error is temporary and the operation can
// be retried.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreNotReady) ||
		errors.Is(err, ErrTransactionFailed)
}
