package tycoon

import "github.com/xraph/tycoon/types"

// Re-export common types for convenience so users don't have to import types package.

// Coins is re-exported from types package.
type Coins = types.Coins

// Entity is re-exported from types package.
type Entity = types.Entity

// Re-export Coins constructors and constants.
var (
	FromWhole = types.FromWhole
	SumCoins  = types.SumCoins
)

// MicrosPerCoin is the fixed-point scale of Coins.
const MicrosPerCoin = types.MicrosPerCoin

// BpsDenominator is the basis-point scale (10,000 bp = 100%).
const BpsDenominator = types.BpsDenominator

// Re-export Entity constructor
var NewEntity = types.NewEntity
