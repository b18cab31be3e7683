package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrPoolNotFound                = errors.Register(ModuleName, 2, "pool not found")
	ErrPairAlreadyExists           = errors.Register(ModuleName, 3, "pair already exists")
	ErrPairNotFound                = errors.Register(ModuleName, 4, "no pool exists for token pair")
	ErrInvalidTokenPair            = errors.Register(ModuleName, 5, "invalid token pair")
	ErrInvalidAmount               = errors.Register(ModuleName, 6, "invalid amount")
	ErrInvalidAddress              = errors.Register(ModuleName, 7, "invalid address")
	ErrInsufficientLiquidityMinted = errors.Register(ModuleName, 8, "insufficient liquidity minted")
	ErrInsufficientLiquidityBurned = errors.Register(ModuleName, 9, "insufficient liquidity burned")
	ErrInsufficientShares          = errors.Register(ModuleName, 10, "insufficient liquidity shares")
	ErrInsufficientLiquidity       = errors.Register(ModuleName, 11, "insufficient liquidity in pool")
	ErrInsufficientOutputAmount    = errors.Register(ModuleName, 12, "insufficient output amount")
	ErrInvariantViolation          = errors.Register(ModuleName, 13, "constant product invariant violated")
	ErrInvalidPoolState            = errors.Register(ModuleName, 14, "invalid pool state")
	ErrOverflow                    = errors.Register(ModuleName, 15, "arithmetic overflow")
	ErrInvalidParams               = errors.Register(ModuleName, 16, "invalid module parameters")
)
