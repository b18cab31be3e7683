package types

import (
	"cosmossdk.io/math"
)

// Params holds the module's fixed configuration. The fee is a rational
// FeeNumerator/FeeFactor cut of every swap input, paid to the pool owner
// before the remainder enters reserves. Set at genesis, immutable at
// runtime: the module exposes no parameter-update message.
type Params struct {
	FeeNumerator math.Int `json:"fee_numerator"`
	FeeFactor    math.Int `json:"fee_factor"`
	// MinLiquidity bounds the bootstrap share mint to keep dust pools out.
	MinLiquidity math.Int `json:"min_liquidity"`
}

// DefaultParams returns default parameters for the amm module: a 0.3% owner
// fee and a minimal dust guard.
func DefaultParams() Params {
	return Params{
		FeeNumerator: math.NewInt(3),
		FeeFactor:    math.NewInt(1000),
		MinLiquidity: math.OneInt(),
	}
}

// Validate ensures 0 <= FeeNumerator < FeeFactor and a positive dust guard.
func (p Params) Validate() error {
	if p.FeeNumerator.IsNil() || p.FeeFactor.IsNil() || p.MinLiquidity.IsNil() {
		return ErrInvalidParams.Wrap("parameters cannot be nil")
	}
	if p.FeeNumerator.IsNegative() {
		return ErrInvalidParams.Wrap("fee numerator cannot be negative")
	}
	if !p.FeeFactor.IsPositive() {
		return ErrInvalidParams.Wrap("fee factor must be positive")
	}
	if p.FeeNumerator.GTE(p.FeeFactor) {
		return ErrInvalidParams.Wrapf("fee numerator %s must be below fee factor %s",
			p.FeeNumerator, p.FeeFactor)
	}
	if !p.MinLiquidity.IsPositive() {
		return ErrInvalidParams.Wrap("min liquidity must be positive")
	}
	return nil
}
