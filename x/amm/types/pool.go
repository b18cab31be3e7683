package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the reserve/share ledger for a single token pair. Pools are created
// exclusively by the registry and enter the store fully configured, so a
// stored pool is initialized by construction; there is no separate init step
// to repeat. Denoms are held in canonical order (TokenA < TokenB).
type Pool struct {
	Id          uint64   `json:"id"`
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	// Creator is the pool owner entitled to the protocol fee cut on swaps.
	Creator string `json:"creator"`
}

// NewPool returns an empty pool for the given pair. Denoms are reordered
// canonically; reserves and shares start at zero until the first deposit.
func NewPool(id uint64, tokenA, tokenB, creator string) Pool {
	tokenA, tokenB = OrderDenoms(tokenA, tokenB)
	return Pool{
		Id:          id,
		TokenA:      tokenA,
		TokenB:      tokenB,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
		Creator:     creator,
	}
}

// IsEmpty reports whether the pool holds no liquidity.
func (p Pool) IsEmpty() bool {
	return p.TotalShares.IsZero()
}

// K returns the constant product reserveA * reserveB.
func (p Pool) K() math.Int {
	return p.ReserveA.Mul(p.ReserveB)
}

// HasDenom reports whether denom is one of the pool's two tokens.
func (p Pool) HasDenom(denom string) bool {
	return denom == p.TokenA || denom == p.TokenB
}

// OtherDenom returns the pool token paired with denom.
func (p Pool) OtherDenom(denom string) string {
	if denom == p.TokenA {
		return p.TokenB
	}
	return p.TokenA
}

// Reserves returns the reserves oriented for a swap of tokenIn into the pool.
func (p Pool) Reserves(tokenIn string) (reserveIn, reserveOut math.Int, err error) {
	switch tokenIn {
	case p.TokenA:
		return p.ReserveA, p.ReserveB, nil
	case p.TokenB:
		return p.ReserveB, p.ReserveA, nil
	default:
		return math.Int{}, math.Int{}, ErrInvalidTokenPair.Wrapf(
			"token %s not in pool %d (%s/%s)", tokenIn, p.Id, p.TokenA, p.TokenB)
	}
}

// Validate checks the structural pool invariants: canonical denom order,
// non-negative balances, and empty-reserves-iff-no-shares.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolState.Wrap("pool id cannot be zero")
	}
	if p.TokenA == "" || p.TokenB == "" {
		return ErrInvalidTokenPair.Wrap("token denoms cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return ErrInvalidTokenPair.Wrap("token denoms must be different")
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidPoolState.Wrap("tokens must be ordered: token_a < token_b")
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("pool balances cannot be nil")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() {
		return ErrInvalidPoolState.Wrap("reserves cannot be negative")
	}
	if p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("total shares cannot be negative")
	}
	if _, err := sdk.AccAddressFromBech32(p.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}

	emptyReserves := p.ReserveA.IsZero() && p.ReserveB.IsZero()
	if emptyReserves != p.TotalShares.IsZero() {
		if emptyReserves {
			return ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
		}
		return ErrInvalidPoolState.Wrap("pool has reserves but no shares")
	}
	if !emptyReserves && (p.ReserveA.IsZero() || p.ReserveB.IsZero()) {
		return ErrInvalidPoolState.Wrap("pool has a one-sided reserve")
	}

	return nil
}

// Position is a liquidity provider's share holding in a pool.
type Position struct {
	PoolId   uint64   `json:"pool_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}

// Validate checks a position for genesis import.
func (pos Position) Validate() error {
	if pos.PoolId == 0 {
		return ErrInvalidPoolState.Wrap("position pool id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(pos.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
		return ErrInsufficientShares.Wrap("position shares must be positive")
	}
	return nil
}
