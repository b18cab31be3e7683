package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the router façade: the only sanctioned entry point for end
// users. It resolves pools through the registry, balances deposit ratios,
// and applies the owner-fee split on swaps.
type MsgServer interface {
	CreatePair(context.Context, *MsgCreatePair) (*MsgCreatePairResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
}

// MsgCreatePairResponse is the response for MsgCreatePair
type MsgCreatePairResponse struct {
	PoolId    uint64 `json:"pool_id"`
	PairIndex uint64 `json:"pair_index"`
}

// MsgAddLiquidityResponse is the response for MsgAddLiquidity
type MsgAddLiquidityResponse struct {
	Shares  math.Int `json:"shares"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgRemoveLiquidityResponse is the response for MsgRemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapResponse is the response for MsgSwap
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
	OwnerFee  math.Int `json:"owner_fee"`
}
