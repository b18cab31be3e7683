package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer is the module's read surface.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	PoolByDenoms(context.Context, *QueryPoolByDenomsRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	PairCount(context.Context, *QueryPairCountRequest) (*QueryPairCountResponse, error)
	Position(context.Context, *QueryPositionRequest) (*QueryPositionResponse, error)
	SimulateSwap(context.Context, *QuerySimulateSwapRequest) (*QuerySimulateSwapResponse, error)
}

// QueryParamsRequest requests the module parameters.
type QueryParamsRequest struct{}

// QueryParamsResponse carries the fee rate and dust guard configuration.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest requests a pool by id.
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPoolByDenomsRequest requests the pool for an unordered token pair.
type QueryPoolByDenomsRequest struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

// QueryPoolResponse carries a single pool.
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest requests pools in creation order.
type QueryPoolsRequest struct {
	// Limit bounds the result set; zero means the server default.
	Limit uint64 `json:"limit"`
}

// QueryPoolsResponse carries pools in creation order.
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

// QueryPairCountRequest requests the number of pairs ever created.
type QueryPairCountRequest struct{}

// QueryPairCountResponse carries the registry's pair count.
type QueryPairCountResponse struct {
	Count uint64 `json:"count"`
}

// QueryPositionRequest requests a provider's share position in a pool.
type QueryPositionRequest struct {
	PoolId   uint64 `json:"pool_id"`
	Provider string `json:"provider"`
}

// QueryPositionResponse carries a share position.
type QueryPositionResponse struct {
	Position Position `json:"position"`
}

// QuerySimulateSwapRequest prices a swap without executing it. The returned
// amount is computed on the fee-adjusted input, the exact amount a MsgSwap
// with the same arguments would pay out.
type QuerySimulateSwapRequest struct {
	TokenIn  string   `json:"token_in"`
	TokenOut string   `json:"token_out"`
	AmountIn math.Int `json:"amount_in"`
}

// QuerySimulateSwapResponse carries the priced swap.
type QuerySimulateSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
	OwnerFee  math.Int `json:"owner_fee"`
}
