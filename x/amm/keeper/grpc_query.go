package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/basepool-labs/basepool/x/amm/types"
)

// Querier implements the module's QueryServer against the keeper
type Querier struct {
	Keeper
}

// NewQuerier returns a QueryServer backed by the keeper
func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

var _ types.QueryServer = Querier{}

// Params returns the current module parameters
func (q Querier) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Pool returns a pool by id
func (q Querier) Pool(ctx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, err := q.GetPool(ctx, req.PoolId)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: *pool}, nil
}

// PoolByDenoms returns the pool for a token pair in either order
func (q Querier) PoolByDenoms(ctx context.Context, req *types.QueryPoolByDenomsRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, err := q.GetPoolByDenoms(ctx, req.TokenA, req.TokenB)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: *pool}, nil
}

// Pools returns pools in creation order
func (q Querier) Pools(ctx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pools, err := q.GetAllPools(ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolsResponse{Pools: pools}, nil
}

// PairCount returns the number of pairs ever created
func (q Querier) PairCount(ctx context.Context, req *types.QueryPairCountRequest) (*types.QueryPairCountResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	return &types.QueryPairCountResponse{Count: q.GetPairCount(ctx)}, nil
}

// Position returns a provider's share position in a pool. An address with no
// position reports zero shares rather than an error.
func (q Querier) Position(ctx context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}

	if _, err := q.GetPool(ctx, req.PoolId); err != nil {
		return nil, err
	}

	shares, err := q.GetLiquidity(ctx, req.PoolId, provider)
	if err != nil {
		return nil, err
	}
	return &types.QueryPositionResponse{
		Position: types.Position{
			PoolId:   req.PoolId,
			Provider: req.Provider,
			Shares:   shares,
		},
	}, nil
}

// SimulateSwap prices a swap without executing it
func (q Querier) SimulateSwap(ctx context.Context, req *types.QuerySimulateSwapRequest) (*types.QuerySimulateSwapResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	amountOut, ownerFee, err := q.Keeper.SimulateSwap(ctx, req.TokenIn, req.TokenOut, req.AmountIn)
	if err != nil {
		return nil, err
	}
	return &types.QuerySimulateSwapResponse{
		AmountOut: amountOut,
		OwnerFee:  ownerFee,
	}, nil
}
