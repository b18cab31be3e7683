package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basepool-labs/basepool/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePair handles registration of a new token pair
func (ms msgServer) CreatePair(goCtx context.Context, msg *types.MsgCreatePair) (*types.MsgCreatePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePair: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: invalid creator address: %w", err)
	}

	pool, err := ms.Keeper.CreatePair(goCtx, creator, msg.TokenA, msg.TokenB)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: %w", err)
	}

	return &types.MsgCreatePairResponse{
		PoolId:    pool.Id,
		PairIndex: ms.Keeper.GetPairCount(goCtx) - 1,
	}, nil
}

// AddLiquidity handles a liquidity deposit. The caller names desired amounts
// for both tokens; when the pool already holds reserves the deposit is
// trimmed to the reserve ratio so no more than the desired amounts move and
// nothing is silently donated.
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	amountA, amountB := msg.AmountA, msg.AmountB
	swapped := msg.TokenA > msg.TokenB
	if swapped {
		amountA, amountB = amountB, amountA
	}

	pool, err := ms.Keeper.GetPoolByDenoms(goCtx, msg.TokenA, msg.TokenB)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	depositA, depositB := amountA, amountB
	if !pool.TotalShares.IsZero() {
		depositA, depositB, err = balanceDeposit(amountA, amountB, pool.ReserveA, pool.ReserveB)
		if err != nil {
			return nil, fmt.Errorf("AddLiquidity: %w", err)
		}
	}

	shares, err := ms.Keeper.AddLiquidity(goCtx, provider, pool.Id, depositA, depositB)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	if swapped {
		depositA, depositB = depositB, depositA
	}
	return &types.MsgAddLiquidityResponse{
		Shares:  shares,
		AmountA: depositA,
		AmountB: depositB,
	}, nil
}

// balanceDeposit trims a desired deposit to the pool's reserve ratio. One
// side is used in full and the other is reduced to match, never increased.
func balanceDeposit(amountA, amountB, reserveA, reserveB math.Int) (math.Int, math.Int, error) {
	optimalB, err := SafeMulDiv(amountA, reserveB, reserveA)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrOverflow.Wrap(err.Error())
	}
	if optimalB.LTE(amountB) {
		return amountA, optimalB, nil
	}

	optimalA, err := SafeMulDiv(amountB, reserveA, reserveB)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrOverflow.Wrap(err.Error())
	}
	return optimalA, amountB, nil
}

// RemoveLiquidity handles a share burn against the pair's pool
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	pool, err := ms.Keeper.GetPoolByDenoms(goCtx, msg.TokenA, msg.TokenB)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	amountA, amountB, err := ms.Keeper.RemoveLiquidity(goCtx, provider, pool.Id, msg.Shares)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	if msg.TokenA > msg.TokenB {
		amountA, amountB = amountB, amountA
	}
	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// Swap handles a token swap
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	amountOut, ownerFee, err := ms.Keeper.ExecuteSwap(goCtx, trader, msg.TokenIn, msg.TokenOut, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{
		AmountOut: amountOut,
		OwnerFee:  ownerFee,
	}, nil
}
