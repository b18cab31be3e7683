package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basepool-labs/basepool/x/amm/types"
)

// GetAmountOut prices a swap against a pair of reserves without any fee:
// floor(reserveOut * amountIn / (reserveIn + amountIn)). Truncation always
// rounds in the pool's favor, so the reserve product never decreases.
func GetAmountOut(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("swap input must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("pool has no liquidity")
	}

	denominator, err := SafeAdd(reserveIn, amountIn)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	out, err := SafeMulDiv(reserveOut, amountIn, denominator)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	return out, nil
}

// OwnerFee returns the owner's cut of a swap input under the given params:
// floor(amountIn * feeNumerator / feeFactor). The fee is paid straight to
// the pool owner and never enters the reserves.
func OwnerFee(amountIn math.Int, params types.Params) (math.Int, error) {
	fee, err := SafeMulDiv(amountIn, params.FeeNumerator, params.FeeFactor)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	return fee, nil
}

// ExecuteSwap swaps amountIn of tokenIn for tokenOut against the pair's pool.
// The owner fee is carved off the input first and sent to the pool owner; the
// remainder is priced by the constant-product rule and enters the reserves.
// Fails with ErrInsufficientOutputAmount when the priced output is zero or
// under minAmountOut.
func (k Keeper) ExecuteSwap(ctx context.Context, trader sdk.AccAddress, tokenIn, tokenOut string, amountIn, minAmountOut math.Int) (math.Int, math.Int, error) {
	if !amountIn.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("swap input must be positive")
	}

	pool, err := k.GetPoolByDenoms(ctx, tokenIn, tokenOut)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	ownerFee, err := OwnerFee(amountIn, params)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	afterFee := amountIn.Sub(ownerFee)
	if !afterFee.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("swap input consumed entirely by fee")
	}

	reserveIn, reserveOut, err := pool.Reserves(tokenIn)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	amountOut, err := GetAmountOut(afterFee, reserveIn, reserveOut)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if amountOut.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientOutputAmount.Wrap("swap output rounds to zero")
	}
	if amountOut.LT(minAmountOut) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientOutputAmount.Wrapf(
			"output %s below minimum %s", amountOut, minAmountOut)
	}

	oldK := pool.K()

	newReserveIn, err := SafeAdd(reserveIn, afterFee)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	newReserveOut, err := SafeSub(reserveOut, amountOut)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}

	if tokenIn == pool.TokenA {
		pool.ReserveA = newReserveIn
		pool.ReserveB = newReserveOut
	} else {
		pool.ReserveA = newReserveOut
		pool.ReserveB = newReserveIn
	}

	if pool.K().LT(oldK) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvariantViolation.Wrapf(
			"reserve product decreased: %s -> %s", oldK, pool.K())
	}

	// Collect the input and fee before touching state so a failed transfer
	// leaves the pool untouched.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	if err := k.bankKeeper.SendCoins(sdkCtx, trader, moduleAddr, sdk.NewCoins(sdk.NewCoin(tokenIn, afterFee))); err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer swap input: %v", err)
	}
	if ownerFee.IsPositive() {
		owner, err := sdk.AccAddressFromBech32(pool.Creator)
		if err != nil {
			return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidPoolState.Wrapf("invalid pool owner address: %v", err)
		}
		if err := k.bankKeeper.SendCoins(sdkCtx, trader, owner, sdk.NewCoins(sdk.NewCoin(tokenIn, ownerFee))); err != nil {
			return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer owner fee: %v", err)
		}
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	if err := k.bankKeeper.SendCoins(sdkCtx, moduleAddr, trader, sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))); err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer swap output: %v", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyOwnerFee, ownerFee.String()),
		),
	)

	return amountOut, ownerFee, nil
}

// SimulateSwap prices a swap under the current params and reserves without
// touching state. The result matches what ExecuteSwap would pay out.
func (k Keeper) SimulateSwap(ctx context.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, math.Int, error) {
	if !amountIn.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("swap input must be positive")
	}

	pool, err := k.GetPoolByDenoms(ctx, tokenIn, tokenOut)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	ownerFee, err := OwnerFee(amountIn, params)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	afterFee := amountIn.Sub(ownerFee)
	if !afterFee.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("swap input consumed entirely by fee")
	}

	reserveIn, reserveOut, err := pool.Reserves(tokenIn)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	amountOut, err := GetAmountOut(afterFee, reserveIn, reserveOut)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	return amountOut, ownerFee, nil
}
