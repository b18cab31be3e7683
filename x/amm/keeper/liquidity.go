package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basepool-labs/basepool/x/amm/types"
)

// GetLiquidity retrieves a provider's share position in a pool
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(PositionKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return shares, nil
}

// SetLiquidity sets a provider's share position in a pool
func (k Keeper) SetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(PositionKey(poolID, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(PositionKey(poolID, provider), bz)
	return nil
}

// AddLiquidity deposits the given amounts into a pool and mints shares to the
// provider. Amounts are in the pool's canonical token order and are the exact
// amounts transferred; callers wanting ratio matching balance them first.
//
// The first deposit into an empty pool mints floor(sqrt(amountA*amountB))
// shares. Later deposits mint the minimum of the two proportional claims, so
// an unbalanced deposit mints as if it matched the ratio and the surplus
// accrues to existing holders.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, error) {
	if !amountA.IsPositive() || !amountB.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("deposit amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	var newShares math.Int
	if pool.TotalShares.IsZero() {
		newShares, err = BootstrapShares(amountA, amountB)
		if err != nil {
			return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
		}
		if newShares.LT(params.MinLiquidity) {
			return math.ZeroInt(), types.ErrInsufficientLiquidityMinted.Wrapf(
				"initial shares %s below minimum %s", newShares, params.MinLiquidity)
		}
	} else {
		if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
			return math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
		}

		sharesByA, err := SafeMulDiv(amountA, pool.TotalShares, pool.ReserveA)
		if err != nil {
			return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
		}
		sharesByB, err := SafeMulDiv(amountB, pool.TotalShares, pool.ReserveB)
		if err != nil {
			return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
		}

		newShares = math.MinInt(sharesByA, sharesByB)
		if newShares.IsZero() {
			return math.ZeroInt(), types.ErrInsufficientLiquidityMinted.Wrap("deposit too small to mint shares")
		}
	}

	newReserveA, err := SafeAdd(pool.ReserveA, amountA)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	newReserveB, err := SafeAdd(pool.ReserveB, amountB)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	newTotalShares, err := SafeAdd(pool.TotalShares, newShares)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}

	// Transfer before touching state so a failed deposit leaves the pool
	// untouched.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	coins := sdk.NewCoins(sdk.NewCoin(pool.TokenA, amountA), sdk.NewCoin(pool.TokenB, amountB))
	if err := k.bankKeeper.SendCoins(sdkCtx, provider, moduleAddr, coins); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer deposit: %v", err)
	}

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	pool.TotalShares = newTotalShares

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	currentShares, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return math.ZeroInt(), err
	}
	providerShares, err := SafeAdd(currentShares, newShares)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	if err := k.SetLiquidity(ctx, poolID, provider, providerShares); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, newShares.String()),
		),
	)

	return newShares, nil
}

// RemoveLiquidity burns the given shares and pays the provider their
// proportional cut of both reserves. Burning the entire supply drains the
// pool back to its empty state; the pair stays registered and can be seeded
// again. Truncation can round a tiny payout to zero and the shares are still
// burned.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (math.Int, math.Int, error) {
	if !shares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientShares.Wrap("shares must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	if pool.TotalShares.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidityBurned.Wrap("pool has no shares outstanding")
	}

	userShares, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if shares.GT(userShares) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientShares.Wrapf("have %s, need %s", userShares, shares)
	}

	amountA, err := SafeMulDiv(pool.ReserveA, shares, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	amountB, err := SafeMulDiv(pool.ReserveB, shares, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}

	newReserveA, err := SafeSub(pool.ReserveA, amountA)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	newReserveB, err := SafeSub(pool.ReserveB, amountB)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}
	newTotalShares, err := SafeSub(pool.TotalShares, shares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrap(err.Error())
	}

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	pool.TotalShares = newTotalShares

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	if err := k.SetLiquidity(ctx, poolID, provider, userShares.Sub(shares)); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	payout := sdk.NewCoins(sdk.NewCoin(pool.TokenA, amountA), sdk.NewCoin(pool.TokenB, amountB))
	if !payout.IsZero() {
		if err := k.bankKeeper.SendCoins(sdkCtx, moduleAddr, provider, payout); err != nil {
			return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer payout: %v", err)
		}
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return amountA, amountB, nil
}

// IterateLiquidityByPool iterates over all share positions in a pool
func (k Keeper) IterateLiquidityByPool(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := PositionByPoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return err
		}

		provider := sdk.AccAddress(iterator.Key()[len(prefix):])
		if cb(provider, shares) {
			break
		}
	}
	return nil
}
