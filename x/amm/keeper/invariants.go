package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basepool-labs/basepool/x/amm/types"
)

// RegisterInvariants registers all amm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PoolStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ShareSupplyInvariant(k)(ctx)
	}
}

// ModuleBalanceInvariant checks that the module account covers every pool's
// recorded reserves. Donations can push the balance above the sum of
// reserves, never below.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		required := map[string]math.Int{}
		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			for _, part := range []struct {
				denom   string
				reserve math.Int
			}{
				{pool.TokenA, pool.ReserveA},
				{pool.TokenB, pool.ReserveB},
			} {
				cur, ok := required[part.denom]
				if !ok {
					cur = math.ZeroInt()
				}
				required[part.denom] = cur.Add(part.reserve)
			}
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance", err.Error()), true
		}

		moduleAddr := k.GetModuleAddress()
		for denom, reserve := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(reserve) {
				count++
				msg += fmt.Sprintf("module balance for %s (%s) < total reserves (%s)\n",
					denom, balance.Amount, reserve)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "module-balance",
			fmt.Sprintf("%d under-collateralized denoms\n%s", count, msg),
		), broken
	}
}

// PoolStateInvariant checks that every stored pool is internally consistent:
// canonical token order, non-negative amounts, and reserves empty exactly
// when no shares are outstanding.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Id, err)
			}
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-state", err.Error()), true
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-state",
			fmt.Sprintf("%d invalid pools\n%s", count, msg),
		), broken
	}
}

// ShareSupplyInvariant checks that per-provider positions sum to each pool's
// total share supply.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			sum := math.ZeroInt()
			if err := k.IterateLiquidityByPool(ctx, pool.Id, func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			}); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Id, err)
				return false
			}

			if !sum.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %d: positions sum to %s, total shares %s\n",
					pool.Id, sum, pool.TotalShares)
			}
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "share-supply", err.Error()), true
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("%d pools with mismatched share supply\n%s", count, msg),
		), broken
	}
}
