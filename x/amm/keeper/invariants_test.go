package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/basepool-labs/basepool/testutil/keeper"
	"github.com/basepool-labs/basepool/x/amm/keeper"
)

func TestInvariantsHoldAfterOperations(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)
	trader := keepertest.TestAddress(2)

	pool := seedPool(t, k, ledger, ctx, owner, 50_000_000, 100_000_000)

	ledger.Fund(trader, sdk.NewCoins(sdk.NewCoin("ubase", math.NewInt(10_000_000))))
	_, _, err := k.ExecuteSwap(ctx, trader, "ubase", "uusdt", math.NewInt(10_000_000), math.ZeroInt())
	require.NoError(t, err)

	_, _, err = k.RemoveLiquidity(ctx, owner, pool.Id, pool.TotalShares.QuoRaw(3))
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, msg)
}

func TestModuleBalanceInvariantDetectsShortfall(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)

	pool := seedPool(t, k, ledger, ctx, owner, 50_000_000, 100_000_000)

	// Inflate the recorded reserve past what the module actually holds.
	pool.ReserveA = pool.ReserveA.MulRaw(2)
	require.NoError(t, k.SetPool(ctx, pool))

	msg, broken := keeper.ModuleBalanceInvariant(*k)(ctx)
	require.True(t, broken, msg)
}

func TestShareSupplyInvariantDetectsMismatch(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)

	pool := seedPool(t, k, ledger, ctx, owner, 50_000_000, 100_000_000)

	require.NoError(t, k.SetLiquidity(ctx, pool.Id, keepertest.TestAddress(9), math.NewInt(12345)))

	msg, broken := keeper.ShareSupplyInvariant(*k)(ctx)
	require.True(t, broken, msg)
}
