package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/basepool-labs/basepool/testutil/keeper"
	"github.com/basepool-labs/basepool/x/amm/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddress(1)
	provider := keepertest.TestAddress(2)

	pool := seedPool(t, k, ledger, ctx, creator, 50_000_000, 100_000_000)

	fund(ledger, provider, 5_000_000, 10_000_000)
	_, err := k.AddLiquidity(ctx, provider, pool.Id, math.NewInt(5_000_000), math.NewInt(10_000_000))
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Len(t, exported.Pools, 1)
	require.Len(t, exported.Positions, 2)
	require.Equal(t, uint64(2), exported.NextPoolId)

	// Seed a fresh keeper from the export and compare.
	k2, _, ctx2 := keepertest.AmmKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	restored, err := k2.GetPool(ctx2, pool.Id)
	require.NoError(t, err)
	require.Equal(t, exported.Pools[0], *restored)

	require.Equal(t, uint64(1), k2.GetPairCount(ctx2))

	byPair, err := k2.GetPoolByDenoms(ctx2, "uusdt", "ubase")
	require.NoError(t, err)
	require.Equal(t, restored.Id, byPair.Id)

	for _, pos := range exported.Positions {
		addr, err := sdk.AccAddressFromBech32(pos.Provider)
		require.NoError(t, err)
		shares, err := k2.GetLiquidity(ctx2, pos.PoolId, addr)
		require.NoError(t, err)
		require.Equal(t, pos.Shares, shares)
	}

	reexported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported.Params, reexported.Params)
	require.ElementsMatch(t, exported.Pools, reexported.Pools)
	require.ElementsMatch(t, exported.Positions, reexported.Positions)
	require.Equal(t, exported.NextPoolId, reexported.NextPoolId)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	genState := types.DefaultGenesis()
	genState.Params.FeeFactor = math.ZeroInt()

	require.Error(t, k.InitGenesis(ctx, *genState))
}

func TestInitGenesisPreservesNextPoolID(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddress(1)

	genState := types.DefaultGenesis()
	genState.NextPoolId = 7
	require.NoError(t, k.InitGenesis(ctx, *genState))

	pool, err := k.CreatePair(ctx, creator, "ubase", "uusdt")
	require.NoError(t, err)
	require.Equal(t, uint64(7), pool.Id)
}
