package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/basepool-labs/basepool/testutil/keeper"
	"github.com/basepool-labs/basepool/x/amm/types"
)

func TestCreatePair(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddress(1)

	tests := []struct {
		name    string
		tokenA  string
		tokenB  string
		wantErr error
	}{
		{
			name:   "valid pair",
			tokenA: "ubase",
			tokenB: "uusdt",
		},
		{
			name:    "duplicate pair",
			tokenA:  "ubase",
			tokenB:  "uusdt",
			wantErr: types.ErrPairAlreadyExists,
		},
		{
			name:    "duplicate pair reversed",
			tokenA:  "uusdt",
			tokenB:  "ubase",
			wantErr: types.ErrPairAlreadyExists,
		},
		{
			name:    "identical tokens",
			tokenA:  "ubase",
			tokenB:  "ubase",
			wantErr: types.ErrInvalidTokenPair,
		},
		{
			name:    "empty denom",
			tokenA:  "",
			tokenB:  "ubase",
			wantErr: types.ErrInvalidTokenPair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := k.CreatePair(ctx, creator, tt.tokenA, tt.tokenB)

			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, pool)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, pool)
			require.Equal(t, uint64(1), pool.Id)
			require.Equal(t, "ubase", pool.TokenA)
			require.Equal(t, "uusdt", pool.TokenB)
			require.Equal(t, creator.String(), pool.Creator)
			require.True(t, pool.IsEmpty())
		})
	}

	// Failed attempts must not grow the registry.
	require.Equal(t, uint64(1), k.GetPairCount(ctx))
}

func TestCreatePairCanonicalOrder(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddress(1)

	// Denoms passed in reverse order are stored canonically.
	pool, err := k.CreatePair(ctx, creator, "uusdt", "uatom")
	require.NoError(t, err)
	require.Equal(t, "uatom", pool.TokenA)
	require.Equal(t, "uusdt", pool.TokenB)
}

func TestPairCountGrowsPerPair(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddress(1)

	require.Equal(t, uint64(0), k.GetPairCount(ctx))

	_, err := k.CreatePair(ctx, creator, "ubase", "uusdt")
	require.NoError(t, err)
	require.Equal(t, uint64(1), k.GetPairCount(ctx))

	second, err := k.CreatePair(ctx, creator, "ubase", "uatom")
	require.NoError(t, err)
	require.Equal(t, uint64(2), k.GetPairCount(ctx))
	require.Equal(t, uint64(2), second.Id)
}

func TestGetPoolByDenomsSymmetry(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddress(1)

	created, err := k.CreatePair(ctx, creator, "ubase", "uusdt")
	require.NoError(t, err)

	forward, err := k.GetPoolByDenoms(ctx, "ubase", "uusdt")
	require.NoError(t, err)
	reverse, err := k.GetPoolByDenoms(ctx, "uusdt", "ubase")
	require.NoError(t, err)

	require.Equal(t, created.Id, forward.Id)
	require.Equal(t, created.Id, reverse.Id)
}

func TestGetPoolByDenomsNotFound(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, err := k.GetPoolByDenoms(ctx, "ubase", "uusdt")
	require.ErrorIs(t, err, types.ErrPairNotFound)
}

func TestGetPoolNotFound(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, err := k.GetPool(ctx, 42)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestGetAllPoolsCreationOrder(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	creator := keepertest.TestAddress(1)

	_, err := k.CreatePair(ctx, creator, "ubase", "uusdt")
	require.NoError(t, err)
	_, err = k.CreatePair(ctx, creator, "uatom", "ubase")
	require.NoError(t, err)

	pools, err := k.GetAllPools(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	require.Equal(t, uint64(1), pools[0].Id)
	require.Equal(t, uint64(2), pools[1].Id)
}
