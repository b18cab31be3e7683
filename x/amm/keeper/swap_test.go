package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/basepool-labs/basepool/testutil/keeper"
	"github.com/basepool-labs/basepool/x/amm/keeper"
	"github.com/basepool-labs/basepool/x/amm/types"
)

func TestGetAmountOut(t *testing.T) {
	tests := []struct {
		name       string
		amountIn   int64
		reserveIn  int64
		reserveOut int64
		want       int64
		wantErr    error
	}{
		{
			name:       "balanced reserves",
			amountIn:   1_000_000,
			reserveIn:  100_000_000,
			reserveOut: 100_000_000,
			// floor(100e6 * 1e6 / 101e6)
			want: 990_099,
		},
		{
			name:       "skewed reserves",
			amountIn:   10_000_000,
			reserveIn:  50_000_000,
			reserveOut: 100_000_000,
			// floor(100e6 * 10e6 / 60e6)
			want: 16_666_666,
		},
		{
			name:       "tiny input truncates to zero",
			amountIn:   1,
			reserveIn:  100_000_000,
			reserveOut: 50,
			want:       0,
		},
		{
			name:      "zero input",
			amountIn:  0,
			reserveIn: 100, reserveOut: 100,
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:      "empty reserves",
			amountIn:  100,
			reserveIn: 0, reserveOut: 0,
			wantErr: types.ErrInsufficientLiquidity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := keeper.GetAmountOut(math.NewInt(tt.amountIn), math.NewInt(tt.reserveIn), math.NewInt(tt.reserveOut))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tt.want), out)
		})
	}
}

func TestGetAmountOutPreservesProduct(t *testing.T) {
	reserveIn := math.NewInt(50_000_000)
	reserveOut := math.NewInt(100_000_000)
	oldK := reserveIn.Mul(reserveOut)

	for _, amountIn := range []int64{1, 7, 999, 123_457, 9_999_999, 50_000_000} {
		out, err := keeper.GetAmountOut(math.NewInt(amountIn), reserveIn, reserveOut)
		require.NoError(t, err)

		newK := reserveIn.AddRaw(amountIn).Mul(reserveOut.Sub(out))
		require.True(t, newK.GTE(oldK), "product decreased for input %d", amountIn)
	}
}

func TestExecuteSwapFeeSplit(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)
	trader := keepertest.TestAddress(2)

	pool := seedPool(t, k, ledger, ctx, owner, 50_000_000, 100_000_000)

	ledger.Fund(trader, sdk.NewCoins(sdk.NewCoin("ubase", math.NewInt(10_000_000))))

	amountOut, ownerFee, err := k.ExecuteSwap(ctx, trader, "ubase", "uusdt", math.NewInt(10_000_000), math.ZeroInt())
	require.NoError(t, err)

	// fee = floor(10e6 * 3 / 1000); after fee 9_970_000 enters the pool:
	// floor(100e6 * 9_970_000 / 59_970_000)
	require.Equal(t, math.NewInt(30_000), ownerFee)
	require.Equal(t, math.NewInt(16_624_979), amountOut)

	after, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(59_970_000), after.ReserveA)
	require.Equal(t, math.NewInt(83_375_021), after.ReserveB)
	require.True(t, after.K().GTE(pool.K()))

	// Owner is paid the fee directly; it never enters the reserves.
	require.Equal(t, math.NewInt(30_000), ledger.GetBalance(ctx, owner, "ubase").Amount)
	require.True(t, ledger.GetBalance(ctx, trader, "ubase").Amount.IsZero())
	require.Equal(t, amountOut, ledger.GetBalance(ctx, trader, "uusdt").Amount)

	moduleAddr := k.GetModuleAddress()
	require.Equal(t, after.ReserveA, ledger.GetBalance(ctx, moduleAddr, "ubase").Amount)
	require.Equal(t, after.ReserveB, ledger.GetBalance(ctx, moduleAddr, "uusdt").Amount)
}

func TestExecuteSwapReverseDirection(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)
	trader := keepertest.TestAddress(2)

	pool := seedPool(t, k, ledger, ctx, owner, 50_000_000, 100_000_000)

	ledger.Fund(trader, sdk.NewCoins(sdk.NewCoin("uusdt", math.NewInt(10_000_000))))

	amountOut, ownerFee, err := k.ExecuteSwap(ctx, trader, "uusdt", "ubase", math.NewInt(10_000_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(30_000), ownerFee)

	// floor(50e6 * 9_970_000 / 109_970_000)
	require.Equal(t, math.NewInt(4_533_054), amountOut)

	after, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50_000_000).Sub(amountOut), after.ReserveA)
	require.Equal(t, math.NewInt(109_970_000), after.ReserveB)
	require.True(t, after.K().GTE(pool.K()))
}

func TestExecuteSwapMinAmountOut(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)
	trader := keepertest.TestAddress(2)

	pool := seedPool(t, k, ledger, ctx, owner, 50_000_000, 100_000_000)
	ledger.Fund(trader, sdk.NewCoins(sdk.NewCoin("ubase", math.NewInt(10_000_000))))

	_, _, err := k.ExecuteSwap(ctx, trader, "ubase", "uusdt", math.NewInt(10_000_000), math.NewInt(16_624_980))
	require.ErrorIs(t, err, types.ErrInsufficientOutputAmount)

	// Nothing moved.
	after, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50_000_000), after.ReserveA)
	require.Equal(t, math.NewInt(10_000_000), ledger.GetBalance(ctx, trader, "ubase").Amount)
}

func TestExecuteSwapUnknownPair(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	trader := keepertest.TestAddress(2)

	_, _, err := k.ExecuteSwap(ctx, trader, "ubase", "uusdt", math.NewInt(1_000_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrPairNotFound)
}

func TestExecuteSwapEmptyPool(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)
	trader := keepertest.TestAddress(2)

	_, err := k.CreatePair(ctx, owner, "ubase", "uusdt")
	require.NoError(t, err)

	_, _, err = k.ExecuteSwap(ctx, trader, "ubase", "uusdt", math.NewInt(1_000_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestExecuteSwapInsufficientFunds(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)
	pauper := keepertest.TestAddress(3)

	pool := seedPool(t, k, ledger, ctx, owner, 50_000_000, 100_000_000)

	_, _, err := k.ExecuteSwap(ctx, pauper, "ubase", "uusdt", math.NewInt(1_000_000), math.ZeroInt())
	require.Error(t, err)

	after, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50_000_000), after.ReserveA)
	require.Equal(t, math.NewInt(100_000_000), after.ReserveB)
}

func TestExecuteSwapProductMonotone(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)
	trader := keepertest.TestAddress(2)

	pool := seedPool(t, k, ledger, ctx, owner, 50_000_000, 100_000_000)

	ledger.Fund(trader, sdk.NewCoins(
		sdk.NewCoin("ubase", math.NewInt(100_000_000)),
		sdk.NewCoin("uusdt", math.NewInt(100_000_000)),
	))

	lastK := pool.K()
	swaps := []struct {
		tokenIn, tokenOut string
		amountIn          int64
	}{
		{"ubase", "uusdt", 1_234_567},
		{"uusdt", "ubase", 7_654_321},
		{"ubase", "uusdt", 999},
		{"uusdt", "ubase", 20_000_000},
		{"ubase", "uusdt", 5_000_000},
	}

	for _, s := range swaps {
		_, _, err := k.ExecuteSwap(ctx, trader, s.tokenIn, s.tokenOut, math.NewInt(s.amountIn), math.ZeroInt())
		require.NoError(t, err)

		after, err := k.GetPool(ctx, pool.Id)
		require.NoError(t, err)
		require.True(t, after.K().GTE(lastK), "product decreased swapping %d %s", s.amountIn, s.tokenIn)
		lastK = after.K()
	}
}

func TestSimulateSwapMatchesExecute(t *testing.T) {
	k, ledger, ctx := keepertest.AmmKeeper(t)
	owner := keepertest.TestAddress(1)
	trader := keepertest.TestAddress(2)

	seedPool(t, k, ledger, ctx, owner, 50_000_000, 100_000_000)
	ledger.Fund(trader, sdk.NewCoins(sdk.NewCoin("ubase", math.NewInt(10_000_000))))

	simOut, simFee, err := k.SimulateSwap(ctx, "ubase", "uusdt", math.NewInt(10_000_000))
	require.NoError(t, err)

	execOut, execFee, err := k.ExecuteSwap(ctx, trader, "ubase", "uusdt", math.NewInt(10_000_000), math.ZeroInt())
	require.NoError(t, err)

	require.Equal(t, simOut, execOut)
	require.Equal(t, simFee, execFee)
}

func TestOwnerFeeTruncation(t *testing.T) {
	params := types.DefaultParams()

	// Inputs below feeFactor/feeNumerator truncate to a zero fee.
	fee, err := keeper.OwnerFee(math.NewInt(300), params)
	require.NoError(t, err)
	require.True(t, fee.IsZero())

	fee, err = keeper.OwnerFee(math.NewInt(1_000), params)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), fee)
}
