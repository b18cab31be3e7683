package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/basepool-labs/basepool/x/amm/types"
)

func testAddr(index byte) string {
	addr := make([]byte, 20)
	addr[0] = index
	return sdk.AccAddress(addr).String()
}

func TestOrderDenoms(t *testing.T) {
	a, b := types.OrderDenoms("uusdt", "ubase")
	require.Equal(t, "ubase", a)
	require.Equal(t, "uusdt", b)

	a, b = types.OrderDenoms("ubase", "uusdt")
	require.Equal(t, "ubase", a)
	require.Equal(t, "uusdt", b)
}

func TestNewPoolCanonicalOrder(t *testing.T) {
	pool := types.NewPool(1, "uusdt", "uatom", testAddr(1))

	require.Equal(t, "uatom", pool.TokenA)
	require.Equal(t, "uusdt", pool.TokenB)
	require.True(t, pool.IsEmpty())
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.ReserveB.IsZero())
	require.True(t, pool.TotalShares.IsZero())
}

func TestPoolReserves(t *testing.T) {
	pool := types.NewPool(1, "ubase", "uusdt", testAddr(1))
	pool.ReserveA = math.NewInt(50)
	pool.ReserveB = math.NewInt(100)
	pool.TotalShares = math.NewInt(70)

	in, out, err := pool.Reserves("ubase")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), in)
	require.Equal(t, math.NewInt(100), out)

	in, out, err = pool.Reserves("uusdt")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), in)
	require.Equal(t, math.NewInt(50), out)

	_, _, err = pool.Reserves("uatom")
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}

func TestPoolValidate(t *testing.T) {
	valid := func() types.Pool {
		pool := types.NewPool(1, "ubase", "uusdt", testAddr(1))
		pool.ReserveA = math.NewInt(50)
		pool.ReserveB = math.NewInt(100)
		pool.TotalShares = math.NewInt(70)
		return pool
	}

	tests := []struct {
		name    string
		mutate  func(*types.Pool)
		wantErr bool
	}{
		{
			name:   "valid pool",
			mutate: func(*types.Pool) {},
		},
		{
			name:   "valid empty pool",
			mutate: func(p *types.Pool) { p.ReserveA, p.ReserveB, p.TotalShares = math.ZeroInt(), math.ZeroInt(), math.ZeroInt() },
		},
		{
			name:    "zero id",
			mutate:  func(p *types.Pool) { p.Id = 0 },
			wantErr: true,
		},
		{
			name:    "non-canonical order",
			mutate:  func(p *types.Pool) { p.TokenA, p.TokenB = p.TokenB, p.TokenA },
			wantErr: true,
		},
		{
			name:    "identical denoms",
			mutate:  func(p *types.Pool) { p.TokenB = p.TokenA },
			wantErr: true,
		},
		{
			name:    "negative reserve",
			mutate:  func(p *types.Pool) { p.ReserveA = math.NewInt(-1) },
			wantErr: true,
		},
		{
			name:    "shares without reserves",
			mutate:  func(p *types.Pool) { p.ReserveA, p.ReserveB = math.ZeroInt(), math.ZeroInt() },
			wantErr: true,
		},
		{
			name:    "reserves without shares",
			mutate:  func(p *types.Pool) { p.TotalShares = math.ZeroInt() },
			wantErr: true,
		},
		{
			name:    "one-sided reserve",
			mutate:  func(p *types.Pool) { p.ReserveB = math.ZeroInt() },
			wantErr: true,
		},
		{
			name:    "bad creator address",
			mutate:  func(p *types.Pool) { p.Creator = "nobody" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := valid()
			tt.mutate(&pool)

			err := pool.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPositionValidate(t *testing.T) {
	pos := types.Position{PoolId: 1, Provider: testAddr(1), Shares: math.NewInt(10)}
	require.NoError(t, pos.Validate())

	bad := pos
	bad.Shares = math.ZeroInt()
	require.Error(t, bad.Validate())

	bad = pos
	bad.PoolId = 0
	require.Error(t, bad.Validate())

	bad = pos
	bad.Provider = "nobody"
	require.Error(t, bad.Validate())
}

func TestParamsValidate(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.Equal(t, math.NewInt(3), params.FeeNumerator)
	require.Equal(t, math.NewInt(1000), params.FeeFactor)

	bad := types.DefaultParams()
	bad.FeeNumerator = math.NewInt(1000)
	require.Error(t, bad.Validate(), "fee numerator must stay below the factor")

	bad = types.DefaultParams()
	bad.FeeFactor = math.ZeroInt()
	require.Error(t, bad.Validate())

	bad = types.DefaultParams()
	bad.FeeNumerator = math.NewInt(-1)
	require.Error(t, bad.Validate())

	bad = types.DefaultParams()
	bad.MinLiquidity = math.ZeroInt()
	require.Error(t, bad.Validate())
}
