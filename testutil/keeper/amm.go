package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/basepool-labs/basepool/x/amm/keeper"
	"github.com/basepool-labs/basepool/x/amm/types"
)

// Ledger is an in-memory bank keeper for tests. Balances are tracked per
// bech32 address and transfers fail on insufficient funds, like the real
// bank module.
type Ledger struct {
	balances map[string]sdk.Coins
}

var _ types.BankKeeper = (*Ledger)(nil)

// NewLedger returns an empty in-memory ledger
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]sdk.Coins)}
}

// Fund credits an account with coins
func (l *Ledger) Fund(addr sdk.AccAddress, amt sdk.Coins) {
	l.balances[addr.String()] = l.balances[addr.String()].Add(amt...)
}

// SendCoins moves coins between accounts, failing on insufficient funds
func (l *Ledger) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	fromBalance := l.balances[from.String()]
	newFrom, negative := fromBalance.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, fromBalance, amt)
	}
	l.balances[from.String()] = newFrom
	l.balances[to.String()] = l.balances[to.String()].Add(amt...)
	return nil
}

// GetBalance returns an account's balance in one denom
func (l *Ledger) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, l.balances[addr.String()].AmountOf(denom))
}

// SpendableCoins returns an account's full balance
func (l *Ledger) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return l.balances[addr.String()]
}

// AmmKeeper creates a test keeper for the amm module backed by an in-memory
// multistore and ledger
func AmmKeeper(t testing.TB) (*keeper.Keeper, *Ledger, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	ledger := NewLedger()
	authority := authtypes.NewModuleAddress("gov").String()

	k := keeper.NewKeeper(
		codec.NewLegacyAmino(),
		storeKey,
		ledger,
		authority,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ledger, ctx
}

// TestAddress returns a deterministic bech32 account address for tests
func TestAddress(index byte) sdk.AccAddress {
	addr := make([]byte, 20)
	addr[0] = index
	addr[19] = index
	return sdk.AccAddress(addr)
}
