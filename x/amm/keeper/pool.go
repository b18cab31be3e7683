package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basepool-labs/basepool/x/amm/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(PoolCountKey, nextBz)

	return poolID
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolCountKey, bz)
}

// GetPairCount returns the number of pairs ever created. Pairs are never
// removed, so this only grows.
func (k Keeper) GetPairCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PairCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetPairCount sets the pair counter
func (k Keeper) SetPairCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(PairCountKey, bz)
}

// CreatePair registers a new empty pool for a token pair. Denoms are
// canonicalized so both orderings name the same pair. The creator becomes
// the pool owner and receives the owner fee on every swap through the pool.
// Returns ErrPairAlreadyExists if a pool for the pair is already registered.
func (k Keeper) CreatePair(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string) (*types.Pool, error) {
	if tokenA == "" || tokenB == "" {
		return nil, types.ErrInvalidTokenPair.Wrap("token denoms cannot be empty")
	}
	if tokenA == tokenB {
		return nil, types.ErrInvalidTokenPair.Wrap("cannot create a pair of identical tokens")
	}

	tokenA, tokenB = types.OrderDenoms(tokenA, tokenB)

	if k.PairExists(ctx, tokenA, tokenB) {
		return nil, types.ErrPairAlreadyExists.Wrapf("pair %s/%s already registered", tokenA, tokenB)
	}

	poolID := k.GetNextPoolID(ctx)
	pairIndex := k.GetPairCount(ctx)
	pool := types.NewPool(poolID, tokenA, tokenB, creator.String())

	if err := k.SetPool(ctx, &pool); err != nil {
		return nil, fmt.Errorf("CreatePair: save pool: %w", err)
	}
	k.SetPoolByPair(ctx, tokenA, tokenB, poolID)
	k.SetPairCount(ctx, pairIndex+1)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePairCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyPairIndex, fmt.Sprintf("%d", pairIndex)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, creator.String()),
		),
	})

	return &pool, nil
}

// GetPool retrieves a pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := k.cdc.UnmarshalJSON(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByDenoms retrieves the pool for a token pair in either order.
// Returns ErrPairNotFound if no pool is registered for the pair.
func (k Keeper) GetPoolByDenoms(ctx context.Context, tokenA, tokenB string) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolByPairKey(tokenA, tokenB))
	if bz == nil {
		return nil, types.ErrPairNotFound.Wrapf("no pool registered for pair %s/%s", tokenA, tokenB)
	}

	poolID := binary.BigEndian.Uint64(bz)
	return k.GetPool(ctx, poolID)
}

// PairExists reports whether a pool is registered for the pair, in either order.
func (k Keeper) PairExists(ctx context.Context, tokenA, tokenB string) bool {
	store := k.getStore(ctx)
	return store.Has(PoolByPairKey(tokenA, tokenB))
}

// SetPoolByPair indexes a pool by its canonical token pair
func (k Keeper) SetPoolByPair(ctx context.Context, tokenA, tokenB string, poolID uint64) {
	store := k.getStore(ctx)
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	store.Set(PoolByPairKey(tokenA, tokenB), poolIDBytes)
}

// MaxIterationLimit bounds unbounded pool queries.
const MaxIterationLimit = 100

// IteratePools iterates over all pools in ascending id order
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns pools in creation order. A limit of zero applies
// MaxIterationLimit.
func (k Keeper) GetAllPools(ctx context.Context, limit uint64) ([]types.Pool, error) {
	if limit == 0 || limit > MaxIterationLimit {
		limit = MaxIterationLimit
	}
	pools := make([]types.Pool, 0, limit)
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		if uint64(len(pools)) >= limit {
			return true
		}
		pools = append(pools, pool)
		return false
	})
	return pools, err
}
