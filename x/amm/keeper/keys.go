package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basepool-labs/basepool/x/amm/types"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x02}

	// PoolByPairKeyPrefix is the prefix for indexing pools by canonical token pair
	PoolByPairKeyPrefix = []byte{0x03}

	// PositionKeyPrefix is the prefix for liquidity position store keys
	PositionKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}

	// PairCountKey is the key for the number of pairs ever created
	PairCountKey = []byte{0x06}
)

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PoolKeyPrefix, poolIDBytes...)
}

// PoolByPairKey returns the index key for an unordered token pair. Both
// orderings of the same two denoms map to the same key.
func PoolByPairKey(tokenA, tokenB string) []byte {
	tokenA, tokenB = types.OrderDenoms(tokenA, tokenB)
	key := append(PoolByPairKeyPrefix, []byte(tokenA)...)
	key = append(key, []byte("/")...)
	key = append(key, []byte(tokenB)...)
	return key
}

// PositionKey returns the store key for a liquidity position
func PositionKey(poolID uint64, provider sdk.AccAddress) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	key := append(PositionKeyPrefix, poolIDBytes...)
	key = append(key, provider.Bytes()...)
	return key
}

// PositionByPoolPrefix returns the prefix for all positions in a pool
func PositionByPoolPrefix(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PositionKeyPrefix, poolIDBytes...)
}
