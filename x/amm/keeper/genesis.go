package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basepool-labs/basepool/x/amm/types"
)

// InitGenesis initializes the amm module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: invalid genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: set params: %w", err)
	}

	for i := range genState.Pools {
		pool := genState.Pools[i]
		if err := k.SetPool(ctx, &pool); err != nil {
			return fmt.Errorf("InitGenesis: set pool %d: %w", pool.Id, err)
		}
		k.SetPoolByPair(ctx, pool.TokenA, pool.TokenB, pool.Id)
	}

	// Pairs are never removed, so the pair count is the number of pools.
	k.SetPairCount(ctx, uint64(len(genState.Pools)))
	k.SetNextPoolID(ctx, genState.NextPoolId)

	for _, pos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			return fmt.Errorf("InitGenesis: invalid provider address %q: %w", pos.Provider, err)
		}
		if err := k.SetLiquidity(ctx, pos.PoolId, provider, pos.Shares); err != nil {
			return fmt.Errorf("InitGenesis: set position: %w", err)
		}
	}

	return nil
}

// ExportGenesis exports the amm module state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: get params: %w", err)
	}

	var pools []types.Pool
	var positions []types.Position
	nextPoolID := uint64(1)

	err = k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		if pool.Id >= nextPoolID {
			nextPoolID = pool.Id + 1
		}
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: iterate pools: %w", err)
	}

	for _, pool := range pools {
		err = k.IterateLiquidityByPool(ctx, pool.Id, func(provider sdk.AccAddress, shares math.Int) bool {
			positions = append(positions, types.Position{
				PoolId:   pool.Id,
				Provider: provider.String(),
				Shares:   shares,
			})
			return false
		})
		if err != nil {
			return nil, fmt.Errorf("ExportGenesis: iterate positions for pool %d: %w", pool.Id, err)
		}
	}

	return &types.GenesisState{
		Params:     params,
		Pools:      pools,
		Positions:  positions,
		NextPoolId: nextPoolID,
	}, nil
}
