package types

import (
	"fmt"
)

// GenesisState is the module's full persisted state: parameters, every pool
// the registry has created, and all outstanding share positions.
type GenesisState struct {
	Params     Params     `json:"params"`
	Pools      []Pool     `json:"pools"`
	Positions  []Position `json:"positions"`
	NextPoolId uint64     `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state for the AMM module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		Positions:  []Position{},
		NextPoolId: 1,
	}
}

// Validate ensures the genesis state is well-formed: valid params, valid
// canonically-ordered pools with unique ids and pairs, and positions that
// reference existing pools and sum to each pool's total shares.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	poolIDs := make(map[uint64]Pool, len(gs.Pools))
	pairs := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if _, ok := poolIDs[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		poolIDs[pool.Id] = pool

		pairKey := pool.TokenA + "/" + pool.TokenB
		if _, ok := pairs[pairKey]; ok {
			return fmt.Errorf("duplicate pool for pair %s", pairKey)
		}
		pairs[pairKey] = struct{}{}
	}

	for _, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("invalid position for pool %d: %w", pos.PoolId, err)
		}
		if _, ok := poolIDs[pos.PoolId]; !ok {
			return fmt.Errorf("position references unknown pool %d", pos.PoolId)
		}
	}

	// Positions must not claim more than each pool's outstanding shares.
	for id, pool := range poolIDs {
		total := pool.TotalShares
		for _, pos := range gs.Positions {
			if pos.PoolId == id {
				total = total.Sub(pos.Shares)
			}
		}
		if total.IsNegative() {
			return fmt.Errorf("positions for pool %d exceed total shares", id)
		}
	}

	return nil
}
