package keeper

import (
	"context"
	"fmt"

	"github.com/basepool-labs/basepool/x/amm/types"
)

// GetParams returns the current module parameters. Defaults apply when
// nothing has been stored yet.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := k.cdc.UnmarshalJSON(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal params: %w", err)
	}
	return params, nil
}

// SetParams validates and stores module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(&params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal params: %w", err)
	}
	store.Set(ParamsKey, bz)
	return nil
}
