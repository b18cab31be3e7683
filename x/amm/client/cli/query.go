package cli

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/basepool-labs/basepool/x/amm/keeper"
	"github.com/basepool-labs/basepool/x/amm/types"
)

// GetQueryCmd returns the query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		CmdQueryPool(),
		CmdQueryPair(),
		CmdQueryPairCount(),
		CmdQueryParams(),
	)

	return ammQueryCmd
}

// CmdQueryPool returns a CLI command handler for querying a pool by id
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a pool by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}

			bz, _, err := clientCtx.QueryStore(keeper.PoolKey(poolID), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("pool %d not found", poolID)
			}

			var pool types.Pool
			if err := types.ModuleCdc.UnmarshalJSON(bz, &pool); err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPair returns a CLI command handler for querying the pool of a pair
func CmdQueryPair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair [token-a] [token-b]",
		Short: "Query the pool registered for a token pair, in either order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(keeper.PoolByPairKey(args[0], args[1]), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("no pool registered for pair %s/%s", args[0], args[1])
			}
			poolID := binary.BigEndian.Uint64(bz)

			poolBz, _, err := clientCtx.QueryStore(keeper.PoolKey(poolID), types.StoreKey)
			if err != nil {
				return err
			}
			if poolBz == nil {
				return fmt.Errorf("pool %d not found", poolID)
			}

			var pool types.Pool
			if err := types.ModuleCdc.UnmarshalJSON(poolBz, &pool); err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPairCount returns a CLI command handler for the pair counter
func CmdQueryPairCount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair-count",
		Short: "Query the number of pairs ever created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(keeper.PairCountKey, types.StoreKey)
			if err != nil {
				return err
			}

			var count uint64
			if bz != nil {
				count = binary.BigEndian.Uint64(bz)
			}
			return clientCtx.PrintString(fmt.Sprintf("%d\n", count))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryParams returns a CLI command handler for the module parameters
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the amm module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(keeper.ParamsKey, types.StoreKey)
			if err != nil {
				return err
			}

			params := types.DefaultParams()
			if bz != nil {
				if err := types.ModuleCdc.UnmarshalJSON(bz, &params); err != nil {
					return err
				}
			}
			return clientCtx.PrintObjectLegacy(params)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
