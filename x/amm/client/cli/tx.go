package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/basepool-labs/basepool/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePair(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
	)

	return ammTxCmd
}

// CmdCreatePair returns a CLI command handler for registering a token pair
func CmdCreatePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pair [token-a] [token-b]",
		Short: "Register a new token pair with an empty pool",
		Long: `Register a new token pair. The pool starts empty; seed it with add-liquidity.
The signer becomes the pool owner and receives the owner fee on every swap.

Example:
  $ basepoold tx amm create-pair ubase uusdt --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreatePair(clientCtx.GetFromAddress().String(), args[0], args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for depositing into a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [token-a] [amount-a] [token-b] [amount-b]",
		Short: "Deposit both tokens into a pair's pool",
		Long: `Deposit both tokens into the pair's pool and receive liquidity shares.
When the pool already holds reserves the deposit is trimmed to the reserve
ratio, so at most the stated amounts are transferred.

Example:
  $ basepoold tx amm add-liquidity ubase 1000000 uusdt 2000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[1])
			}
			amountB, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[3])
			}

			msg := types.NewMsgAddLiquidity(clientCtx.GetFromAddress().String(), args[0], args[2], amountA, amountB)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for burning pool shares
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [token-a] [token-b] [shares]",
		Short: "Burn pool shares for a proportional payout of both tokens",
		Long: `Burn liquidity shares in the pair's pool and receive the proportional
cut of both reserves.

Example:
  $ basepoold tx amm remove-liquidity ubase uusdt 500000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			shares, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[2])
			}

			msg := types.NewMsgRemoveLiquidity(clientCtx.GetFromAddress().String(), args[0], args[1], shares)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping tokens
func CmdSwap() *cobra.Command {
	var minAmountOut string

	cmd := &cobra.Command{
		Use:   "swap [token-in] [amount-in] [token-out]",
		Short: "Swap an exact amount of one token for the other",
		Long: `Swap an exact input amount against the pair's pool. The owner fee is
taken from the input before pricing.

Example:
  $ basepoold tx amm swap ubase 1000000 uusdt --min-amount-out 1900000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[1])
			}

			minOut := math.ZeroInt()
			if minAmountOut != "" {
				minOut, ok = math.NewIntFromString(minAmountOut)
				if !ok {
					return fmt.Errorf("invalid min-amount-out: %s (must be integer)", minAmountOut)
				}
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), args[0], args[2], amountIn, minOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().StringVar(&minAmountOut, "min-amount-out", "", "reject the swap if the output would be below this amount")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
