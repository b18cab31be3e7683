package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to trade AmountIn of TokenIn against the pool
// for the pair (TokenIn, TokenOut). MinAmountOut is an optional slippage
// floor; zero disables it.
type MsgSwap struct {
	Trader       string   `json:"trader"`
	TokenIn      string   `json:"token_in"`
	TokenOut     string   `json:"token_out"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader, tokenIn, tokenOut string, amountIn, minAmountOut math.Int) *MsgSwap {
	return &MsgSwap{
		Trader:       trader,
		TokenIn:      tokenIn,
		TokenOut:     tokenOut,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwap) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwap) Type() string {
	return "swap"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	bz := amino.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if msg.TokenIn == "" || msg.TokenOut == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations cannot be empty")
	}

	if msg.TokenIn == msg.TokenOut {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "cannot swap a token for itself")
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}

	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount out cannot be negative")
	}

	return nil
}

func (msg *MsgSwap) Reset()         { *msg = MsgSwap{} }
func (msg *MsgSwap) String() string { return mustJSON(msg) }
func (*MsgSwap) ProtoMessage()      {}
