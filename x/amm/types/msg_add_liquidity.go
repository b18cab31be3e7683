package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity defines a message to deposit both tokens of a pair into its
// pool. AmountA and AmountB are desired maximums; the router clips them to
// the pool's current reserve ratio before any value moves.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	TokenA   string   `json:"token_a"`
	TokenB   string   `json:"token_b"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider, tokenA, tokenB string, amountA, amountB math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		TokenA:   tokenA,
		TokenB:   tokenB,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := amino.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations cannot be empty")
	}

	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations must be different")
	}

	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount A must be positive")
	}

	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount B must be positive")
	}

	return nil
}

func (msg *MsgAddLiquidity) Reset()         { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string { return mustJSON(msg) }
func (*MsgAddLiquidity) ProtoMessage()      {}
