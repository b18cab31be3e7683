package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRemoveLiquidity{}

// MsgRemoveLiquidity defines a message to burn pool shares for a
// proportional payout of both reserves.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	TokenA   string   `json:"token_a"`
	TokenB   string   `json:"token_b"`
	Shares   math.Int `json:"shares"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider, tokenA, tokenB string, shares math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		TokenA:   tokenA,
		TokenB:   tokenB,
		Shares:   shares,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string {
	return "remove_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := amino.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations cannot be empty")
	}

	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations must be different")
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInsufficientShares, "shares must be positive")
	}

	return nil
}

func (msg *MsgRemoveLiquidity) Reset()         { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string { return mustJSON(msg) }
func (*MsgRemoveLiquidity) ProtoMessage()      {}
