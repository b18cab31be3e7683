package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePair{}

// MsgCreatePair defines a message to register a pool for a new token pair
type MsgCreatePair struct {
	Creator string `json:"creator"`
	TokenA  string `json:"token_a"`
	TokenB  string `json:"token_b"`
}

// NewMsgCreatePair creates a new MsgCreatePair instance
func NewMsgCreatePair(creator, tokenA, tokenB string) *MsgCreatePair {
	return &MsgCreatePair{
		Creator: creator,
		TokenA:  tokenA,
		TokenB:  tokenB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePair) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreatePair) Type() string {
	return "create_pair"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePair) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePair) GetSignBytes() []byte {
	bz := amino.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations cannot be empty")
	}

	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations must be different")
	}

	return nil
}

func (msg *MsgCreatePair) Reset()         { *msg = MsgCreatePair{} }
func (msg *MsgCreatePair) String() string { return mustJSON(msg) }
func (*MsgCreatePair) ProtoMessage()      {}
