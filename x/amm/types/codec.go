package types

import (
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the
// LegacyAmino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePair{}, "amm/MsgCreatePair", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "amm/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "amm/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "amm/MsgSwap", nil)
}

var amino = codec.NewLegacyAmino()

// ModuleCdc is the module's amino codec, used for sign bytes and for the
// keeper's state marshalling.
var ModuleCdc = amino

func init() {
	RegisterCodec(amino)
	amino.Seal()
}

func mustJSON(o interface{}) string {
	bz, err := json.Marshal(o)
	if err != nil {
		return fmt.Sprintf("%T<marshal error: %v>", o, err)
	}
	return string(bz)
}
