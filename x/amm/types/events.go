package types

// Event types for the AMM module
const (
	EventTypePairCreated     = "amm_pair_created"
	EventTypeAddLiquidity    = "amm_add_liquidity"
	EventTypeRemoveLiquidity = "amm_remove_liquidity"
	EventTypeSwap            = "amm_swap"
)

// Event attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyPairIndex = "pair_index"
	AttributeKeyCreator   = "creator"
	AttributeKeyProvider  = "provider"
	AttributeKeyTrader    = "trader"
	AttributeKeyTokenA    = "token_a"
	AttributeKeyTokenB    = "token_b"
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyTokenOut  = "token_out"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyOwnerFee  = "owner_fee"
	AttributeKeyShares    = "shares"
)
