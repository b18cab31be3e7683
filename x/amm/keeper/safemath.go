package keeper

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// maxInt256 bounds results to the range math.Int can represent.
var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: addition result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, fmt.Errorf("underflow: cannot subtract %s from %s", b.String(), a.String())
	}
	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs floor((a * b) / c) with overflow protection.
// Every pricing and share formula in this module reduces to this shape.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxInt256) >= 0 {
		return math.Int{}, fmt.Errorf("overflow in multiplication step")
	}

	result := new(big.Int).Quo(intermediate, c.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// BootstrapShares computes floor(sqrt(amountA * amountB)), the share supply
// minted against the first deposit into an empty pool.
func BootstrapShares(amountA, amountB math.Int) (math.Int, error) {
	product := new(big.Int).Mul(amountA.BigInt(), amountB.BigInt())
	if product.Cmp(maxInt256) >= 0 {
		return math.Int{}, fmt.Errorf("overflow computing deposit product")
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(product)), nil
}
