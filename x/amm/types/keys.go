package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName
)

// OrderDenoms returns the canonical (lexicographic) ordering of a token pair.
// A pool for (A,B) is the same market as (B,A); every store index and lookup
// goes through this ordering so argument order can never produce two entries
// for the same pair.
func OrderDenoms(tokenA, tokenB string) (string, string) {
	if tokenA > tokenB {
		return tokenB, tokenA
	}
	return tokenA, tokenB
}
