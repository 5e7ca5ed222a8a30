package catalog

// FallbackPrice is a static last-known quote for a well-known symbol
type FallbackPrice struct {
	PriceUSD float64
	Name     string
	Decimals int
}

// DefaultFallbackPrices returns the built-in last-known price table
func DefaultFallbackPrices() map[string]FallbackPrice {
	return map[string]FallbackPrice{
		"USDC": {PriceUSD: 1.00, Name: "USD Coin", Decimals: 6},
		"USDT": {PriceUSD: 1.00, Name: "Tether USD", Decimals: 6},
		"ETH":  {PriceUSD: 3500, Name: "Ethereum", Decimals: 18},
		"WBTC": {PriceUSD: 65000, Name: "Wrapped Bitcoin", Decimals: 8},
		"SOL":  {PriceUSD: 150, Name: "Solana", Decimals: 9},
		"PEPE": {PriceUSD: 0.0000105, Name: "Pepe", Decimals: 18},
		"SHIB": {PriceUSD: 0.0000145, Name: "Shiba Inu", Decimals: 18},
	}
}
