package types

import "math"

// Token represents one fungible asset on one chain
type Token struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name,omitempty"`
	ChainID      string  `json:"chain_id"`
	TokenAddress string  `json:"token_address"`
	PriceInUSD   float64 `json:"price_in_usd"`
	LogoURL      string  `json:"logo_url,omitempty"`
	Decimals     int     `json:"decimals,omitempty"`
	Fallback     bool    `json:"fallback,omitempty"` // Built from the static price table
}

// Quotable reports whether the token's price can be divided by
func (t Token) Quotable() bool {
	return t.PriceInUSD > 0 && !math.IsInf(t.PriceInUSD, 0)
}

// WantedToken is one entry of the configured token list
type WantedToken struct {
	Symbol   string `json:"symbol" mapstructure:"symbol"`
	ChainID  string `json:"chain_id" mapstructure:"chain_id"`
	Name     string `json:"name,omitempty" mapstructure:"name"`
	LogoURL  string `json:"logo_url,omitempty" mapstructure:"logo_url"`
	Decimals int    `json:"decimals,omitempty" mapstructure:"decimals"`
}

// TokenMetadata holds what the pricing service knows about a token
type TokenMetadata struct {
	Address  string
	Name     string
	Decimals int
}

// PreviewRequest represents a user's one-shot preview command
type PreviewRequest struct {
	USDAmount   string
	SourceToken string
	TargetToken string
}
