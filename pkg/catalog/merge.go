package catalog

import (
	"swap-preview/pkg/chain"
	"swap-preview/pkg/types"
)

// DefaultDecimals is used when neither live data nor configuration knows better
const DefaultDecimals = 18

// Merge combines what is known about a token. Live metadata overrides static
// defaults (configuration, then the fallback table), which override hard-coded
// constants. The price is left for the caller to set.
func Merge(wanted types.WantedToken, live *types.TokenMetadata, fallback *FallbackPrice) types.Token {
	t := types.Token{
		Symbol:       wanted.Symbol,
		ChainID:      wanted.ChainID,
		LogoURL:      wanted.LogoURL,
		TokenAddress: chain.ZeroAddress,
		Decimals:     DefaultDecimals,
	}

	if fallback != nil {
		if fallback.Name != "" {
			t.Name = fallback.Name
		}
		if fallback.Decimals > 0 {
			t.Decimals = fallback.Decimals
		}
	}

	if wanted.Name != "" {
		t.Name = wanted.Name
	}
	if wanted.Decimals > 0 {
		t.Decimals = wanted.Decimals
	}

	if live != nil {
		if live.Address != "" {
			t.TokenAddress = live.Address
		}
		if live.Name != "" {
			t.Name = live.Name
		}
		if live.Decimals > 0 {
			t.Decimals = live.Decimals
		}
	}

	return t
}
