package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockchain(t *testing.T) {
	assert.Equal(t, "eth", Blockchain(Ethereum))
	assert.Equal(t, "pol", Blockchain(Polygon))
	assert.Equal(t, "base", Blockchain(Base))
	assert.Equal(t, "sol", Blockchain(Solana))
	assert.Equal(t, "near", Blockchain(" NEAR "))
}

func TestNormalizeAddressEVM(t *testing.T) {
	got, err := NormalizeAddress(Ethereum, "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	require.NoError(t, err)
	assert.Equal(t, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", got)

	_, err = NormalizeAddress(Base, "0x1234")
	assert.Error(t, err)
}

func TestNormalizeAddressSolana(t *testing.T) {
	mint := "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	got, err := NormalizeAddress(Solana, mint)
	require.NoError(t, err)
	assert.Equal(t, mint, got)

	_, err = NormalizeAddress(Solana, "not-base58!")
	assert.Error(t, err)
}

func TestNormalizeAddressOther(t *testing.T) {
	got, err := NormalizeAddress("near", " usdt.tether-token.near ")
	require.NoError(t, err)
	assert.Equal(t, "usdt.tether-token.near", got)

	_, err = NormalizeAddress("near", "")
	assert.Error(t, err)
}

func TestSameAddress(t *testing.T) {
	assert.True(t, SameAddress(Ethereum,
		"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
		"0xA0B86991C6218B36C1D19D4A2E9EB0CE3606EB48"))
	assert.False(t, SameAddress(Ethereum, ZeroAddress, "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"))
	assert.True(t, SameAddress("near", "nep141:wrap.near", " nep141:wrap.near"))
	assert.False(t, SameAddress("near", "nep141:wrap.near", "NEP141:wrap.near"))
}

func TestZeroAddress(t *testing.T) {
	assert.Equal(t, "0x0000000000000000000000000000000000000000", ZeroAddress)
}
