package cmd

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swap-preview/pkg/selection"
	"swap-preview/pkg/types"
)

func init() {
	color.NoColor = true
}

func sessionCatalog() []types.Token {
	return []types.Token{
		{Symbol: "ETH", Name: "Ethereum", ChainID: "8453", PriceInUSD: 3500},
		{Symbol: "USDC", Name: "USD Coin", ChainID: "1", PriceInUSD: 1},
		{Symbol: "WBTC", Name: "Wrapped Bitcoin", ChainID: "1", PriceInUSD: 65000, Fallback: true},
	}
}

func TestPreviewFor(t *testing.T) {
	p, err := previewFor(sessionCatalog(), &types.PreviewRequest{USDAmount: "100", SourceToken: "eth", TargetToken: "USDC"}, false)
	require.NoError(t, err)

	d := p.Display()
	assert.Equal(t, "0.0286 ETH", d.SourceAmount)
	assert.Equal(t, "100.00 USDC", d.TargetAmount)
	assert.Equal(t, "1 ETH = 3500.00 USDC", d.RateLine)
}

func TestPreviewForInvert(t *testing.T) {
	p, err := previewFor(sessionCatalog(), &types.PreviewRequest{USDAmount: "100", SourceToken: "ETH", TargetToken: "USDC"}, true)
	require.NoError(t, err)
	assert.Equal(t, "USDC", p.Source.Symbol)
	assert.Equal(t, "ETH", p.Target.Symbol)
}

func TestPreviewForErrors(t *testing.T) {
	_, err := previewFor(sessionCatalog(), &types.PreviewRequest{USDAmount: "100", SourceToken: "DOGE", TargetToken: "USDC"}, false)
	assert.ErrorIs(t, err, selection.ErrUnknownToken)

	_, err = previewFor(sessionCatalog(), &types.PreviewRequest{USDAmount: "0", SourceToken: "ETH", TargetToken: "USDC"}, false)
	assert.ErrorIs(t, err, selection.ErrQuoteNotReady)
}

func TestSessionFlow(t *testing.T) {
	sel := selection.New(sessionCatalog())
	var out bytes.Buffer

	input := strings.Join([]string{
		"source eth",
		"target usdc",
		"amount $100",
		"invert",
		"quit",
		"source WBTC",
	}, "\n")
	require.NoError(t, runSession(strings.NewReader(input), &out, sel))

	text := out.String()
	assert.Contains(t, text, "Choose a target token")
	assert.Contains(t, text, "Enter a USD amount")
	assert.Contains(t, text, "1 ETH = 3500.00 USDC")
	assert.Contains(t, text, "1 USDC = 0.0003 ETH")

	// quit stops before the last line
	src, _ := sel.Source()
	assert.Equal(t, "USDC", src.Symbol)
}

func TestSessionEndOfInput(t *testing.T) {
	sel := selection.New(sessionCatalog())
	var out bytes.Buffer

	require.NoError(t, runSession(strings.NewReader("source ETH\ntarget USDC"), &out, sel))
	assert.Equal(t, selection.FullySelected, sel.State())
}

func TestHandleLineHints(t *testing.T) {
	sel := selection.New(sessionCatalog())
	var out bytes.Buffer

	handleLine(&out, sel, "target USDC")
	assert.Contains(t, out.String(), selection.ErrNoSource.Error())

	out.Reset()
	handleLine(&out, sel, "source ETH")
	handleLine(&out, sel, "target ETH")
	assert.Contains(t, out.String(), selection.ErrSameToken.Error())

	out.Reset()
	handleLine(&out, sel, "amount lots")
	assert.Contains(t, out.String(), "amount reset to 0")
	assert.Zero(t, sel.USDAmount())

	out.Reset()
	handleLine(&out, sel, "bogus")
	assert.Contains(t, out.String(), "Unknown command")

	out.Reset()
	assert.True(t, handleLine(&out, sel, "exit"))
}

func TestHandleLineBareAmount(t *testing.T) {
	sel := selection.New(sessionCatalog())
	var out bytes.Buffer

	handleLine(&out, sel, "source ETH")
	handleLine(&out, sel, "target USDC")
	handleLine(&out, sel, "$2,500")

	assert.Equal(t, 2500.0, sel.USDAmount())
	assert.Contains(t, out.String(), "0.7143 ETH")
	assert.Contains(t, out.String(), "2,500.00 USDC")
}

func TestTokensListExcludesSource(t *testing.T) {
	sel := selection.New(sessionCatalog())
	var out bytes.Buffer

	handleLine(&out, sel, "source USDC")
	out.Reset()
	handleLine(&out, sel, "tokens")

	text := out.String()
	assert.Contains(t, text, "ETH - Ethereum")
	assert.Contains(t, text, "WBTC - Wrapped Bitcoin")
	assert.Contains(t, text, "(last known)")
	assert.NotContains(t, text, "USDC - USD Coin")
}

func TestFilterTokens(t *testing.T) {
	tokens := sessionCatalog()

	assert.Len(t, filterTokens(tokens, "", ""), 3)
	assert.Len(t, filterTokens(tokens, "1", ""), 2)
	assert.Len(t, filterTokens(tokens, "eth", ""), 2)
	assert.Len(t, filterTokens(tokens, "base", ""), 1)
	assert.Len(t, filterTokens(tokens, "", "usd"), 1)
	assert.Empty(t, filterTokens(tokens, "sol", ""))
}

func TestDisplayTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, displayTokensJSON(&buf, sessionCatalog()))
	assert.Contains(t, buf.String(), `"WBTC"`)

	buf.Reset()
	bad := []types.Token{{Symbol: "ETH", ChainID: "1", PriceInUSD: math.NaN()}}
	assert.Error(t, displayTokensJSON(&buf, bad))
	assert.Empty(t, buf.String())
}
