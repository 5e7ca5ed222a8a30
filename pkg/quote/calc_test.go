package quote

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swap-preview/pkg/types"
)

func TestTokenAmountZeroPrice(t *testing.T) {
	_, err := TokenAmount(100, 0)
	assert.ErrorIs(t, err, ErrZeroPrice)

	_, err = TokenAmount(100, -2)
	assert.ErrorIs(t, err, ErrZeroPrice)

	_, err = TokenAmount(100, math.Inf(1))
	assert.ErrorIs(t, err, ErrZeroPrice)
}

func TestTokenAmountRoundTrip(t *testing.T) {
	prices := []float64{0.0000012, 0.000512, 0.25, 1, 3500, 65000}
	amounts := []float64{0, 0.01, 1, 100, 12345.67, 1e9}

	for _, p := range prices {
		for _, usd := range amounts {
			got, err := TokenAmount(usd, p)
			require.NoError(t, err)
			assert.InDelta(t, usd, got*p, 1e-9*math.Max(1, usd))
		}
	}
}

func TestExchangeRateReciprocal(t *testing.T) {
	prices := []float64{0.0000012, 0.000512, 0.25, 1, 3500, 65000}

	for _, a := range prices {
		for _, b := range prices {
			ab, err := ExchangeRate(a, b)
			require.NoError(t, err)
			ba, err := ExchangeRate(b, a)
			require.NoError(t, err)
			assert.InEpsilon(t, ab, 1/ba, 1e-12)
		}
	}

	_, err := ExchangeRate(1, 0)
	assert.ErrorIs(t, err, ErrZeroPrice)
	_, err = ExchangeRate(0, 1)
	assert.ErrorIs(t, err, ErrZeroPrice)
}

func TestBuildEthToUSDC(t *testing.T) {
	eth := types.Token{Symbol: "ETH", PriceInUSD: 3500}
	usdc := types.Token{Symbol: "USDC", PriceInUSD: 1}

	p, err := Build(eth, usdc, 100)
	require.NoError(t, err)

	d := p.Display()
	assert.Equal(t, "0.0286 ETH", d.SourceAmount)
	assert.Equal(t, "100.00 USDC", d.TargetAmount)
	assert.Equal(t, "$100.00 USD", d.SourceValue)
	assert.Equal(t, "$100.00 USD", d.TargetValue)
	assert.Equal(t, "$3,500.00 USD", d.SourcePrice)
	assert.Equal(t, "$1.00 USD", d.TargetPrice)
	assert.Equal(t, "1 ETH = 3500.00 USDC", d.RateLine)
}

func TestBuildUnquotable(t *testing.T) {
	eth := types.Token{Symbol: "ETH", PriceInUSD: 3500}
	dead := types.Token{Symbol: "DEAD"}

	_, err := Build(eth, dead, 100)
	assert.ErrorIs(t, err, ErrZeroPrice)

	_, err = Build(dead, eth, 100)
	assert.ErrorIs(t, err, ErrZeroPrice)
}

func TestPreviewInverted(t *testing.T) {
	eth := types.Token{Symbol: "ETH", PriceInUSD: 3500}
	usdc := types.Token{Symbol: "USDC", PriceInUSD: 1}

	forward, err := Build(eth, usdc, 250)
	require.NoError(t, err)
	backward, err := Build(usdc, eth, 250)
	require.NoError(t, err)

	inv := forward.Inverted()
	assert.Equal(t, backward.Source, inv.Source)
	assert.Equal(t, backward.Target, inv.Target)
	assert.InEpsilon(t, backward.Rate, inv.Rate, 1e-12)
	assert.Equal(t, backward.Display(), inv.Display())
	assert.Equal(t, forward.Display(), inv.Inverted().Display())
}
