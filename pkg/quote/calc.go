package quote

import (
	"errors"
	"math"
)

// ErrZeroPrice is returned when a unit price cannot be divided by
var ErrZeroPrice = errors.New("unit price must be greater than 0")

// TokenAmount converts a USD amount into a token quantity at the given unit price
func TokenAmount(usdAmount, unitPriceUSD float64) (float64, error) {
	if !validPrice(unitPriceUSD) {
		return 0, ErrZeroPrice
	}
	return clamp(usdAmount) / unitPriceUSD, nil
}

// ExchangeRate returns how many target tokens equal one source token
func ExchangeRate(sourcePrice, targetPrice float64) (float64, error) {
	if !validPrice(sourcePrice) || !validPrice(targetPrice) {
		return 0, ErrZeroPrice
	}
	return sourcePrice / targetPrice, nil
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0)
}

// clamp maps negative and non-finite values to 0
func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
