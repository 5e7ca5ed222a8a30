package quote

import (
	"fmt"

	"swap-preview/pkg/types"
)

// Side is one half of a swap preview
type Side struct {
	Symbol   string  `json:"symbol"`
	Amount   float64 `json:"amount"`
	PriceUSD float64 `json:"price_usd"`
}

// Preview holds the derived numbers for a (source, target, usd) triple.
// It is recomputed on demand and never stored.
type Preview struct {
	Source   Side    `json:"source"`
	Target   Side    `json:"target"`
	USDValue float64 `json:"usd_value"`
	Rate     float64 `json:"rate"`
}

// Display holds the formatted strings shown to the user
type Display struct {
	SourceAmount string `json:"source_amount"`
	SourceValue  string `json:"source_value"`
	SourcePrice  string `json:"source_price"`
	TargetAmount string `json:"target_amount"`
	TargetValue  string `json:"target_value"`
	TargetPrice  string `json:"target_price"`
	RateLine     string `json:"rate"`
}

// Build computes a preview for swapping usdAmount worth of source into target
func Build(source, target types.Token, usdAmount float64) (*Preview, error) {
	usdAmount = clamp(usdAmount)

	sourceAmount, err := TokenAmount(usdAmount, source.PriceInUSD)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", source.Symbol, err)
	}
	targetAmount, err := TokenAmount(usdAmount, target.PriceInUSD)
	if err != nil {
		return nil, fmt.Errorf("target %s: %w", target.Symbol, err)
	}
	rate, err := ExchangeRate(source.PriceInUSD, target.PriceInUSD)
	if err != nil {
		return nil, err
	}

	return &Preview{
		Source:   Side{Symbol: source.Symbol, Amount: sourceAmount, PriceUSD: source.PriceInUSD},
		Target:   Side{Symbol: target.Symbol, Amount: targetAmount, PriceUSD: target.PriceInUSD},
		USDValue: usdAmount,
		Rate:     rate,
	}, nil
}

// Inverted returns the same preview seen from the other direction
func (p *Preview) Inverted() *Preview {
	inv := &Preview{
		Source:   p.Target,
		Target:   p.Source,
		USDValue: p.USDValue,
	}
	if p.Rate > 0 {
		inv.Rate = 1 / p.Rate
	}
	return inv
}

// Display formats every value of the preview for output
func (p *Preview) Display() Display {
	usd := fmt.Sprintf("$%s USD", FormatUSD(p.USDValue))
	return Display{
		SourceAmount: fmt.Sprintf("%s %s", FormatAmount(p.Source.Amount), p.Source.Symbol),
		SourceValue:  usd,
		SourcePrice:  fmt.Sprintf("%s USD", FormatPrice(p.Source.PriceUSD)),
		TargetAmount: fmt.Sprintf("%s %s", FormatAmount(p.Target.Amount), p.Target.Symbol),
		TargetValue:  usd,
		TargetPrice:  fmt.Sprintf("%s USD", FormatPrice(p.Target.PriceUSD)),
		RateLine:     RateLine(p.Source.Symbol, p.Target.Symbol, p.Rate),
	}
}

// RateLine renders "1 {source} = {rate} {target}"
func RateLine(sourceSymbol, targetSymbol string, rate float64) string {
	return fmt.Sprintf("1 %s = %s %s", sourceSymbol, FormatRate(rate), targetSymbol)
}
