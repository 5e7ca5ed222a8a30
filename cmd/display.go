package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"swap-preview/pkg/quote"
	"swap-preview/pkg/types"
)

func displayPreview(w io.Writer, p *quote.Preview) {
	d := p.Display()

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(w, color.GreenString("                     SWAP PREVIEW"))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "\n  %s\n", color.CyanString("Source Token: %s", p.Source.Symbol))
	fmt.Fprintf(w, "    Amount:  %s\n", color.YellowString(d.SourceAmount))
	fmt.Fprintf(w, "    Value:   %s\n", d.SourceValue)
	fmt.Fprintf(w, "    Price:   %s\n", d.SourcePrice)

	fmt.Fprintf(w, "\n  %s\n", color.CyanString("Target Token: %s", p.Target.Symbol))
	fmt.Fprintf(w, "    Amount:  %s\n", color.YellowString(d.TargetAmount))
	fmt.Fprintf(w, "    Value:   %s\n", d.TargetValue)
	fmt.Fprintf(w, "    Price:   %s\n", d.TargetPrice)

	fmt.Fprintf(w, "\n  Exchange Rate: %s\n", d.RateLine)
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 60))
}

func displayTokensJSON(w io.Writer, tokens []types.Token) error {
	jsonData, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(jsonData))
	return nil
}

func displayPreviewJSON(w io.Writer, p *quote.Preview) error {
	output := struct {
		*quote.Preview
		Display quote.Display `json:"display"`
	}{p, p.Display()}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(jsonData))
	return nil
}

// tokenLine renders one selectable token, e.g. "USDC - USD Coin  $1.00"
func tokenLine(t types.Token) string {
	label := t.Symbol
	if t.Name != "" {
		label = fmt.Sprintf("%s - %s", t.Symbol, t.Name)
	}

	price := quote.FormatPrice(t.PriceInUSD)
	if t.Fallback {
		price += color.HiBlackString(" (last known)")
	}
	return fmt.Sprintf("%-28s %s", label, price)
}

func displayTokenList(w io.Writer, title string, tokens []types.Token) {
	fmt.Fprintf(w, "\n%s\n", color.CyanString(title))
	if len(tokens) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, t := range tokens {
		fmt.Fprintf(w, "  %s\n", tokenLine(t))
	}
}
