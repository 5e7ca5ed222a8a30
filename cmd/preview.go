package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"swap-preview/pkg/parser"
	"swap-preview/pkg/quote"
	"swap-preview/pkg/selection"
	"swap-preview/pkg/types"
)

var invertPreview bool

var previewCmd = &cobra.Command{
	Use:     "preview <usd> <source-token> to <target-token>",
	Aliases: []string{"quote"},
	Short:   "Preview swapping a USD amount from one token to another",
	Long: `Show how much of each token a USD amount is worth, the unit prices and
the exchange rate between the two tokens.

Examples:
  swap-preview preview 100 ETH to USDC
  swap-preview preview '$1,000' USDC to WBTC
  swap-preview preview 50 ETH to USDT --invert`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().BoolVar(&invertPreview, "invert", false, "Swap source and target before previewing")
}

func runPreview(cmd *cobra.Command, args []string) {
	req, err := parser.ParsePreviewCommand(strings.Join(args, " "))
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if err := parser.ValidatePreviewRequest(req); err != nil {
		printError(err)
		os.Exit(1)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")

	tokens, err := loadCatalog(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	p, err := previewFor(tokens, req, invertPreview)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		if err := displayPreviewJSON(os.Stdout, p); err != nil {
			printError(err)
			os.Exit(1)
		}
		return
	}
	displayPreview(os.Stdout, p)
}

// previewFor drives a fresh selection through the request's transitions
func previewFor(tokens []types.Token, req *types.PreviewRequest, invert bool) (*quote.Preview, error) {
	sel := selection.New(tokens)

	if err := sel.SelectSource(parser.NormalizeTokenSymbol(req.SourceToken)); err != nil {
		return nil, fmt.Errorf("source token: %w", err)
	}
	if err := sel.SelectTarget(parser.NormalizeTokenSymbol(req.TargetToken)); err != nil {
		return nil, fmt.Errorf("target token: %w", err)
	}
	if err := sel.SetAmountInput(req.USDAmount); err != nil {
		return nil, err
	}
	if invert {
		if err := sel.Invert(); err != nil {
			return nil, err
		}
	}

	p, err := sel.Preview()
	if errors.Is(err, selection.ErrQuoteNotReady) {
		return nil, fmt.Errorf("%w: enter an amount greater than 0 and pick tokens with a known price", err)
	}
	return p, err
}
