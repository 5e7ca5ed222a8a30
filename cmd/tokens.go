package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"swap-preview/pkg/chain"
	"swap-preview/pkg/quote"
	"swap-preview/pkg/types"
)

var (
	filterChain  string
	filterSymbol string
)

var tokensCmd = &cobra.Command{
	Use:     "list-tokens",
	Aliases: []string{"tokens", "ls"},
	Short:   "List the tokens available for a preview",
	Long: `List the tokens loaded for this session with their current USD price.

Tokens whose live price could not be fetched are shown with their
last-known price. You can filter tokens by chain or symbol.

Examples:
  swap-preview list-tokens
  swap-preview list-tokens --chain 1
  swap-preview list-tokens --symbol USD`,
	Run: runListTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVar(&filterChain, "chain", "", "Filter by chain id or name")
	tokensCmd.Flags().StringVar(&filterSymbol, "symbol", "", "Filter by token symbol")
}

func runListTokens(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	tokens, err := loadCatalog(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	filtered := filterTokens(tokens, filterChain, filterSymbol)

	if jsonOutput {
		if err := displayTokensJSON(os.Stdout, filtered); err != nil {
			printError(err)
			os.Exit(1)
		}
		return
	}

	displayTokens(filtered)
}

func filterTokens(tokens []types.Token, chainFilter, symbolFilter string) []types.Token {
	filtered := tokens
	if chainFilter != "" {
		var temp []types.Token
		for _, token := range filtered {
			if chain.Blockchain(token.ChainID) == chain.Blockchain(chainFilter) {
				temp = append(temp, token)
			}
		}
		filtered = temp
	}

	if symbolFilter != "" {
		var temp []types.Token
		for _, token := range filtered {
			if strings.Contains(strings.ToUpper(token.Symbol), strings.ToUpper(symbolFilter)) {
				temp = append(temp, token)
			}
		}
		filtered = temp
	}
	return filtered
}

func displayTokens(tokens []types.Token) {
	if len(tokens) == 0 {
		fmt.Println("\nNo tokens found matching the criteria.")
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	color.Green("                            AVAILABLE TOKENS")
	fmt.Println(strings.Repeat("=", 90))

	// Group tokens by blockchain
	tokensByChain := make(map[string][]types.Token)
	for _, token := range tokens {
		name := chain.Blockchain(token.ChainID)
		tokensByChain[name] = append(tokensByChain[name], token)
	}

	chains := make([]string, 0, len(tokensByChain))
	for name := range tokensByChain {
		chains = append(chains, name)
	}
	sort.Strings(chains)

	for _, name := range chains {
		color.Cyan("\n%s", strings.ToUpper(name))
		fmt.Println(strings.Repeat("-", 90))

		for _, token := range tokensByChain[name] {
			address := token.TokenAddress
			if len(address) > 40 {
				address = address[:37] + "..."
			}

			price := quote.FormatPrice(token.PriceInUSD)
			if token.Fallback {
				price += " (last known)"
			}

			fmt.Printf("  %-10s  %-22s  %2d decimals  %s\n",
				color.YellowString(token.Symbol),
				price,
				token.Decimals,
				color.HiBlackString(address))
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	fmt.Printf("\nTotal: %d tokens across %d chains\n\n", len(tokens), len(chains))
}
