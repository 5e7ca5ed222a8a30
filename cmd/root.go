package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swap-preview",
	Short: "Preview a token swap for a USD amount using live prices",
	Long: `swap-preview shows what a USD amount buys on each side of a token swap.
Pick a source token, a target token and a USD amount to see token
quantities, unit prices and the cross exchange rate. Nothing is executed:
this is a read-only pricing preview.

Examples:
  swap-preview preview 100 ETH to USDC
  swap-preview preview '$2,500' WBTC to ETH --invert
  swap-preview interactive
  swap-preview list-tokens`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}
