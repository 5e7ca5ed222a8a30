package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swap-preview/config"
	"swap-preview/pkg/catalog"
	"swap-preview/pkg/client"
	"swap-preview/pkg/logger"
	"swap-preview/pkg/types"
)

// loadCatalog loads configuration and runs the session's single catalog load.
// The spinner is the "loading" state; it ends in either a catalog or a banner.
func loadCatalog(cmd *cobra.Command) ([]types.Token, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Debug || verbose)
	defer func() { _ = log.Sync() }()

	for _, w := range cfg.Warnings {
		log.Warn("Configuration warning", zap.String("warning", w))
	}

	apiClient := client.NewOneClickClient(cfg.APIKey, cfg.BaseURL, cfg.RequestTimeout)
	loader := catalog.NewLoader(apiClient, cfg.WantedTokens(),
		catalog.WithConcurrency(cfg.Concurrency),
		catalog.WithTimeout(cfg.RequestTimeout),
		catalog.WithLogger(log),
	)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Loading token prices..."
		s.Start()
	}

	tokens, err := loader.Load(cmd.Context())
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		if errors.Is(err, catalog.ErrCatalogUnavailable) && !jsonOutput {
			displayUnavailableBanner()
		}
		return nil, err
	}

	if verbose {
		fallbacks := 0
		for _, t := range tokens {
			if t.Fallback {
				fallbacks++
			}
		}
		fmt.Printf("\nLoaded %d tokens (%d using last-known prices)\n", len(tokens), fallbacks)
	}

	return tokens, nil
}

func displayUnavailableBanner() {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Red("                         ERROR")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\n  No tokens available. Please try again later.")
	fmt.Println("  Check your network connection and API key, then rerun the command.")
	fmt.Println("\n" + strings.Repeat("=", 60))
}
