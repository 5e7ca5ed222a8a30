package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"swap-preview/pkg/chain"
	"swap-preview/pkg/types"
)

const (
	DefaultBaseURL        = "https://1click.chaindefuser.com"
	DefaultRequestTimeout = 10 * time.Second
	DefaultConcurrency    = 4
)

// Config holds the application configuration
type Config struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	Concurrency    int
	Debug          bool
	Features       Features

	// Tokens overrides the built-in base token list when set in the config file
	Tokens []types.WantedToken

	// Warnings are problems that don't stop the app, e.g. a missing API key
	Warnings []string
}

// Features toggles optional tokens
type Features struct {
	EnableSOL        bool `mapstructure:"enable_sol"`
	EnableMemeTokens bool `mapstructure:"enable_meme_tokens"`
}

var baseTokens = []types.WantedToken{
	{Symbol: "USDC", ChainID: chain.Ethereum, Name: "USD Coin", Decimals: 6},
	{Symbol: "USDT", ChainID: chain.Polygon, Name: "Tether USD", Decimals: 6},
	{Symbol: "ETH", ChainID: chain.Base, Name: "Ethereum", Decimals: 18},
	{Symbol: "WBTC", ChainID: chain.Ethereum, Name: "Wrapped Bitcoin", Decimals: 8},
}

var solTokens = []types.WantedToken{
	{Symbol: "SOL", ChainID: chain.Solana, Name: "Solana", Decimals: 9},
}

var memeTokens = []types.WantedToken{
	{Symbol: "PEPE", ChainID: chain.Ethereum, Name: "Pepe", Decimals: 18},
	{Symbol: "SHIB", ChainID: chain.Ethereum, Name: "Shiba Inu", Decimals: 18},
}

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".swap-preview")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SWAP_PREVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("max_concurrent_fetches", DefaultConcurrency)

	cfg := &Config{
		APIKey:         v.GetString("api_key"),
		BaseURL:        v.GetString("base_url"),
		RequestTimeout: v.GetDuration("request_timeout"),
		Concurrency:    v.GetInt("max_concurrent_fetches"),
		Debug:          v.GetBool("debug"),
		Features: Features{
			EnableSOL:        v.GetBool("features.enable_sol"),
			EnableMemeTokens: v.GetBool("features.enable_meme_tokens"),
		},
	}

	if v.IsSet("tokens") {
		if err := v.UnmarshalKey("tokens", &cfg.Tokens); err != nil {
			return nil, fmt.Errorf("invalid tokens list: %w", err)
		}
	}

	if cfg.APIKey == "" {
		cfg.Warnings = append(cfg.Warnings,
			"API key not found. Set SWAP_PREVIEW_API_KEY or api_key in .swap-preview.yaml; prices may fall back to last-known values")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks numeric settings and the token list
func (c *Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be greater than 0")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("max_concurrent_fetches must be greater than 0")
	}
	for i, t := range c.Tokens {
		if t.Symbol == "" || t.ChainID == "" {
			return fmt.Errorf("tokens[%d]: symbol and chain_id are required", i)
		}
	}
	return nil
}

// WantedTokens returns the tokens to load for this session: the base list
// followed by any tokens enabled through feature toggles. The returned slice
// is a fresh copy.
func (c *Config) WantedTokens() []types.WantedToken {
	base := baseTokens
	if len(c.Tokens) > 0 {
		base = c.Tokens
	}

	wanted := append([]types.WantedToken(nil), base...)
	if c.Features.EnableSOL {
		wanted = append(wanted, solTokens...)
	}
	if c.Features.EnableMemeTokens {
		wanted = append(wanted, memeTokens...)
	}
	return wanted
}
