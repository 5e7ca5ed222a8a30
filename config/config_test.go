package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.False(t, cfg.Debug)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "API key not found")
}

func TestFromViperValues(t *testing.T) {
	v := viper.New()
	v.Set("api_key", "secret")
	v.Set("request_timeout", "3s")
	v.Set("max_concurrent_fetches", 2)
	v.Set("features.enable_sol", true)

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.True(t, cfg.Features.EnableSOL)
	assert.Empty(t, cfg.Warnings)
}

func TestFromViperInvalid(t *testing.T) {
	v := viper.New()
	v.Set("max_concurrent_fetches", 0)
	_, err := FromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("request_timeout", "-1s")
	_, err = FromViper(v)
	assert.Error(t, err)
}

func TestWantedTokens(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, []string{"USDC", "USDT", "ETH", "WBTC"}, symbols(cfg))

	cfg.Features.EnableSOL = true
	assert.Equal(t, []string{"USDC", "USDT", "ETH", "WBTC", "SOL"}, symbols(cfg))

	cfg.Features.EnableMemeTokens = true
	assert.Equal(t, []string{"USDC", "USDT", "ETH", "WBTC", "SOL", "PEPE", "SHIB"}, symbols(cfg))
}

func TestWantedTokensIsACopy(t *testing.T) {
	cfg := &Config{}
	wanted := cfg.WantedTokens()
	wanted[0].Symbol = "CHANGED"

	assert.Equal(t, "USDC", cfg.WantedTokens()[0].Symbol)
}

func TestWantedTokensFromConfigFile(t *testing.T) {
	v := viper.New()
	v.Set("tokens", []map[string]interface{}{
		{"symbol": "DAI", "chain_id": "1", "name": "Dai"},
	})

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"DAI"}, symbols(cfg))
	assert.Equal(t, "Dai", cfg.WantedTokens()[0].Name)
}

func symbols(cfg *Config) []string {
	var out []string
	for _, t := range cfg.WantedTokens() {
		out = append(out, t.Symbol)
	}
	return out
}
