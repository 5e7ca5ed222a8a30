package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	oneclick "github.com/defuse-protocol/one-click-sdk-go"
	"golang.org/x/sync/singleflight"

	"swap-preview/pkg/chain"
	"swap-preview/pkg/types"
)

// listing is the part of a 1Click token entry the preview needs
type listing struct {
	AssetID    string
	Symbol     string
	Blockchain string
	Contract   string
	Decimals   int
	Price      float64
}

// address is the contract address, or the asset id for native tokens
func (l listing) address() string {
	if l.Contract != "" {
		return l.Contract
	}
	return l.AssetID
}

// OneClickClient wraps the 1Click SDK as a token pricing source. The token
// list is fetched once and reused for every lookup in the session.
type OneClickClient struct {
	client   *oneclick.APIClient
	jwtToken string

	mu       sync.Mutex
	listings []listing

	group singleflight.Group
	// fetch replaces fetchListings when set
	fetch func(ctx context.Context) ([]listing, error)
}

// NewOneClickClient creates a new 1Click API client
func NewOneClickClient(jwtToken, baseURL string, timeout time.Duration) *OneClickClient {
	config := oneclick.NewConfiguration()
	if baseURL != "" {
		config.Servers = oneclick.ServerConfigurations{{URL: baseURL}}
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	return &OneClickClient{
		client:   oneclick.NewAPIClient(config),
		jwtToken: jwtToken,
	}
}

// GetSupportedTokens retrieves all supported tokens
func (c *OneClickClient) GetSupportedTokens(ctx context.Context) ([]oneclick.TokenResponse, error) {
	if c.jwtToken != "" {
		ctx = context.WithValue(ctx, oneclick.ContextAccessToken, c.jwtToken)
	}

	resp, httpResp, err := c.client.OneClickAPI.GetTokens(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get tokens: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", httpResp.StatusCode)
	}

	return resp, nil
}

// ResolveToken finds a token's metadata by chain and symbol
func (c *OneClickClient) ResolveToken(ctx context.Context, chainID, symbol string) (*types.TokenMetadata, error) {
	listings, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	l, err := findBySymbol(listings, chainID, symbol)
	if err != nil {
		return nil, err
	}

	address := l.address()
	if l.Contract != "" {
		if normalized, err := chain.NormalizeAddress(chainID, l.Contract); err == nil {
			address = normalized
		}
	}

	return &types.TokenMetadata{
		Address:  address,
		Decimals: l.Decimals,
	}, nil
}

// UnitPrice returns the USD price of a token by chain and address
func (c *OneClickClient) UnitPrice(ctx context.Context, chainID, address string) (float64, error) {
	listings, err := c.load(ctx)
	if err != nil {
		return 0, err
	}

	l, err := findByAddress(listings, chainID, address)
	if err != nil {
		return 0, err
	}
	return l.Price, nil
}

// load fetches the token list on first use. Concurrent callers share one
// in-flight request. A failed fetch is not cached so the next lookup tries
// again.
func (c *OneClickClient) load(ctx context.Context) ([]listing, error) {
	if listings := c.cached(); listings != nil {
		return listings, nil
	}

	v, err, _ := c.group.Do("tokens", func() (interface{}, error) {
		if listings := c.cached(); listings != nil {
			return listings, nil
		}

		fetch := c.fetch
		if fetch == nil {
			fetch = c.fetchListings
		}
		listings, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.listings = listings
		c.mu.Unlock()
		return listings, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]listing), nil
}

func (c *OneClickClient) cached() []listing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listings
}

func (c *OneClickClient) fetchListings(ctx context.Context) ([]listing, error) {
	tokens, err := c.GetSupportedTokens(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]listing, 0, len(tokens))
	for _, t := range tokens {
		listings = append(listings, listing{
			AssetID:    t.GetAssetId(),
			Symbol:     t.GetSymbol(),
			Blockchain: t.GetBlockchain(),
			Contract:   t.GetContractAddress(),
			Decimals:   int(t.GetDecimals()),
			Price:      float64(t.GetPrice()),
		})
	}
	return listings, nil
}

func findBySymbol(listings []listing, chainID, symbol string) (listing, error) {
	blockchain := chain.Blockchain(chainID)
	symbol = strings.ToUpper(symbol)

	for _, l := range listings {
		if strings.ToUpper(l.Symbol) == symbol && strings.ToLower(l.Blockchain) == blockchain {
			return l, nil
		}
	}
	return listing{}, fmt.Errorf("token '%s' not found on chain '%s'", symbol, blockchain)
}

func findByAddress(listings []listing, chainID, address string) (listing, error) {
	blockchain := chain.Blockchain(chainID)

	for _, l := range listings {
		if strings.ToLower(l.Blockchain) != blockchain {
			continue
		}
		if l.AssetID == address || (l.Contract != "" && chain.SameAddress(chainID, l.Contract, address)) {
			return l, nil
		}
	}
	return listing{}, fmt.Errorf("no price for '%s' on chain '%s'", address, blockchain)
}
