package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"swap-preview/pkg/types"
)

// PricingSource is the upstream service tokens are looked up in
type PricingSource interface {
	// ResolveToken returns the canonical address, name and decimals of a token
	ResolveToken(ctx context.Context, chainID, symbol string) (*types.TokenMetadata, error)
	// UnitPrice returns the current USD price of one token
	UnitPrice(ctx context.Context, chainID, address string) (float64, error)
}

const (
	defaultConcurrency = 4
	defaultTimeout     = 10 * time.Second
)

// Loader builds the session's token catalog
type Loader struct {
	source      PricingSource
	wanted      []types.WantedToken
	fallback    map[string]FallbackPrice
	concurrency int
	timeout     time.Duration
	logger      *zap.Logger
}

// Option configures a Loader
type Option func(*Loader)

// WithFallbackPrices replaces the built-in last-known price table
func WithFallbackPrices(prices map[string]FallbackPrice) Option {
	return func(l *Loader) {
		l.fallback = prices
	}
}

// WithConcurrency limits how many tokens are fetched at once
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithTimeout bounds each token's lookups
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithLogger sets the logger used for per-token failures
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a loader for the given wanted tokens
func NewLoader(source PricingSource, wanted []types.WantedToken, opts ...Option) *Loader {
	l := &Loader{
		source:      source,
		wanted:      append([]types.WantedToken(nil), wanted...),
		fallback:    DefaultFallbackPrices(),
		concurrency: defaultConcurrency,
		timeout:     defaultTimeout,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches every wanted token in parallel and returns the catalog sorted
// by symbol. A token that fails is replaced by its fallback price if there is
// one and dropped otherwise. Load only fails when nothing is left.
func (l *Loader) Load(ctx context.Context) ([]types.Token, error) {
	wanted := l.uniqueWanted()
	results := make([]*types.Token, len(wanted))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i, w := range wanted {
		g.Go(func() error {
			results[i] = l.loadOne(ctx, w)
			return nil
		})
	}
	_ = g.Wait()

	tokens := make([]types.Token, 0, len(results))
	for _, t := range results {
		if t != nil {
			tokens = append(tokens, *t)
		}
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Symbol < tokens[j].Symbol
	})

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: all %d token lookups failed", ErrCatalogUnavailable, len(wanted))
	}

	l.logger.Debug("Catalog loaded",
		zap.Int("wanted", len(wanted)),
		zap.Int("loaded", len(tokens)))
	return tokens, nil
}

func (l *Loader) loadOne(ctx context.Context, w types.WantedToken) *types.Token {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	var fallback *FallbackPrice
	if fb, ok := l.fallback[w.Symbol]; ok && fb.PriceUSD > 0 {
		fallback = &fb
	}

	meta, err := l.source.ResolveToken(ctx, w.ChainID, w.Symbol)
	if err != nil {
		return l.useFallback(&TokenFetchError{Symbol: w.Symbol, ChainID: w.ChainID, Stage: StageMetadata, Err: err}, w, nil, fallback)
	}

	price, err := l.source.UnitPrice(ctx, w.ChainID, meta.Address)
	if err == nil && (price <= 0 || math.IsNaN(price) || math.IsInf(price, 0)) {
		err = fmt.Errorf("%w: %v", ErrNonPositivePrice, price)
	}
	if err != nil {
		return l.useFallback(&TokenFetchError{Symbol: w.Symbol, ChainID: w.ChainID, Stage: StagePrice, Err: err}, w, meta, fallback)
	}

	t := Merge(w, meta, fallback)
	t.PriceInUSD = price
	return &t
}

// useFallback applies the fallback price after a failed lookup, or drops the token
func (l *Loader) useFallback(fetchErr *TokenFetchError, w types.WantedToken, meta *types.TokenMetadata, fallback *FallbackPrice) *types.Token {
	if fallback == nil {
		l.logger.Warn("Token fetch failed, dropping token",
			zap.String("symbol", w.Symbol),
			zap.String("chain", w.ChainID),
			zap.Error(fetchErr))
		return nil
	}

	l.logger.Warn("Token fetch failed, using fallback price",
		zap.String("symbol", w.Symbol),
		zap.String("chain", w.ChainID),
		zap.Float64("fallback_price", fallback.PriceUSD),
		zap.Error(fetchErr))

	t := Merge(w, meta, fallback)
	t.PriceInUSD = fallback.PriceUSD
	t.Fallback = true
	return &t
}

// uniqueWanted drops repeated symbols, keeping the first occurrence
func (l *Loader) uniqueWanted() []types.WantedToken {
	seen := make(map[string]bool, len(l.wanted))
	out := make([]types.WantedToken, 0, len(l.wanted))
	for _, w := range l.wanted {
		if seen[w.Symbol] {
			l.logger.Warn("Duplicate token symbol in configuration, ignoring",
				zap.String("symbol", w.Symbol),
				zap.String("chain", w.ChainID))
			continue
		}
		seen[w.Symbol] = true
		out = append(out, w)
	}
	return out
}

// Find looks a token up by symbol
func Find(tokens []types.Token, symbol string) (types.Token, bool) {
	for _, t := range tokens {
		if t.Symbol == symbol {
			return t, true
		}
	}
	return types.Token{}, false
}
