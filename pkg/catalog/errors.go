package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogUnavailable means no token survived loading, even with fallbacks
	ErrCatalogUnavailable = errors.New("no tokens available")

	// ErrNonPositivePrice is reported when the pricing service quotes 0 or less
	ErrNonPositivePrice = errors.New("price is not positive")
)

// FetchStage names the lookup that failed for a token
type FetchStage string

const (
	StageMetadata FetchStage = "metadata"
	StagePrice    FetchStage = "price"
)

// TokenFetchError describes a failed lookup for a single token. It is
// recovered inside the loader and never surfaced to the user.
type TokenFetchError struct {
	Symbol  string
	ChainID string
	Stage   FetchStage
	Err     error
}

func (e *TokenFetchError) Error() string {
	return fmt.Sprintf("fetch %s for %s on chain %s: %v", e.Stage, e.Symbol, e.ChainID, e.Err)
}

func (e *TokenFetchError) Unwrap() error {
	return e.Err
}
