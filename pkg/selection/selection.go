package selection

import (
	"errors"
	"fmt"
	"math"

	"swap-preview/pkg/parser"
	"swap-preview/pkg/quote"
	"swap-preview/pkg/types"
)

var (
	ErrUnknownToken     = errors.New("token is not in the catalog")
	ErrNoSource         = errors.New("select a source token first")
	ErrSameToken        = errors.New("target token must differ from source token")
	ErrNotFullySelected = errors.New("both source and target must be selected")
	ErrQuoteNotReady    = errors.New("quote not ready")
)

// State is the selection progress
type State int

const (
	Empty State = iota
	SourceOnly
	FullySelected
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case SourceOnly:
		return "source-only"
	case FullySelected:
		return "fully-selected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Selection tracks the source, target and USD amount of one preview session.
// Transitions are synchronous; a Selection must not be shared between sessions.
type Selection struct {
	catalog   []types.Token
	source    *types.Token
	target    *types.Token
	usdAmount float64
}

// New creates an empty selection over a loaded catalog
func New(catalog []types.Token) *Selection {
	return &Selection{catalog: append([]types.Token(nil), catalog...)}
}

// State reports where the selection is
func (s *Selection) State() State {
	switch {
	case s.source == nil:
		return Empty
	case s.target == nil:
		return SourceOnly
	default:
		return FullySelected
	}
}

// Source returns the selected source token, if any
func (s *Selection) Source() (types.Token, bool) {
	if s.source == nil {
		return types.Token{}, false
	}
	return *s.source, true
}

// Target returns the selected target token, if any
func (s *Selection) Target() (types.Token, bool) {
	if s.target == nil {
		return types.Token{}, false
	}
	return *s.target, true
}

// USDAmount returns the entered amount
func (s *Selection) USDAmount() float64 {
	return s.usdAmount
}

// Catalog returns the tokens available as source
func (s *Selection) Catalog() []types.Token {
	return append([]types.Token(nil), s.catalog...)
}

// TargetCandidates returns the catalog without the current source
func (s *Selection) TargetCandidates() []types.Token {
	out := make([]types.Token, 0, len(s.catalog))
	for _, t := range s.catalog {
		if s.source != nil && t.Symbol == s.source.Symbol {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SelectSource sets the source token; an empty symbol clears it. The target
// is always cleared so a stale pair is never shown.
func (s *Selection) SelectSource(symbol string) error {
	if symbol == "" {
		s.source, s.target = nil, nil
		return nil
	}

	t, err := s.lookup(symbol)
	if err != nil {
		return err
	}
	s.source, s.target = t, nil
	return nil
}

// SelectTarget sets the target token; an empty symbol clears it
func (s *Selection) SelectTarget(symbol string) error {
	if s.source == nil {
		return ErrNoSource
	}
	if symbol == "" {
		s.target = nil
		return nil
	}
	if symbol == s.source.Symbol {
		return ErrSameToken
	}

	t, err := s.lookup(symbol)
	if err != nil {
		return err
	}
	s.target = t
	return nil
}

// SetAmount stores the USD amount. Negative and non-finite values become 0.
func (s *Selection) SetAmount(amount float64) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = 0
	}
	s.usdAmount = amount
}

// SetAmountInput parses free-text USD input. Input that isn't a number sets
// the amount to 0 and returns parser.ErrInvalidAmount.
func (s *Selection) SetAmountInput(raw string) error {
	amount, err := parser.ParseUSDAmount(raw)
	if err != nil {
		s.usdAmount = 0
		return err
	}
	s.SetAmount(amount)
	return nil
}

// Invert exchanges source and target. Unlike SelectSource it keeps the target.
func (s *Selection) Invert() error {
	if s.State() != FullySelected {
		return ErrNotFullySelected
	}
	s.source, s.target = s.target, s.source
	return nil
}

// QuoteReady reports whether a preview can be shown
func (s *Selection) QuoteReady() bool {
	return s.State() == FullySelected &&
		s.usdAmount > 0 &&
		s.source.Quotable() &&
		s.target.Quotable()
}

// Preview computes the quote for the current selection
func (s *Selection) Preview() (*quote.Preview, error) {
	if !s.QuoteReady() {
		return nil, ErrQuoteNotReady
	}
	return quote.Build(*s.source, *s.target, s.usdAmount)
}

func (s *Selection) lookup(symbol string) (*types.Token, error) {
	for i := range s.catalog {
		if s.catalog[i].Symbol == symbol {
			t := s.catalog[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownToken, symbol)
}
