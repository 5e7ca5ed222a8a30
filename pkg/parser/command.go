package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"swap-preview/pkg/types"
)

// ErrInvalidAmount is returned for USD input that is not a number
var ErrInvalidAmount = errors.New("invalid USD amount")

var (
	previewPattern = regexp.MustCompile(`^\$?([0-9][0-9,]*\.?[0-9]*|\.[0-9]+)\s*(?:USD\s+)?(?:OF\s+)?([A-Z0-9]+)\s+(?:TO|FOR|->)\s+([A-Z0-9]+)$`)
	nonNumeric     = regexp.MustCompile(`[^0-9.]`)
)

// ParsePreviewCommand parses a natural language preview command
// Examples:
//   - "preview 100 ETH to USDC"
//   - "$250 USDC to WBTC"
//   - "1,000 USD of ETH for USDT"
func ParsePreviewCommand(command string) (*types.PreviewRequest, error) {
	command = strings.TrimSpace(strings.ToUpper(command))
	command = strings.TrimPrefix(command, "PREVIEW ")
	command = strings.TrimPrefix(command, "SWAP ")

	matches := previewPattern.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid preview command format. Expected: 'preview <usd> <token> to <token>' (e.g., 'preview 100 ETH to USDC')")
	}

	return &types.PreviewRequest{
		USDAmount:   matches[1],
		SourceToken: matches[2],
		TargetToken: matches[3],
	}, nil
}

// ValidatePreviewRequest validates that a preview request has all required fields
func ValidatePreviewRequest(req *types.PreviewRequest) error {
	if req.USDAmount == "" {
		return fmt.Errorf("USD amount is required")
	}
	if req.SourceToken == "" {
		return fmt.Errorf("source token is required")
	}
	if req.TargetToken == "" {
		return fmt.Errorf("target token is required")
	}
	if NormalizeTokenSymbol(req.SourceToken) == NormalizeTokenSymbol(req.TargetToken) {
		return fmt.Errorf("source and target token must differ")
	}
	return nil
}

// ParseUSDAmount normalizes free-text USD input and parses it.
// Everything except digits and the first decimal point is stripped, so
// "$1,250.50" parses as 1250.5. Empty input is 0.
func ParseUSDAmount(input string) (float64, error) {
	cleaned := nonNumeric.ReplaceAllString(input, "")
	if i := strings.IndexByte(cleaned, '.'); i >= 0 {
		cleaned = cleaned[:i+1] + strings.ReplaceAll(cleaned[i+1:], ".", "")
	}
	if cleaned == "" || cleaned == "." {
		if strings.TrimSpace(input) == "" {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	return amount, nil
}

// NormalizeTokenSymbol normalizes token symbols to standard format
func NormalizeTokenSymbol(symbol string) string {
	return strings.TrimSpace(strings.ToUpper(symbol))
}
