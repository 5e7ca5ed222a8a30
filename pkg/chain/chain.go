package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
)

// Chain ids as used in token configuration
const (
	Ethereum = "1"
	Polygon  = "137"
	Base     = "8453"
	Arbitrum = "42161"
	Solana   = "sol"
)

// ZeroAddress marks a token whose data came from the fallback price table
var ZeroAddress = common.Address{}.Hex()

var blockchains = map[string]string{
	Ethereum: "eth",
	Polygon:  "pol",
	Base:     "base",
	Arbitrum: "arb",
	Solana:   "sol",
}

// Blockchain maps a configured chain id to the pricing service's blockchain name.
// Unknown ids are passed through lower-cased so names like "near" also work.
func Blockchain(chainID string) string {
	if name, ok := blockchains[chainID]; ok {
		return name
	}
	return strings.ToLower(strings.TrimSpace(chainID))
}

// IsEVM reports whether addresses on the chain are 20-byte hex
func IsEVM(chainID string) bool {
	switch Blockchain(chainID) {
	case "eth", "pol", "base", "arb", "bsc", "op", "avax", "gnosis":
		return true
	}
	return false
}

// NormalizeAddress validates a token address for its chain and returns its
// canonical form (EIP-55 checksum for EVM, base58 for Solana). Addresses on
// other chains are returned trimmed.
func NormalizeAddress(chainID, address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("empty token address")
	}

	switch {
	case IsEVM(chainID):
		if !common.IsHexAddress(address) {
			return "", fmt.Errorf("invalid EVM address %q", address)
		}
		return common.HexToAddress(address).Hex(), nil
	case Blockchain(chainID) == "sol":
		pk, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return "", fmt.Errorf("invalid Solana mint %q: %w", address, err)
		}
		return pk.String(), nil
	default:
		return address, nil
	}
}

// SameAddress compares two addresses on a chain after normalization
func SameAddress(chainID, a, b string) bool {
	na, errA := NormalizeAddress(chainID, a)
	nb, errB := NormalizeAddress(chainID, b)
	if errA != nil || errB != nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	return na == nb
}
