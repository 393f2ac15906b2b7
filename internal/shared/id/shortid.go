package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixBusinessPlan      = "bp"
	PrefixMarketData        = "md"
	PrefixCompetitor        = "cm"
	PrefixSwotAnalysis      = "sw"
	PrefixInvestmentLine    = "iv"
	PrefixFixedCost         = "fc"
	PrefixVariableCost      = "vc"
	PrefixProjection        = "fp"
	PrefixMarketingStrategy = "mk"
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
// Use this only when you're certain the generation won't fail.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
// This follows the Stripe-style ID pattern for human-readable identifiers.
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, id), nil
}

// MustGenerateWithPrefix creates a prefixed ID and panics on error.
func MustGenerateWithPrefix(prefix string, length int) string {
	id, err := GenerateWithPrefix(prefix, length)
	if err != nil {
		panic(err)
	}
	return id
}

// HasPrefix reports whether the SID carries the given entity prefix.
func HasPrefix(sid, prefix string) bool {
	return strings.HasPrefix(sid, prefix+"_")
}

// StripPrefix removes the entity prefix from a SID. Returns the SID
// unchanged when the prefix does not match.
func StripPrefix(sid, prefix string) string {
	return strings.TrimPrefix(sid, prefix+"_")
}

// ValidatePrefix checks that a SID carries the expected entity prefix
// and a non-empty random part.
func ValidatePrefix(sid, prefix string) error {
	if !HasPrefix(sid, prefix) {
		return fmt.Errorf("sid %q does not have prefix %q", sid, prefix)
	}
	if StripPrefix(sid, prefix) == "" {
		return fmt.Errorf("sid %q has an empty random part", sid)
	}
	return nil
}
