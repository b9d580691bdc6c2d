package keys

import (
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// SeedSize is the length of a BIP-39 seed in bytes
const SeedSize = 64

// ErrInvalidMnemonic is returned when a phrase fails BIP-39 validation
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// SeedFromMnemonic derives the 512-bit seed with PBKDF2-SHA512.
// The caller owns the returned slice and should clear it after use.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to derive seed: %w", err)
	}
	return seed, nil
}
