// Package keys turns a recovery phrase into wallet accounts and signs with
// them. Nothing here touches disk or the network.
package keys

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// DefaultEntropyBits yields a 24-word mnemonic
const DefaultEntropyBits = 256

// GenerateMnemonic creates a new BIP-39 mnemonic. bits must be one of
// 128, 160, 192, 224 or 256; zero means DefaultEntropyBits.
func GenerateMnemonic(bits int) (string, error) {
	if bits == 0 {
		bits = DefaultEntropyBits
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks word count, wordlist membership and checksum
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
