package common

import (
	"regexp"
	"strings"
)

var (
	addressRegex    = regexp.MustCompile(`(?i)^drm[0-9a-f]{40,64}$`)
	amountRegex     = regexp.MustCompile(`^\d+(\.\d{1,8})?$`)
	privateKeyRegex = regexp.MustCompile(`(?i)^[0-9a-f]{64}$`)
)

// IsValidAddress reports whether address is "drm" followed by 40-64 hex characters
func IsValidAddress(address string) bool {
	return addressRegex.MatchString(address)
}

// IsValidAmount reports whether amount is a nonnegative decimal with up to 8
// fractional digits that is strictly greater than zero
func IsValidAmount(amount string) bool {
	if !amountRegex.MatchString(amount) {
		return false
	}
	units, err := AmountToUnits(amount)
	return err == nil && units > 0
}

// IsValidPrivateKey reports whether key is 32 bytes of hex
func IsValidPrivateKey(key string) bool {
	return privateKeyRegex.MatchString(key)
}

// SanitizeInput strips angle brackets from free text such as memos
func SanitizeInput(input string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(input)
}
