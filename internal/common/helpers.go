package common

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	Decimals = 8 // 1 DRACHMA = 10^8 base units
	Symbol   = "DRACHMA"
)

// UnitsToAmount converts base units to a DRACHMA decimal string without float precision loss
func UnitsToAmount(units uint64) string {
	return formatWithDecimals(units, Decimals)
}

// AmountToUnits converts a DRACHMA decimal string to base units without float precision loss.
// More than 8 fractional digits is an error rather than a silent truncation.
func AmountToUnits(amount string) (uint64, error) {
	return parseWithDecimals(amount, Decimals)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(2498183, 8) = "0.02498183"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("0.02498183", 8) = 2498183
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("signed amounts are not allowed")
	}

	parts := strings.Split(s, ".")

	if len(parts) == 1 {
		n, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return 0, err
		}
		for i := 0; i < decimals; i++ {
			if n > (^uint64(0))/10 {
				return 0, fmt.Errorf("amount overflows")
			}
			n *= 10
		}
		return n, nil
	}

	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := parts[1]

	if len(frac) > decimals {
		return 0, fmt.Errorf("more than %d fractional digits", decimals)
	}
	frac += strings.Repeat("0", decimals-len(frac))

	return strconv.ParseUint(whole+frac, 10, 64)
}

// CompareAmounts compares two DRACHMA decimal string amounts without float precision loss.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b, and error if parsing fails
func CompareAmounts(a, b string) (int, error) {
	aVal, err := AmountToUnits(a)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}

	bVal, err := AmountToUnits(b)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}

	if aVal < bVal {
		return -1, nil
	}
	if aVal > bVal {
		return 1, nil
	}
	return 0, nil
}

var unitsPerCoin = new(big.Rat).SetInt64(100_000_000)

// NodeAmountToUnits converts a JSON number reported by the node (which may be
// negative for outgoing entries or use an exponent) to base units and sign.
func NodeAmountToUnits(amount string) (units uint64, negative bool, err error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(amount))
	if !ok {
		return 0, false, fmt.Errorf("invalid amount %q", amount)
	}
	negative = r.Sign() < 0
	r.Abs(r)
	r.Mul(r, unitsPerCoin)
	if !r.IsInt() {
		return 0, false, fmt.Errorf("amount %q has more than %d fractional digits", amount, Decimals)
	}
	n := r.Num()
	if !n.IsUint64() {
		return 0, false, fmt.Errorf("amount %q overflows", amount)
	}
	return n.Uint64(), negative, nil
}
