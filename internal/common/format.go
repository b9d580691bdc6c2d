package common

import (
	"strconv"
	"strings"
	"time"
)

const (
	truncateStart = 10
	truncateEnd   = 8
)

// FormatCrypto formats an amount with 8 decimals and the DRACHMA symbol
func FormatCrypto(amount float64) string {
	return FormatCryptoWith(amount, Decimals, Symbol)
}

// FormatCryptoWith formats an amount with the given precision and symbol
func FormatCryptoWith(amount float64, decimals int, symbol string) string {
	return strconv.FormatFloat(amount, 'f', decimals, 64) + " " + symbol
}

// FormatUnits formats base units exactly, e.g. 150000000 -> "1.50000000 DRACHMA"
func FormatUnits(units uint64) string {
	return UnitsToAmount(units) + " " + Symbol
}

// TruncateAddress shortens an address for display: first 10 chars, "...", last 8 chars.
// Addresses of 18 chars or fewer are returned unchanged.
func TruncateAddress(address string) string {
	return TruncateAddressWith(address, truncateStart, truncateEnd)
}

// TruncateAddressWith is TruncateAddress with custom widths
func TruncateAddressWith(address string, startChars, endChars int) string {
	if startChars < 0 || endChars < 0 || len(address) <= startChars+endChars {
		return address
	}
	return address[:startChars] + "..." + address[len(address)-endChars:]
}

// fiatSymbols maps ISO 4217 codes to their en-US display symbols
var fiatSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "A$",
}

// fiatZeroDecimal lists currencies shown without minor units
var fiatZeroDecimal = map[string]bool{"JPY": true, "KRW": true}

// FormatFiat formats amount the way en-US shows currency: "$1,234.56".
// Unknown codes are prefixed with the code and a space.
func FormatFiat(amount float64, currency string) string {
	currency = strings.ToUpper(currency)
	if currency == "" {
		currency = "USD"
	}
	decimals := 2
	if fiatZeroDecimal[currency] {
		decimals = 0
	}
	symbol, ok := fiatSymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	text := strconv.FormatFloat(amount, 'f', decimals, 64)
	whole, frac, _ := strings.Cut(text, ".")
	if frac != "" {
		frac = "." + frac
	}
	return sign + symbol + groupThousands(whole) + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDate formats t in the en-US medium style, e.g. "Oct 19, 2026, 03:04 PM"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006, 03:04 PM")
}

// FormatRelativeTime describes how long before now t was: "3 hours ago",
// "1 minute ago", or "Just now" under a minute. Future times are "Just now".
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff >= 24*time.Hour:
		return plural(int64(diff/(24*time.Hour)), "day")
	case diff >= time.Hour:
		return plural(int64(diff/time.Hour), "hour")
	case diff >= time.Minute:
		return plural(int64(diff/time.Minute), "minute")
	default:
		return "Just now"
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return strconv.FormatInt(n, 10) + " " + unit + "s ago"
}
