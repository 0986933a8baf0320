package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ToAmount converts a currency-formatted string to a decimal amount.
// Thousands separators and dollar signs are stripped before parsing.
// Unparseable input (including empty input) yields zero so that totals
// stay defined; callers that need to detect malformed values must inspect
// the raw detail lines instead.
func ToAmount(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
