package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice converts a submitted money string into a decimal. It accepts
// plain values ("1234.56"), a currency prefix ("R$ 1.234,56") and the
// comma-decimal format with dot thousand separators. The boolean is false
// when the string does not parse.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	// Comma-decimal input: drop thousand separators, swap the comma.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	return price, true
}
