package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"1234.56", "1234.56", true},
		{"10", "10", true},
		{"  42.5  ", "42.5", true},
		{"R$ 1.234,56", "1234.56", true},
		{"1.234,56", "1234.56", true},
		{"12,5", "12.5", true},
		{"R$10", "10", true},
		{"", "", false},
		{"R$ ", "", false},
		{"abc", "", false},
		{"12.34.56", "", false},
	}

	for _, tc := range testCases {
		got, ok := ParsePrice(tc.raw)
		if ok != tc.ok {
			t.Errorf("ParsePrice(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}

		want, err := decimal.NewFromString(tc.want)
		if err != nil {
			t.Fatalf("bad expectation %q: %v", tc.want, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParsePrice(%q) = %s, want %s", tc.raw, got, want)
		}
	}
}

func TestParsePriceNegative(t *testing.T) {
	got, ok := ParsePrice("-5.00")
	if !ok {
		t.Fatal("negative values should still parse, callers reject them")
	}
	if got.IsPositive() {
		t.Errorf("ParsePrice(-5.00) = %s, expected a negative value", got)
	}
}
