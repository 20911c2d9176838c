package services

import (
	"strings"
	"testing"

	"github.com/laibe/ratio-gang-cli/pkg/models"
)

func TestClassifySymbol(t *testing.T) {
	cases := []struct {
		identifier string
		want       models.AssetClass
	}{
		{"gold", models.AssetClassGold},
		{"Gold", models.AssetClassGold},
		{"AAPL", models.AssetClassStock},
		{"MSFT", models.AssetClassStock},
		{"ethereum", models.AssetClassCrypto},
		{"bitcoin", models.AssetClassCrypto},
		{"FooBar", models.AssetClassUnknown},
		{"", models.AssetClassUnknown},
		// No letters at all: equal to both case foldings, rule order
		// makes them stocks
		{"123", models.AssetClassStock},
		{"---", models.AssetClassStock},
		// Dashes and digits don't break the letter rules
		{"BTC-USD", models.AssetClassStock},
		{"avalanche-2", models.AssetClassCrypto},
	}

	for _, tc := range cases {
		if got := ClassifySymbol(tc.identifier); got != tc.want {
			t.Errorf("ClassifySymbol(%q) = %v, want %v", tc.identifier, got, tc.want)
		}
	}
}

func TestClassifySymbolIdempotent(t *testing.T) {
	for _, id := range []string{"gold", "Gold", "AAPL", "ethereum", "FooBar", ""} {
		first := ClassifySymbol(id)
		if second := ClassifySymbol(id); second != first {
			t.Errorf("ClassifySymbol(%q) not stable: %v then %v", id, first, second)
		}
	}
}

func TestClassifySymbolCaseFolding(t *testing.T) {
	for _, word := range []string{"tesla", "solana", "cardano"} {
		if got := ClassifySymbol(strings.ToUpper(word)); got != models.AssetClassStock {
			t.Errorf("ClassifySymbol(%q) = %v, want stock", strings.ToUpper(word), got)
		}
		if got := ClassifySymbol(strings.ToLower(word)); got != models.AssetClassCrypto {
			t.Errorf("ClassifySymbol(%q) = %v, want crypto", strings.ToLower(word), got)
		}
	}
}
