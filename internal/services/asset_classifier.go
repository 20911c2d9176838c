package services

import (
	"strings"

	"github.com/laibe/ratio-gang-cli/pkg/models"
)

// ClassifySymbol determines the asset class of a user-supplied identifier by
// lexical shape: "gold" and "Gold" are the gold commodity, all-uppercase
// identifiers are stock ticker symbols, all-lowercase identifiers are
// CoinGecko coin ids, and anything mixed-case is unknown.
//
// Rules apply in that order. Identifiers without any letter (digits,
// punctuation) equal both their upper- and lowercase forms and therefore
// classify as stocks; the provider rejects them downstream.
func ClassifySymbol(identifier string) models.AssetClass {
	switch {
	case identifier == "":
		return models.AssetClassUnknown
	case identifier == "gold" || identifier == "Gold":
		return models.AssetClassGold
	case identifier == strings.ToUpper(identifier):
		return models.AssetClassStock
	case identifier == strings.ToLower(identifier):
		return models.AssetClassCrypto
	default:
		return models.AssetClassUnknown
	}
}
