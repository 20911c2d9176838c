package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/laibe/ratio-gang-cli/internal/external"
	"github.com/laibe/ratio-gang-cli/pkg/models"
)

// MarketCapService resolves asset identifiers to their USD market
// capitalization using the provider matching each identifier's asset class
type MarketCapService struct {
	polygon   *external.PolygonClient
	coingecko *external.CoinGeckoClient
	logger    *logrus.Entry
}

// NewMarketCapService creates a new market cap service
func NewMarketCapService(polygon *external.PolygonClient, coingecko *external.CoinGeckoClient, log *logrus.Logger) *MarketCapService {
	return &MarketCapService{
		polygon:   polygon,
		coingecko: coingecko,
		logger:    log.WithField("component", "market-cap"),
	}
}

// MarketCap dispatches on the identifier's asset class. Unknown identifiers
// fail before any network call is made.
func (s *MarketCapService) MarketCap(ctx context.Context, identifier string, aboveGroundTonnes float64) (float64, error) {
	class := ClassifySymbol(identifier)

	s.logger.WithFields(logrus.Fields{
		"asset": identifier,
		"class": class,
	}).Debug("Resolving market cap")

	switch class {
	case models.AssetClassGold:
		return s.polygon.GoldMarketCap(ctx, aboveGroundTonnes)
	case models.AssetClassStock:
		return s.polygon.StockMarketCap(ctx, identifier)
	case models.AssetClassCrypto:
		return s.coingecko.CryptoMarketCap(ctx, identifier)
	default:
		return 0, &models.UnknownAssetError{Asset: identifier}
	}
}
