package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/laibe/ratio-gang-cli/pkg/models"
)

// userAgent identifies us to CoinGecko, which rejects anonymous requests
const userAgent = "ratio-gang-cli"

// CoinGeckoClient handles CoinGecko API interactions
type CoinGeckoClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Entry
}

// CoinMarket is one row of CoinGecko's /coins/markets response. Only the
// market cap is load-bearing; the rest of the payload decodes loosely.
type CoinMarket struct {
	ID           string   `json:"id"`
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	CurrentPrice float64  `json:"current_price"`
	MarketCap    *float64 `json:"market_cap"`
}

// NewCoinGeckoClient creates a new CoinGecko client sharing the given HTTP
// client with the other providers.
func NewCoinGeckoClient(httpClient *http.Client, baseURL, apiKey string, log *logrus.Logger) *CoinGeckoClient {
	return &CoinGeckoClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     log.WithField("component", "coingecko"),
	}
}

// MarketsURL builds the /coins/markets query for a single coin id.
// Parameter order is fixed: vs_currency, ids, x_cg_key.
func (c *CoinGeckoClient) MarketsURL(coinID string) (string, error) {
	u, err := url.Parse(c.baseURL + "/api/v3/coins/markets")
	if err != nil {
		return "", &models.InvalidURLError{Err: err}
	}
	u.RawQuery = encodeQuery(
		[2]string{"vs_currency", "usd"},
		[2]string{"ids", coinID},
		[2]string{"x_cg_key", c.apiKey},
	)
	return u.String(), nil
}

// CryptoMarketCap returns the USD market capitalization for a CoinGecko
// coin id. CoinGecko answers 200 with a literal "[]" body for unknown ids,
// which is surfaced as a provider error rather than a decode failure.
func (c *CoinGeckoClient) CryptoMarketCap(ctx context.Context, coinID string) (float64, error) {
	reqURL, err := c.MarketsURL(coinID)
	if err != nil {
		return 0, err
	}

	body, status, err := doGet(ctx, c.httpClient, reqURL, map[string]string{"User-Agent": userAgent})
	if err != nil {
		return 0, err
	}
	if !isSuccess(status) {
		return 0, &models.CoinGeckoAPIError{Body: string(body)}
	}
	if string(body) == "[]" {
		return 0, &models.CoinGeckoAPIError{Body: string(body)}
	}

	var markets []CoinMarket
	if err := json.Unmarshal(body, &markets); err != nil {
		return 0, &models.DeserializationError{Reason: err.Error(), Asset: coinID}
	}
	if len(markets) == 0 || markets[0].MarketCap == nil {
		return 0, &models.DeserializationError{Reason: "missing [0].market_cap", Asset: coinID}
	}

	mcap := *markets[0].MarketCap
	c.logger.WithFields(logrus.Fields{
		"coin_id":    coinID,
		"market_cap": mcap,
	}).Debug("Fetched crypto market cap")

	return mcap, nil
}
