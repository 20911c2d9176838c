package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/laibe/ratio-gang-cli/pkg/models"
)

// goldTicker is Polygon's forex pair for spot gold in USD
const goldTicker = "XAUUSD"

// PolygonClient handles Polygon.io API interactions for stocks and forex
type PolygonClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Entry
}

// TickerDetails is the load-bearing slice of Polygon's v3 ticker details
// response. Everything else in the payload decodes loosely and is ignored.
// MarketCap is a pointer so its absence is distinguishable from zero.
type TickerDetails struct {
	Results struct {
		Ticker    string   `json:"ticker"`
		Name      string   `json:"name"`
		MarketCap *float64 `json:"market_cap"`
	} `json:"results"`
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

// PrevAggs is Polygon's v2 previous-aggregate response; only the close
// price of the first candle is used.
type PrevAggs struct {
	Ticker  string `json:"ticker"`
	Results []struct {
		Close *float64 `json:"c"`
	} `json:"results"`
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

// polygonError is the payload Polygon returns on non-2xx statuses
type polygonError struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

// NewPolygonClient creates a new Polygon client. The HTTP client is shared
// with the other providers so one connection pool serves the whole run.
func NewPolygonClient(httpClient *http.Client, baseURL, apiKey string, log *logrus.Logger) *PolygonClient {
	return &PolygonClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     log.WithField("component", "polygon"),
	}
}

// TickerDetailsURL builds the v3 reference ticker details URL for a stock
// symbol. The symbol is interpolated into the path verbatim, so it must be
// URL-safe.
func (c *PolygonClient) TickerDetailsURL(symbol string) (string, error) {
	u, err := url.Parse(fmt.Sprintf("%s/v3/reference/tickers/%s", c.baseURL, symbol))
	if err != nil {
		return "", &models.InvalidURLError{Err: err}
	}
	u.RawQuery = encodeQuery([2]string{"apiKey", c.apiKey})
	return u.String(), nil
}

// PrevAggsURL builds the v2 previous-aggregate URL for a forex pair. The
// C: prefix is Polygon's currency-pair convention.
func (c *PolygonClient) PrevAggsURL(forexTicker string) (string, error) {
	u, err := url.Parse(fmt.Sprintf("%s/v2/aggs/ticker/C:%s/prev", c.baseURL, forexTicker))
	if err != nil {
		return "", &models.InvalidURLError{Err: err}
	}
	u.RawQuery = encodeQuery([2]string{"apiKey", c.apiKey})
	return u.String(), nil
}

// StockMarketCap returns the USD market capitalization for a stock symbol
func (c *PolygonClient) StockMarketCap(ctx context.Context, symbol string) (float64, error) {
	reqURL, err := c.TickerDetailsURL(symbol)
	if err != nil {
		return 0, err
	}

	body, status, err := doGet(ctx, c.httpClient, reqURL, nil)
	if err != nil {
		return 0, err
	}
	if !isSuccess(status) {
		return 0, decodePolygonError(body, status)
	}

	var details TickerDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return 0, &models.DeserializationError{Reason: err.Error(), Asset: symbol}
	}
	if details.Results.MarketCap == nil {
		return 0, &models.DeserializationError{Reason: "missing results.market_cap", Asset: symbol}
	}

	mcap := *details.Results.MarketCap
	c.logger.WithFields(logrus.Fields{
		"symbol":     symbol,
		"market_cap": mcap,
	}).Debug("Fetched stock market cap")

	return mcap, nil
}

// GoldMarketCap returns the USD market capitalization of all above-ground
// gold: Polygon's previous close for C:XAUUSD times the above-ground stock
// in tonnes times the tonne-to-troy-ounce factor.
func (c *PolygonClient) GoldMarketCap(ctx context.Context, aboveGroundTonnes float64) (float64, error) {
	reqURL, err := c.PrevAggsURL(goldTicker)
	if err != nil {
		return 0, err
	}

	body, status, err := doGet(ctx, c.httpClient, reqURL, nil)
	if err != nil {
		return 0, err
	}
	if !isSuccess(status) {
		return 0, decodePolygonError(body, status)
	}

	var aggs PrevAggs
	if err := json.Unmarshal(body, &aggs); err != nil {
		return 0, &models.DeserializationError{Reason: err.Error(), Asset: goldTicker}
	}
	if len(aggs.Results) == 0 || aggs.Results[0].Close == nil {
		return 0, &models.DeserializationError{Reason: "missing results[0].c", Asset: goldTicker}
	}

	mcap := *aggs.Results[0].Close * aboveGroundTonnes * models.TonneToOunce
	c.logger.WithFields(logrus.Fields{
		"close":      *aggs.Results[0].Close,
		"tonnes":     aboveGroundTonnes,
		"market_cap": mcap,
	}).Debug("Computed gold market cap")

	return mcap, nil
}

// decodePolygonError maps a non-2xx body onto Polygon's error schema,
// falling back to the bare status code when the body is something else
// entirely.
func decodePolygonError(body []byte, status int) error {
	var perr polygonError
	if err := json.Unmarshal(body, &perr); err != nil || perr.Message == "" {
		return &models.UnexpectedStatusError{StatusCode: status}
	}
	return &models.PolygonAPIError{Message: perr.Message}
}
