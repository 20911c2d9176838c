package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/laibe/ratio-gang-cli/internal/external"
	"github.com/laibe/ratio-gang-cli/pkg/models"
)

func newTestService(t *testing.T) (*MarketCapService, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v3/reference/tickers/AAPL", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","request_id":"a","results":{"ticker":"AAPL","market_cap":3387025599490}}`))
	})
	mux.HandleFunc("/v2/aggs/ticker/C:XAUUSD/prev", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ticker":"C:XAUUSD","results":[{"c":2559.15}],"status":"OK","request_id":"b"}`))
	})
	mux.HandleFunc("/api/v3/coins/markets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"ethereum","market_cap":292802217292}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	polygon := external.NewPolygonClient(http.DefaultClient, srv.URL, "key", log)
	coingecko := external.NewCoinGeckoClient(http.DefaultClient, srv.URL, "key", log)
	return NewMarketCapService(polygon, coingecko, log), srv
}

func TestMarketCapDispatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	stock, err := svc.MarketCap(ctx, "AAPL", models.DefaultAboveGroundTonnes)
	if err != nil {
		t.Fatalf("stock: unexpected error: %v", err)
	}
	if stock != 3387025599490 {
		t.Fatalf("stock market cap mismatch: %v", stock)
	}

	crypto, err := svc.MarketCap(ctx, "ethereum", models.DefaultAboveGroundTonnes)
	if err != nil {
		t.Fatalf("crypto: unexpected error: %v", err)
	}
	if crypto != 292802217292 {
		t.Fatalf("crypto market cap mismatch: %v", crypto)
	}

	gold, err := svc.MarketCap(ctx, "gold", models.DefaultAboveGroundTonnes)
	if err != nil {
		t.Fatalf("gold: unexpected error: %v", err)
	}
	want := 2559.15 * models.DefaultAboveGroundTonnes * models.TonneToOunce
	if gold != want {
		t.Fatalf("gold market cap mismatch: got %v, want %v", gold, want)
	}
}

func TestMarketCapUnknownAssetSkipsNetwork(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	// Point both clients at a server that fails the test if it is hit
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request for unknown asset: %s", r.URL.Path)
	}))
	defer srv.Close()

	polygon := external.NewPolygonClient(http.DefaultClient, srv.URL, "key", log)
	coingecko := external.NewCoinGeckoClient(http.DefaultClient, srv.URL, "key", log)
	svc := NewMarketCapService(polygon, coingecko, log)

	_, err := svc.MarketCap(context.Background(), "FooBar", models.DefaultAboveGroundTonnes)
	var unknownErr *models.UnknownAssetError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownAssetError, got %v", err)
	}
	if unknownErr.Asset != "FooBar" {
		t.Fatalf("asset mismatch: %q", unknownErr.Asset)
	}
}
