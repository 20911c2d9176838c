package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/laibe/ratio-gang-cli/internal/external"
	"github.com/laibe/ratio-gang-cli/internal/ratio"
	"github.com/laibe/ratio-gang-cli/internal/services"
	"github.com/laibe/ratio-gang-cli/pkg/config"
	"github.com/laibe/ratio-gang-cli/pkg/logger"
	"github.com/laibe/ratio-gang-cli/pkg/models"
)

var (
	aboveGround float64
	plainOutput bool
	jsonOutput  bool
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ratio-gang [asset_a] [asset_b]",
	Short: "Compare market caps between crypto, stocks and gold",
	Long: `Compare market caps between crypto, stocks and gold by calculating their ratio.

The smaller market cap is divided by the larger one, so the ratio always
lands between 0 and 1. Asset identifiers are classified by shape:
  gold / Gold      physical gold (Polygon previous close of C:XAUUSD)
  ALL UPPERCASE    stock ticker symbol on Polygon, e.g. AAPL
  all lowercase    CoinGecko coin id, e.g. ethereum

Requires https://polygon.io and https://coingecko.com API keys in the
POLYGON_KEY and COINGECKO_KEY environment variables (a .env file works too).

Examples:
  ratio-gang                      # ethereum vs bitcoin
  ratio-gang AAPL gold            # Apple vs all above-ground gold
  ratio-gang ethereum bitcoin -p  # plain "numerator denominator percentage"
  ratio-gang MSFT ethereum -j     # json report`,
	Version:      "1.0.0",
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	RunE:         runCompare,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().Float64Var(&aboveGround, "above-ground", models.DefaultAboveGroundTonnes, "Estimated above-ground stock of gold in tonnes")
	rootCmd.Flags().BoolVarP(&plainOutput, "plain", "p", false, "Return 'numerator-asset denominator-asset percentage', e.g. 'AAPL gold 17'")
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Return json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func runCompare(cmd *cobra.Command, args []string) error {
	if aboveGround <= 0 {
		return fmt.Errorf("--above-ground must be a positive number of tonnes, got %v", aboveGround)
	}

	assetA, assetB := "ethereum", "bitcoin"
	if len(args) > 0 {
		assetA = args[0]
	}
	if len(args) > 1 {
		assetB = args[1]
	}

	// .env is a convenience; the process environment always wins
	_ = config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// One shared client owns the connection pool for both provider calls
	httpClient := &http.Client{Timeout: 30 * time.Second}
	polygon := external.NewPolygonClient(httpClient, cfg.PolygonURL, cfg.PolygonKey, log)
	coingecko := external.NewCoinGeckoClient(httpClient, cfg.CoinGeckoURL, cfg.CoinGeckoKey, log)
	svc := services.NewMarketCapService(polygon, coingecko, log)

	ctx := cmd.Context()

	// Sequential on purpose: a failure on the first asset skips the second
	// request entirely
	capA, err := svc.MarketCap(ctx, assetA, aboveGround)
	if err != nil {
		return err
	}
	capB, err := svc.MarketCap(ctx, assetB, aboveGround)
	if err != nil {
		return err
	}

	cmp := ratio.Compare(assetA, capA, assetB, capB)

	mode := ratio.ModeGauge
	switch {
	case plainOutput:
		mode = ratio.ModePlain
	case jsonOutput:
		mode = ratio.ModeJSON
	}

	return ratio.Render(cmd.OutOrStdout(), cmp, mode)
}
