// coinwatch - a CLI for real-time cryptocurrency market data.
//
// Main CLI entrypoint using the cobra command framework.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/seenimoa/coinwatch/internal/cli"
	"github.com/seenimoa/coinwatch/internal/config"
	"github.com/seenimoa/coinwatch/internal/infra"
	"github.com/seenimoa/coinwatch/internal/provider"
	"github.com/seenimoa/coinwatch/internal/providers/coinpaprika"
	"github.com/seenimoa/coinwatch/internal/providers/rssnews"
	"github.com/seenimoa/coinwatch/internal/render"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	cfg *config.Config
	app *cli.App
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinwatch",
	Short: "coinwatch - cryptocurrency market data from the command line",
	Long: `coinwatch fetches real-time cryptocurrency data from coinpaprika:
coin listings, per-coin details, prices in any quoted currency, coin
comparisons, and crypto market news.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		setupLogging(cfg.Logging)

		app = cli.New(buildRegistry(cfg), os.Stdout)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		render.Banner(os.Stdout)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCoinsCmd)
	rootCmd.AddCommand(coinDetailsCmd)
	rootCmd.AddCommand(coinPriceCmd)
	rootCmd.AddCommand(compareCoinsCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(statusCmd)
}

// setupLogging configures the global zerolog logger.
func setupLogging(c config.LoggingConfig) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// buildRegistry wires all data providers from the loaded config.
func buildRegistry(cfg *config.Config) *provider.Registry {
	reg := provider.NewRegistry()

	cp := coinpaprika.New(
		coinpaprika.WithBaseURL(cfg.API.BaseURL),
		coinpaprika.WithHTTPClient(infra.NewHTTPClient(cfg.API.Timeout())),
	)
	if err := cp.Init(map[string]string{"api_key": cfg.API.Key}); err != nil {
		log.Warn().Err(err).Msg("coinpaprika credentials rejected")
	}
	if err := reg.Register(cp); err != nil {
		log.Error().Err(err).Msg("failed to register coinpaprika provider")
	}

	var newsOpts []rssnews.Option
	if len(cfg.News.Feeds) > 0 {
		sources := make([]rssnews.Source, 0, len(cfg.News.Feeds))
		for _, f := range cfg.News.Feeds {
			sources = append(sources, rssnews.Source{Name: f.Name, URL: f.URL})
		}
		newsOpts = append(newsOpts, rssnews.WithSources(sources))
	}
	if err := reg.Register(rssnews.New(newsOpts...)); err != nil {
		log.Error().Err(err).Msg("failed to register rssnews provider")
	}

	return reg
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("coinwatch %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Market Data Commands ---

var listCoinsCmd = &cobra.Command{
	Use:   "list-coins",
	Short: "Show a list of all coins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.ListCoins(cmd.Context())
	},
}

var coinDetailsCmd = &cobra.Command{
	Use:   "coin-details <coin_id>",
	Short: "Show details for a specific coin",
	Long:  "Show name, symbol, description, and rank for a coin, e.g., btc-bitcoin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.CoinDetails(cmd.Context(), args[0])
	},
}

var coinPriceCmd = &cobra.Command{
	Use:   "coin-price <coin_id> <target_currency>",
	Short: "Get the price of a coin in a target currency",
	Long: `Get the current price of a coin in a target currency, e.g.:

  coinwatch coin-price btc-bitcoin usd
  coinwatch coin-price eth-ethereum btc

A currency the exchange does not quote prints a notice and exits
successfully.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.CoinPrice(cmd.Context(), args[0], args[1])
	},
}

var compareCoinsCmd = &cobra.Command{
	Use:   "compare-coins <coin1_id> <coin2_id> <target_currency>",
	Short: "Compare the prices of two coins in a target currency",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.CompareCoins(cmd.Context(), args[0], args[1], args[2])
	},
}

// --- News Command ---

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show crypto market news",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return app.News(cmd.Context(), limit)
	},
}

func init() {
	newsCmd.Flags().Int("limit", 15, "max articles to show (0 = all)")
}

// --- Providers Command ---

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered data providers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Providers()
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and provider health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("coinwatch %s (%s)\n", version, commit)
		fmt.Printf("  API:     %s\n", cfg.API.BaseURL)

		for _, k := range config.CheckAPIKeys(cfg) {
			state := "not set (free tier)"
			if k.IsSet {
				state = fmt.Sprintf("set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("  %s: %s\n", k.Name, state)
		}
		fmt.Println()

		return app.Status(cmd.Context())
	},
}
