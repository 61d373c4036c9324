package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"stockscore/internal"
	"stockscore/internal/app"
	"stockscore/internal/logger"
	"stockscore/internal/repository"
	"stockscore/internal/scoring"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	// missing .env is fine, secrets.json is the source of truth
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "stockscore",
		Short: "stockscore - composite attractiveness scoring for equity universes",
		Long: `stockscore refreshes market data for configured ticker universes,
computes composite attractiveness scores, screens for rule matches,
tracks the broad-market trend and publishes AI-annotated top picks.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config json (defaults apply when omitted)")

	rootCmd.AddCommand(newSeedCmd(&configPath))
	rootCmd.AddCommand(newRefreshCmd(&configPath))
	rootCmd.AddCommand(newScoreCmd(&configPath))
	rootCmd.AddCommand(newScreenCmd(&configPath))
	rootCmd.AddCommand(newTrendCmd(&configPath))
	rootCmd.AddCommand(newTopPicksCmd(&configPath))
	rootCmd.AddCommand(newRunCmd(&configPath))

	return rootCmd
}

// deps is everything a command can need, built once per invocation.
type deps struct {
	cfg *app.AppConfig
	db  *sql.DB

	refreshService  app.RefreshService
	scoreService    app.ScoreService
	screenService   app.ScreenService
	trendService    app.TrendService
	topPicksService app.TopPicksService
	seedService     app.SeedService
}

func bootstrap(configPath string) (context.Context, *deps, error) {
	log := logger.New()
	ctx := logger.ToContext(context.Background(), log)

	cfg, err := app.LoadAppConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	universeTickerRepository := repository.NewUniverseTickerRepository(db)
	aiCacheRepository := repository.NewAiCacheRepository(db)
	topPickRepository := repository.NewTopPickRepository(db)
	marketTrendRepository := repository.NewMarketTrendRepository(db)
	screenResultRepository := repository.NewScreenResultRepository(db)
	marketDataRepository := repository.NewMarketDataRepository(cfg.MarketDataRequestsPerSecond)

	var alpacaRepository repository.AlpacaRepository
	if cfg.UseRealtimePrices && secrets.Alpaca.ApiKey != "" {
		alpacaRepository = repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKeys, cfg.GptRequestsPerSecond)
	if err != nil {
		return nil, nil, err
	}

	d := &deps{
		cfg:            cfg,
		db:             db,
		refreshService: app.NewRefreshService(universeTickerRepository, marketDataRepository, alpacaRepository),
		scoreService:   app.NewScoreService(universeTickerRepository, cfg.ScoringConfig()),
		screenService:  app.NewScreenService(universeTickerRepository, screenResultRepository),
		trendService:   app.NewTrendService(marketDataRepository, marketTrendRepository),
		topPicksService: app.NewTopPicksService(
			universeTickerRepository,
			aiCacheRepository,
			topPickRepository,
			gptRepository,
			scoring.NewsDecayPolicy(cfg.DecayPolicy),
			cfg.PicksPerUniverse,
		),
		seedService: app.NewSeedService(universeTickerRepository),
	}

	return ctx, d, nil
}

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [universe] [csv-path]",
		Short: "Load a symbol list csv into a universe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, d, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer d.db.Close()

			count, err := d.seedService.SeedUniverse(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("seeded %d symbols into %s\n", count, args[0])
			return nil
		},
	}
}

func newRefreshCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh [universe...]",
		Short: "Re-fetch market data and indicators for universes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, d, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer d.db.Close()

			universes := args
			if len(universes) == 0 {
				universes = d.cfg.Universes
			}
			for _, universe := range universes {
				summary, err := d.refreshService.Refresh(ctx, universe)
				if err != nil {
					return err
				}
				internal.Pprint(summary)
			}
			return nil
		},
	}
}

func newScoreCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "score [universe...]",
		Short: "Recompute composite scores and categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, d, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer d.db.Close()

			universes := args
			if len(universes) == 0 {
				universes = d.cfg.Universes
			}
			for _, universe := range universes {
				summary, err := d.scoreService.ScoreUniverse(ctx, universe)
				if err != nil {
					return err
				}
				internal.Pprint(summary)
			}
			return nil
		},
	}
}

func newScreenCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "screen",
		Short: "Run the rule screens over all stored tickers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, d, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer d.db.Close()

			summary, err := d.screenService.RunScreens(ctx)
			if err != nil {
				return err
			}
			internal.Pprint(summary)
			return nil
		},
	}
}

func newTrendCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Update the broad-market trend row",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, d, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer d.db.Close()

			trend, err := d.trendService.UpdateTrend(ctx)
			if err != nil {
				return err
			}
			internal.Pprint(trend)
			return nil
		},
	}
}

func newTopPicksCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "top-picks",
		Short: "Rank the best-scored tickers and attach AI analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, d, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer d.db.Close()

			ctx = internal.WithPerformanceProfile(ctx)
			summary, err := d.topPicksService.GenerateTopPicks(ctx)
			if err != nil {
				return err
			}
			internal.Pprint(summary)
			if profile := internal.GetPerformanceProfile(ctx); profile != nil {
				profile.Print()
			}
			return nil
		},
	}
}

func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run all passes on the configured schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, d, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer d.db.Close()

			scheduler, err := app.NewScheduler(
				ctx,
				d.cfg.Schedule,
				d.cfg.Universes,
				d.refreshService,
				d.scoreService,
				d.screenService,
				d.trendService,
				d.topPicksService,
			)
			if err != nil {
				return err
			}

			scheduler.Start()
			defer scheduler.Stop()

			logger.Info("scheduler started, waiting for signals")
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			logger.Info("shutting down")
			return nil
		},
	}
}
