package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/insightai/site/internal/config"
	"github.com/insightai/site/internal/locales"
	"github.com/insightai/site/internal/service"
	"github.com/insightai/site/internal/store"
)

var (
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "site",
	Short: "Insight AI website content service",
	Long: `site serves and exports the localized content of the Insight AI website.

Locale message catalogs are loaded, company contact and legal details are
injected into their {{placeholder}} tokens, and the result is served over
HTTP, exported as static files, or checked for unknown placeholders.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		zapConfig := zap.NewProductionConfig()
		if verbose || cfg.LogLevel == "debug" {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// openSource returns the configured message source. The returned close
// function releases any database connection.
func openSource(ctx context.Context) (service.MessageSource, func(), error) {
	switch cfg.MessageSource {
	case config.SourceDir:
		logger.Info("Reading messages from directory", zap.String("dir", cfg.MessagesDir))
		return store.NewDirSource(cfg.MessagesDir), func() {}, nil

	case config.SourcePostgres:
		logger.Info("Reading messages from database")
		db, err := openDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		return store.NewMessageStore(db), func() { db.Close() }, nil

	default:
		return store.NewFSSource(locales.FS), func() {}, nil
	}
}

func openDB(ctx context.Context) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := store.NewMessageStore(db).EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func newLoader(source service.MessageSource) *service.Loader {
	injector := service.NewInjector(service.BuildPlaceholders(service.DefaultCompany()))
	return service.NewLoader(source, injector, logger, cfg.CacheMessages)
}
