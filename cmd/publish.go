package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/insightai/site/internal/locales"
	"github.com/insightai/site/internal/model"
	"github.com/insightai/site/internal/service"
	"github.com/insightai/site/internal/store"
)

var publishFromDir string
var publishLocale string

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish locale catalogs to the database",
	Long: `Publish copies raw locale message catalogs into the locale_messages table
so servers running with MESSAGE_SOURCE=postgres pick them up.

Catalogs are checksummed and only rewritten when they changed.

Examples:
  # Publish the catalogs built into the binary
  site publish

  # Publish edited catalogs from disk
  site publish --from-dir ./internal/locales

  # Publish a single locale
  site publish --locale vi`,
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVar(&publishFromDir, "from-dir", "", "Read catalogs from this directory instead of the embedded copies")
	publishCmd.Flags().StringVarP(&publishLocale, "locale", "l", "", "Publish only this locale")
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	targets := model.Locales
	if publishLocale != "" {
		locale, ok := model.ParseLocale(publishLocale)
		if !ok {
			return fmt.Errorf("%w: %q", service.ErrUnsupportedLocale, publishLocale)
		}
		targets = []model.Locale{locale}
	}

	var source service.MessageSource = store.NewFSSource(locales.FS)
	if publishFromDir != "" {
		source = store.NewDirSource(publishFromDir)
	}

	logger.Info("Connecting to database",
		zap.Int("locales", len(targets)),
		zap.Bool("from_dir", publishFromDir != ""))
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	publisher := service.NewPublisher(source, store.NewMessageStore(db), logger)
	stats, err := publisher.Publish(ctx, targets)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("Publish cancelled")
		}
		logger.Error("Publish failed", zap.Error(err))
		return err
	}
	publisher.PrintSummary(stats)

	if stats.Failed > 0 {
		return fmt.Errorf("%d locale(s) failed to publish", stats.Failed)
	}
	return nil
}
