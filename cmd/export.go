package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/insightai/site/internal/service"
	"github.com/insightai/site/internal/templates"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export resolved content for static hosting",
	Long: `Export writes every locale's resolved message catalog, every legal page
and sitemap.xml to a directory, using the trailing-slash layout expected by
static hosts.

Examples:
  # Export to ./out
  site export

  # Export somewhere else
  site export --out /tmp/site`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "out", "Directory to write exported files to")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	source, closeSource, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer closeSource()

	exporter := service.NewExporter(newLoader(source), templates.NewRenderer(), cfg.BaseURL, logger)

	logger.Info("Starting export", zap.String("out", exportDir))
	stats, err := exporter.Export(ctx, exportDir)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("Export cancelled")
		}
		logger.Error("Export failed", zap.Error(err))
		return err
	}

	logger.Info("Export complete",
		zap.Int("locales", stats.Locales),
		zap.Int("pages", stats.Pages),
		zap.Int("skipped", stats.Skipped))
	return nil
}
