package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/insightai/site/internal/model"
	"github.com/insightai/site/internal/service"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check locale catalogs for unknown placeholders",
	Long: `Validate reads every supported locale's raw message catalog and reports
each {{placeholder}} whose key is not defined by the company registry.

It exits with a non-zero status when any unknown placeholder is found.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	source, closeSource, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer closeSource()

	loader := newLoader(source)
	placeholders := loader.Injector().Placeholders()

	total := 0
	for _, locale := range model.Locales {
		raw, err := loader.LoadRaw(ctx, locale)
		if err != nil {
			logger.Error("Failed to read locale", zap.String("locale", string(locale)), zap.Error(err))
			return err
		}

		findings := service.Validate(raw, placeholders)
		for _, f := range findings {
			logger.Warn("Unknown placeholder",
				zap.String("locale", string(locale)),
				zap.String("path", f.Path),
				zap.String("key", f.Key))
		}
		logger.Info("Validated locale",
			zap.String("locale", string(locale)),
			zap.Int("placeholders_used", len(service.UsedKeys(raw))),
			zap.Int("unknown", len(findings)))
		total += len(findings)
	}

	if total > 0 {
		return fmt.Errorf("found %d unknown placeholder(s)", total)
	}
	return nil
}
