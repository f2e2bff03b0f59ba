package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/insightai/site/internal/config"
	"github.com/insightai/site/internal/handlers"
	"github.com/insightai/site/internal/model"
	"github.com/insightai/site/internal/store"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website server",
	Long:  `Start the web server that renders localized pages and serves resolved message catalogs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The flag wins only when it was given explicitly
		if !cmd.Flags().Changed("port") {
			port = cfg.Port
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		source, closeSource, err := openSource(ctx)
		if err != nil {
			logger.Error("Failed to open message source", zap.Error(err))
			return err
		}
		defer closeSource()

		loader := newLoader(source)
		if cfg.CacheMessages {
			if err := loader.Preload(ctx); err != nil {
				logger.Error("Failed to preload locale messages", zap.Error(err))
				return err
			}
		}

		if cfg.MessageSource == config.SourceDir && cfg.CacheMessages {
			watcher, err := store.NewDirWatcher(cfg.MessagesDir, func(locale model.Locale) {
				loader.Invalidate(locale)
				logger.Info("Reloaded locale messages", zap.String("locale", string(locale)))
			}, logger)
			if err != nil {
				logger.Warn("Live reload disabled", zap.Error(err))
			} else {
				go watcher.Run(ctx)
			}
		}

		app := fiber.New(fiber.Config{
			AppName: "Insight AI Site",
		})

		app.Use(fiberlogger.New())

		handlers.Register(app, loader, cfg.BaseURL, logger)

		go func() {
			<-ctx.Done()
			logger.Info("Shutting down server")
			if err := app.Shutdown(); err != nil {
				logger.Error("Failed to shut down server", zap.Error(err))
			}
		}()

		logger.Info("Starting server", zap.String("port", port))
		if err := app.Listen(":" + port); err != nil {
			logger.Error("Failed to start server", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}
