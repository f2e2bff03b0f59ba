package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/insightai/site/internal/service"
)

// Register mounts every site route on app
func Register(app *fiber.App, loader *service.Loader, baseURL string, logger *zap.Logger) {
	app.Get("/", RootRedirectHandler())
	app.Get("/sitemap.xml", SitemapHandler(baseURL))

	// Locale routes; messages.json must come before the :page wildcard
	app.Get("/:locale", HomeHandler(loader, logger))
	app.Get("/:locale/messages.json", MessagesHandler(loader, logger))
	app.Get("/:locale/:page", PageHandler(loader, logger))
	app.Get("/:locale/:product/:legal", ProductLegalHandler(loader, logger))
}
