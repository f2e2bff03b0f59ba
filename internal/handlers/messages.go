package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"

	"github.com/insightai/site/internal/model"
	"github.com/insightai/site/internal/service"
	"github.com/insightai/site/internal/templates"
)

// MessagesHandler serves the resolved message tree for a locale as JSON
func MessagesHandler(loader *service.Loader, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale, ok := model.ParseLocale(c.Params("locale"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unsupported locale"})
		}

		tree, err := loader.Load(c.UserContext(), locale)
		if err != nil {
			if service.IsNotFound(err) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "messages not found"})
			}
			logger.Error("Error loading messages", zap.String("locale", string(locale)), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error loading messages"})
		}

		return c.JSON(tree)
	}
}

// SitemapHandler serves sitemap.xml
func SitemapHandler(baseURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := service.WriteSitemap(&buf, service.BuildSitemap(baseURL, time.Now())); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Error building sitemap")
		}
		c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		return c.Send(buf.Bytes())
	}
}

func notFound(c *fiber.Ctx, locale model.Locale, messages any) error {
	page := templates.NotFound(locale, messages)
	handler := adaptor.HTTPHandler(templ.Handler(page, templ.WithStatus(http.StatusNotFound)))
	return handler(c)
}

func renderError(c *fiber.Ctx, logger *zap.Logger, locale model.Locale, err error) error {
	if service.IsNotFound(err) {
		return notFound(c, locale, nil)
	}
	logger.Error("Error rendering page",
		zap.String("path", c.Path()),
		zap.String("locale", string(locale)),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).SendString("Error loading page")
}
