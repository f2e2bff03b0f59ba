package handlers

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"

	"github.com/insightai/site/internal/model"
	"github.com/insightai/site/internal/service"
	"github.com/insightai/site/internal/templates"
)

// PlatformLegalHandler serves /:locale/:page for the company-wide documents
func PlatformLegalHandler(loader *service.Loader, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale, ok := model.ParseLocale(c.Params("locale"))
		if !ok {
			return notFound(c, model.DefaultLocale, nil)
		}

		slug := c.Params("page")
		if !service.IsPlatformLegalPage(slug) {
			return notFound(c, locale, nil)
		}

		page, err := loader.LegalPage(c.UserContext(), locale, nil, model.LegalPageSlug(slug))
		if err != nil {
			return renderError(c, logger, locale, err)
		}

		handler := adaptor.HTTPHandler(templ.Handler(templates.LegalPage(page)))
		return handler(c)
	}
}

// ProductLegalHandler serves /:locale/:product/:legal
func ProductLegalHandler(loader *service.Loader, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale, ok := model.ParseLocale(c.Params("locale"))
		if !ok {
			return notFound(c, model.DefaultLocale, nil)
		}

		product, ok := service.GetProduct(c.Params("product"))
		if !ok || !product.Active {
			return notFound(c, locale, nil)
		}

		slug := c.Params("legal")
		if !service.IsValidLegalPage(slug) || !product.HasLegalPage(model.LegalPageSlug(slug)) {
			return notFound(c, locale, nil)
		}

		page, err := loader.LegalPage(c.UserContext(), locale, product, model.LegalPageSlug(slug))
		if err != nil {
			return renderError(c, logger, locale, err)
		}

		handler := adaptor.HTTPHandler(templ.Handler(templates.LegalPage(page)))
		return handler(c)
	}
}
