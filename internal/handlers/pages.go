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

// PageHandler serves /:locale/:page. The segment names a static page, a
// product or a platform legal document, checked in that order.
func PageHandler(loader *service.Loader, logger *zap.Logger) fiber.Handler {
	legal := PlatformLegalHandler(loader, logger)

	return func(c *fiber.Ctx) error {
		locale, ok := model.ParseLocale(c.Params("locale"))
		if !ok {
			return notFound(c, model.DefaultLocale, nil)
		}

		name := c.Params("page")
		product, isProduct := service.GetProduct(name)
		if name != "about" && name != "contact" && !(isProduct && product.Active) {
			return legal(c)
		}

		tree, err := loader.Load(c.UserContext(), locale)
		if err != nil {
			return renderError(c, logger, locale, err)
		}

		page := &service.SitePage{
			Kind:      service.PageKind(name),
			Locale:    locale,
			Messages:  tree,
			Copyright: service.CopyrightText(service.DefaultCompany(), locale, 0),
		}
		if isProduct {
			page.Kind = service.PageProduct
			page.Product = product
		}

		handler := adaptor.HTTPHandler(templ.Handler(templates.SitePage(page)))
		return handler(c)
	}
}
