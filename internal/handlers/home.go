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

// RootRedirectHandler sends visitors of "/" to their preferred locale
func RootRedirectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale := model.MatchLocale(c.Get(fiber.HeaderAcceptLanguage))
		return c.Redirect("/"+string(locale)+"/", fiber.StatusFound)
	}
}

// HomeHandler renders the landing page for /:locale
func HomeHandler(loader *service.Loader, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale, ok := model.ParseLocale(c.Params("locale"))
		if !ok {
			return notFound(c, model.DefaultLocale, nil)
		}

		tree, err := loader.Load(c.UserContext(), locale)
		if err != nil {
			return renderError(c, logger, locale, err)
		}

		page := templates.SitePage(&service.SitePage{
			Kind:      service.PageHome,
			Locale:    locale,
			Messages:  tree,
			Copyright: service.CopyrightText(service.DefaultCompany(), locale, 0),
		})
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}
