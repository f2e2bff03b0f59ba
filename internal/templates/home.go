package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/insightai/site/internal/model"
	"github.com/insightai/site/internal/service"
)

// HomeData is the view model for a locale's landing page
type HomeData struct {
	Locale    model.Locale
	Messages  any
	Products  []*model.Product
	Contact   model.ContactInfo
	Copyright string
}

// Home renders the landing page with the product list and contact block
func Home(data HomeData) templ.Component {
	locale := string(data.Locale)

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw("<section class=\"hero\"><h1>")
		h.text(message(data.Messages, "home.hero.title", ""))
		h.raw("</h1><p>")
		h.text(message(data.Messages, "home.hero.subtitle", ""))
		h.raw("</p></section>")

		h.raw("<section class=\"products\"><h2>")
		h.text(message(data.Messages, "home.products.title", "Products"))
		h.raw("</h2><ul>")
		for _, p := range data.Products {
			h.raw("<li><a")
			h.attr("href", "/"+locale+"/"+string(p.ID)+"/")
			h.raw(">")
			h.text(p.Icon + " " + p.Name)
			h.raw("</a> <span>")
			h.text(p.Tagline)
			h.raw("</span></li>")
		}
		h.raw("</ul></section>")

		h.raw("<section class=\"contact\"><h2>")
		h.text(message(data.Messages, "contact.title", "Contact"))
		h.raw("</h2><p><a")
		h.attr("href", data.Contact.EmailHref)
		h.raw(">")
		h.text(data.Contact.Email)
		h.raw("</a></p><p>")
		h.text(data.Contact.Location)
		h.raw("</p></section>")

		h.raw("<nav class=\"legal-links\">")
		for _, slug := range service.PlatformLegalPages {
			h.raw("<a")
			h.attr("href", "/"+locale+"/"+string(slug)+"/")
			h.raw(">")
			h.text(message(data.Messages, "common.legal."+string(slug), string(slug)))
			h.raw("</a> ")
		}
		h.raw("</nav>")
		return h.err
	})

	return Layout(PageMeta{
		Title:       message(data.Messages, "home.meta.title", service.DefaultCompany().Name),
		Description: message(data.Messages, "home.meta.description", ""),
		Locale:      data.Locale,
		Path:        "/",
		Copyright:   data.Copyright,
	}, body)
}

// NotFound renders the 404 page
func NotFound(locale model.Locale, messages any) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<section class=\"not-found\"><h1>")
		h.text(message(messages, "common.notFound", "Page not found"))
		h.raw("</h1><a")
		h.attr("href", "/"+string(locale)+"/")
		h.raw(">")
		h.text(message(messages, "common.backToHome", "Back to Home"))
		h.raw("</a></section>")
		return h.err
	})

	return Layout(PageMeta{
		Title:     message(messages, "common.notFound", "Page not found"),
		Locale:    locale,
		Path:      "/",
		Copyright: service.CopyrightText(service.DefaultCompany(), locale, 0),
	}, body)
}
