package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/insightai/site/internal/service"
)

// LegalPage renders a legal document. Section text may carry [label](url) links.
func LegalPage(page *service.LegalPage) templ.Component {
	doc := page.Document
	locale := string(page.Locale)

	title := doc.MetaTitle
	backHref := "/" + locale + "/"
	backLabel := message(page.Messages, "common.backToHome", "Back to Home")
	if page.Product != nil {
		title = title + " - " + page.Product.Name
		backHref = "/" + locale + "/" + string(page.Product.ID) + "/"
		backLabel = backLabel + " / " + page.Product.Name
	}

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw("<section class=\"legal-header\"><a")
		h.attr("href", backHref)
		h.raw(">")
		h.text(backLabel)
		h.raw("</a><h1>")
		h.text(doc.MetaTitle)
		h.raw("</h1>")
		if doc.Date != "" {
			h.raw("<p class=\"legal-date\">")
			h.text(message(page.Messages, "common.lastUpdated", "Last updated") + ": " + doc.Date)
			h.raw("</p>")
		}
		h.raw("</section><section class=\"legal-body\">")

		for _, section := range doc.Sections {
			h.raw("<article><h2>")
			h.text(section.Title)
			h.raw("</h2>")
			for _, paragraph := range section.Paragraphs() {
				h.raw("<p class=\"whitespace-pre-line\">")
				h.segments(paragraph)
				h.raw("</p>")
			}
			if len(section.Items) > 0 {
				h.raw("<ul>")
				for _, item := range section.Items {
					h.raw("<li>")
					h.segments(item)
					h.raw("</li>")
				}
				h.raw("</ul>")
			}
			h.raw("</article>")
		}

		h.raw("<div class=\"legal-contact\"><p>")
		h.text(message(page.Messages, "common.legalQuestions", "Have questions about our policies?"))
		h.raw("</p><a")
		h.attr("href", "/"+locale+"/contact/")
		h.raw(">")
		h.text(message(page.Messages, "common.contactUs", "Contact Us"))
		h.raw("</a></div></section>")
		return h.err
	})

	return Layout(PageMeta{
		Title:       title,
		Description: doc.MetaDescription,
		Locale:      page.Locale,
		Path:        strings.TrimPrefix(page.Path(), "/"+locale),
		Copyright:   page.Copyright,
	}, body)
}

// Renderer renders pages for the static exporter
type Renderer struct{}

// NewRenderer creates a new Renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderLegal writes the legal page HTML to w
func (r *Renderer) RenderLegal(ctx context.Context, w io.Writer, page *service.LegalPage) error {
	return LegalPage(page).Render(ctx, w)
}

// RenderPage writes a landing, about, contact or product page to w
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page *service.SitePage) error {
	return SitePage(page).Render(ctx, w)
}

// SitePage picks the component for a non-legal page
func SitePage(page *service.SitePage) templ.Component {
	facts := service.DefaultCompany()
	switch page.Kind {
	case service.PageAbout:
		return About(page.Locale, page.Messages, page.Copyright)
	case service.PageContact:
		return Contact(page.Locale, page.Messages, service.ContactInfo(facts, page.Locale), page.Copyright)
	case service.PageProduct:
		return Product(page.Locale, page.Product, page.Messages, page.Copyright)
	default:
		return Home(HomeData{
			Locale:    page.Locale,
			Messages:  page.Messages,
			Products:  service.ActiveProducts(),
			Contact:   service.ContactInfo(facts, page.Locale),
			Copyright: page.Copyright,
		})
	}
}
