package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/insightai/site/internal/model"
)

// About renders the company page
func About(locale model.Locale, messages any, copyright string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<section class=\"about\"><h1>")
		h.text(message(messages, "about.title", "About"))
		h.raw("</h1><p>")
		h.segments(message(messages, "about.body", ""))
		h.raw("</p></section>")
		return h.err
	})

	return Layout(PageMeta{
		Title:     message(messages, "about.title", "About"),
		Locale:    locale,
		Path:      "/about/",
		Copyright: copyright,
	}, body)
}

// Contact renders the contact page. Lines come from the contact namespace with
// placeholders already resolved.
func Contact(locale model.Locale, messages any, contact model.ContactInfo, copyright string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<section class=\"contact\"><h1>")
		h.text(message(messages, "contact.title", "Contact"))
		h.raw("</h1><p><a")
		h.attr("href", contact.EmailHref)
		h.raw(">")
		h.text(message(messages, "contact.email", contact.Email))
		h.raw("</a></p>")

		for _, key := range []string{"contact.general", "contact.press", "contact.careers"} {
			if line := message(messages, key, ""); line != "" {
				h.raw("<p>")
				h.text(line)
				h.raw("</p>")
			}
		}

		h.raw("<address>")
		h.text(message(messages, "contact.location", contact.Location))
		h.raw("</address>")

		if socials, ok := model.Lookup(messages, "contact.socials"); ok {
			if list, ok := socials.([]any); ok && len(list) > 0 {
				h.raw("<ul class=\"socials\">")
				for _, v := range list {
					url, ok := v.(string)
					if !ok || url == "" {
						continue
					}
					h.raw("<li><a")
					h.attr("href", string(templ.URL(url)))
					h.raw(" rel=\"noopener noreferrer\">")
					h.text(url)
					h.raw("</a></li>")
				}
				h.raw("</ul>")
			}
		}

		h.raw("</section>")
		return h.err
	})

	return Layout(PageMeta{
		Title:     message(messages, "contact.title", "Contact"),
		Locale:    locale,
		Path:      "/contact/",
		Copyright: copyright,
	}, body)
}

// Product renders a product landing page with store links and its legal menu
func Product(locale model.Locale, product *model.Product, messages any, copyright string) templ.Component {
	id := string(product.ID)
	prefix := "/" + string(locale) + "/" + id + "/"

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<section class=\"product\"><h1>")
		h.text(product.Icon + " " + product.Name)
		h.raw("</h1><p>")
		h.text(product.Tagline)
		h.raw("</p>")
		if product.Description != "" {
			h.raw("<p>")
			h.text(product.Description)
			h.raw("</p>")
		}

		h.raw("<div class=\"downloads\"><a")
		h.attr("href", string(templ.URL(message(messages, id+".download.ios", product.AppStoreURL))))
		h.raw(">App Store</a> <a")
		h.attr("href", string(templ.URL(message(messages, id+".download.android", product.PlayStoreURL))))
		h.raw(">Google Play</a></div>")

		h.raw("<nav class=\"legal-links\">")
		for _, slug := range product.LegalPages {
			h.raw("<a")
			h.attr("href", prefix+string(slug)+"/")
			h.raw(">")
			h.text(message(messages, "common.legal."+string(slug), string(slug)))
			h.raw("</a> ")
		}
		h.raw("</nav></section>")
		return h.err
	})

	return Layout(PageMeta{
		Title:       product.Name + " - " + product.Tagline,
		Description: product.Description,
		Locale:      locale,
		Path:        "/" + id + "/",
		Copyright:   copyright,
	}, body)
}
