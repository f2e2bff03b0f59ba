package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/insightai/site/internal/model"
)

// PageMeta describes the <head> of a page
type PageMeta struct {
	Title       string
	Description string
	Locale      model.Locale
	Path        string // path without the locale prefix, e.g. "/wisenest/disclaimer/"
	Copyright   string
}

// Layout wraps body in the shared page shell
func Layout(meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", string(meta.Locale))
		h.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		h.text(meta.Title)
		h.raw("</title>")
		if meta.Description != "" {
			h.raw("<meta name=\"description\"")
			h.attr("content", meta.Description)
			h.raw(">")
		}
		for _, l := range model.Locales {
			h.raw("<link rel=\"alternate\"")
			h.attr("hreflang", l.Alternate())
			h.attr("href", "/"+string(l)+meta.Path)
			h.raw(">")
		}
		h.raw("</head><body><main>")
		if h.err != nil {
			return h.err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		h.raw("</main><footer><p>")
		h.text(meta.Copyright)
		h.raw("</p></footer></body></html>")
		return h.err
	})
}
