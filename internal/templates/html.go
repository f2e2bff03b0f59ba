package templates

import (
	"io"

	"github.com/a-h/templ"

	"github.com/insightai/site/internal/model"
	"github.com/insightai/site/internal/service"
)

// htmlWriter keeps the first write error so components can write sequentially
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

// segments writes parsed legal text, turning [label](url) into anchors
func (h *htmlWriter) segments(s string) {
	for _, seg := range service.ParseLinks(s) {
		if !seg.IsLink() {
			h.text(seg.Value)
			continue
		}
		h.raw("<a")
		h.attr("href", string(templ.URL(seg.URL)))
		h.raw(` target="_blank" rel="noopener noreferrer" class="legal-link">`)
		h.text(seg.Label)
		h.raw("</a>")
	}
}

// message returns a resolved UI string, or fallback when the key is missing
func message(tree any, key, fallback string) string {
	if s, ok := model.LookupString(tree, key); ok && s != "" {
		return s
	}
	return fallback
}
