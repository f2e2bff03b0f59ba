package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/insightai/site/internal/model"
)

// LegalPage is everything needed to render one legal document
type LegalPage struct {
	Locale    model.Locale
	Product   *model.Product // nil for company-wide documents
	Document  *model.LegalDocument
	Messages  any // resolved tree, for shared UI strings
	Copyright string
}

// Path returns the site path of the page, with a trailing slash
func (p *LegalPage) Path() string {
	if p.Product != nil {
		return fmt.Sprintf("/%s/%s/%s/", p.Locale, p.Product.ID, p.Document.Slug)
	}
	return fmt.Sprintf("/%s/%s/", p.Locale, p.Document.Slug)
}

// LegalPage resolves a legal page. A nil product selects the company-wide documents.
func (l *Loader) LegalPage(ctx context.Context, locale model.Locale, product *model.Product, slug model.LegalPageSlug) (*LegalPage, error) {
	namespace := NamespacePlatformLegal
	if product != nil {
		if !product.HasLegalPage(slug) {
			return nil, fmt.Errorf("%w: %s does not publish %s", ErrLegalDocumentNotFound, product.ID, slug)
		}
		namespace = NamespaceProductLegal
	}

	tree, err := l.Load(ctx, locale)
	if err != nil {
		return nil, err
	}

	doc, err := LegalDocumentFrom(tree, namespace, slug)
	if err != nil {
		return nil, err
	}

	return &LegalPage{
		Locale:    locale,
		Product:   product,
		Document:  doc,
		Messages:  tree,
		Copyright: CopyrightText(DefaultCompany(), locale, 0),
	}, nil
}

// PageKind names the non-legal pages of the site
type PageKind string

const (
	PageHome    PageKind = "home"
	PageAbout   PageKind = "about"
	PageContact PageKind = "contact"
	PageProduct PageKind = "product"
)

// SitePage is everything needed to render a landing, about, contact or product page
type SitePage struct {
	Kind      PageKind
	Locale    model.Locale
	Product   *model.Product // set for PageProduct only
	Messages  any
	Copyright string
}

// Path returns the site path of the page, with a trailing slash
func (p *SitePage) Path() string {
	switch p.Kind {
	case PageHome:
		return fmt.Sprintf("/%s/", p.Locale)
	case PageProduct:
		return fmt.Sprintf("/%s/%s/", p.Locale, p.Product.ID)
	default:
		return fmt.Sprintf("/%s/%s/", p.Locale, p.Kind)
	}
}

// SitePages lists the non-legal pages of a locale, in sitemap order
func SitePages(locale model.Locale, messages any) []*SitePage {
	copyright := CopyrightText(DefaultCompany(), locale, 0)
	pages := []*SitePage{
		{Kind: PageHome, Locale: locale, Messages: messages, Copyright: copyright},
		{Kind: PageAbout, Locale: locale, Messages: messages, Copyright: copyright},
		{Kind: PageContact, Locale: locale, Messages: messages, Copyright: copyright},
	}
	for _, product := range ActiveProducts() {
		pages = append(pages, &SitePage{
			Kind:      PageProduct,
			Locale:    locale,
			Product:   product,
			Messages:  messages,
			Copyright: copyright,
		})
	}
	return pages
}

// PageRenderer writes HTML for the exported pages
type PageRenderer interface {
	RenderLegal(ctx context.Context, w io.Writer, page *LegalPage) error
	RenderPage(ctx context.Context, w io.Writer, page *SitePage) error
}

// ExportStats tracks export statistics
type ExportStats struct {
	Locales int
	Pages   int
	Skipped int
}

// Exporter writes the resolved site content to a directory for static hosting
type Exporter struct {
	loader   *Loader
	renderer PageRenderer
	baseURL  string
	logger   *zap.Logger
}

// NewExporter creates a new Exporter
func NewExporter(loader *Loader, renderer PageRenderer, baseURL string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		loader:   loader,
		renderer: renderer,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// Export writes messages.json, the site pages and every legal page for each
// locale, plus sitemap.xml
func (e *Exporter) Export(ctx context.Context, outDir string) (*ExportStats, error) {
	stats := &ExportStats{}

	for _, locale := range model.Locales {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		tree, err := e.loader.Load(ctx, locale)
		if err != nil {
			return stats, err
		}

		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return stats, fmt.Errorf("failed to encode %s messages: %w", locale, err)
		}
		if err := writeFile(filepath.Join(outDir, string(locale), "messages.json"), data); err != nil {
			return stats, err
		}
		stats.Locales++

		for _, page := range SitePages(locale, tree) {
			err := writeWith(filepath.Join(outDir, filepath.FromSlash(page.Path()), "index.html"), func(w io.Writer) error {
				return e.renderer.RenderPage(ctx, w, page)
			})
			if err != nil {
				return stats, fmt.Errorf("failed to render %s: %w", page.Path(), err)
			}
			stats.Pages++
			e.logger.Debug("Exported page", zap.String("path", page.Path()))
		}

		for _, slug := range PlatformLegalPages {
			if err := e.exportPage(ctx, outDir, locale, nil, slug, stats); err != nil {
				return stats, err
			}
		}
		for _, product := range ActiveProducts() {
			for _, slug := range product.LegalPages {
				if err := e.exportPage(ctx, outDir, locale, product, slug, stats); err != nil {
					return stats, err
				}
			}
		}
	}

	entries := BuildSitemap(e.baseURL, time.Now())
	err := writeWith(filepath.Join(outDir, "sitemap.xml"), func(w io.Writer) error {
		return WriteSitemap(w, entries)
	})
	if err != nil {
		return stats, fmt.Errorf("failed to write sitemap: %w", err)
	}

	return stats, nil
}

func (e *Exporter) exportPage(ctx context.Context, outDir string, locale model.Locale, product *model.Product, slug model.LegalPageSlug, stats *ExportStats) error {
	page, err := e.loader.LegalPage(ctx, locale, product, slug)
	if errors.Is(err, ErrLegalDocumentNotFound) {
		e.logger.Warn("Skipping legal page without content",
			zap.String("locale", string(locale)),
			zap.String("slug", string(slug)),
			zap.Error(err))
		stats.Skipped++
		return nil
	}
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, filepath.FromSlash(page.Path()), "index.html")
	err = writeWith(path, func(w io.Writer) error {
		return e.renderer.RenderLegal(ctx, w, page)
	})
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", page.Path(), err)
	}
	stats.Pages++
	e.logger.Debug("Exported legal page", zap.String("path", page.Path()))
	return nil
}

// writeWith creates path and streams write into it. A failed close is an error.
func writeWith(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return write(f)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
