package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightai/site/internal/locales"
	"github.com/insightai/site/internal/model"
	"github.com/insightai/site/internal/store"
)

// --- Mock renderer ---

type mockRenderer struct{}

func (mockRenderer) RenderLegal(_ context.Context, w io.Writer, page *LegalPage) error {
	_, err := fmt.Fprintf(w, "%s|%d", page.Document.MetaTitle, len(page.Document.Sections))
	return err
}

func (mockRenderer) RenderPage(_ context.Context, w io.Writer, page *SitePage) error {
	_, err := fmt.Fprintf(w, "%s|%s", page.Kind, page.Path())
	return err
}

func TestExporterWritesSite(t *testing.T) {
	out := t.TempDir()
	loader := NewLoader(store.NewFSSource(locales.FS), NewInjector(BuildPlaceholders(DefaultCompany())), nil, true)
	exporter := NewExporter(loader, mockRenderer{}, "https://example.test", nil)

	stats, err := exporter.Export(context.Background(), out)
	require.NoError(t, err)

	perLocale := 3 + len(ActiveProducts()) + len(PlatformLegalPages) + len(ProductLegalPages)
	assert.Equal(t, len(model.Locales), stats.Locales)
	assert.Equal(t, perLocale*len(model.Locales), stats.Pages)
	assert.Zero(t, stats.Skipped)

	messages, err := os.ReadFile(filepath.Join(out, "en", "messages.json"))
	require.NoError(t, err)
	assert.Contains(t, string(messages), "Reach us at support@insight.ai.vn")
	assert.NotContains(t, string(messages), "{{email.support}}")

	page, err := os.ReadFile(filepath.Join(out, "vi", "wisenest", "disclaimer", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "Tuyên bố miễn trừ|1", string(page))

	home, err := os.ReadFile(filepath.Join(out, "vi", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "home|/vi/", string(home))

	product, err := os.ReadFile(filepath.Join(out, "en", "wisenest", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "product|/en/wisenest/", string(product))

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://example.test/en/wisenest/privacy-policy</loc>")
}

func TestExporterCoversEverySitemapEntry(t *testing.T) {
	out := t.TempDir()
	loader := NewLoader(store.NewFSSource(locales.FS), NewInjector(BuildPlaceholders(DefaultCompany())), nil, true)

	_, err := NewExporter(loader, mockRenderer{}, "https://example.test", nil).Export(context.Background(), out)
	require.NoError(t, err)

	for _, entry := range BuildSitemap("https://example.test", time.Now()) {
		path := strings.TrimPrefix(entry.Location, "https://example.test")
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(path), "index.html"), entry.Location)
	}
}

func TestSitePagePaths(t *testing.T) {
	pages := SitePages(model.LocaleVI, nil)
	var paths []string
	for _, p := range pages {
		paths = append(paths, p.Path())
	}
	assert.Equal(t, []string{"/vi/", "/vi/about/", "/vi/contact/", "/vi/wisenest/"}, paths)
}

func TestExporterFailsOnMissingLocale(t *testing.T) {
	source := &mockSource{docs: map[model.Locale]string{model.LocaleEN: `{}`}}
	exporter := NewExporter(newTestLoader(source, false), mockRenderer{}, "https://example.test", nil)

	stats, err := exporter.Export(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrLocaleNotFound)
	assert.Equal(t, 1, stats.Locales)
	assert.Equal(t, 3+len(ActiveProducts()), stats.Pages, "site pages render without legal content")
	assert.Equal(t, len(PlatformLegalPages)+len(ProductLegalPages), stats.Skipped, "en has no legal content")
}

func TestBuildSitemap(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	entries := BuildSitemap("https://example.test/", now)

	perLocale := 3 + len(PlatformLegalPages) + 1 + len(ProductLegalPages)
	assert.Len(t, entries, perLocale*len(model.Locales))

	assert.Equal(t, "https://example.test/en", entries[0].Location)
	assert.Equal(t, 1.0, entries[0].Priority)
	assert.Equal(t, "2026-03-04", entries[0].LastModified)

	var b strings.Builder
	require.NoError(t, WriteSitemap(&b, entries))
	xml := b.String()
	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>https://example.test/vi/wisenest</loc>")
	assert.Contains(t, xml, "<changefreq>weekly</changefreq>")
}

func TestProducts(t *testing.T) {
	p, ok := GetProduct("wisenest")
	require.True(t, ok)
	assert.Equal(t, "WiseNest", p.Name)
	assert.True(t, p.HasLegalPage(model.LegalSubscriptionTerms))

	_, ok = GetProduct("nope")
	assert.False(t, ok)

	assert.Equal(t, []model.ProductID{model.ProductWiseNest}, ProductIDs())
	assert.Len(t, ActiveProducts(), 1)

	assert.True(t, IsValidLegalPage("disclaimer"))
	assert.False(t, IsValidLegalPage("cookies"))
	assert.True(t, IsPlatformLegalPage("terms-of-service"))
	assert.False(t, IsPlatformLegalPage("permissions"))
}

func TestWriteWith(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "a", "b", "index.html")
	require.NoError(t, writeWith(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))

	boom := errors.New("render failed")
	err = writeWith(filepath.Join(dir, "c.html"), func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)

	// a regular file where a directory is needed
	err = writeWith(filepath.Join(path, "nested.html"), func(io.Writer) error { return nil })
	assert.Error(t, err)
}
