package service

import (
	"encoding/xml"
	"io"
	"strings"
	"time"

	"github.com/insightai/site/internal/model"
)

// SitemapEntry is one <url> element of sitemap.xml
type SitemapEntry struct {
	Location        string  `xml:"loc"`
	LastModified    string  `xml:"lastmod"`
	ChangeFrequency string  `xml:"changefreq"`
	Priority        float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name       `xml:"urlset"`
	Xmlns   string         `xml:"xmlns,attr"`
	URLs    []SitemapEntry `xml:"url"`
}

// BuildSitemap lists every public page for every locale
func BuildSitemap(baseURL string, now time.Time) []SitemapEntry {
	baseURL = strings.TrimRight(baseURL, "/")
	lastMod := now.UTC().Format("2006-01-02")
	var entries []SitemapEntry

	add := func(path, freq string, priority float64) {
		entries = append(entries, SitemapEntry{
			Location:        baseURL + path,
			LastModified:    lastMod,
			ChangeFrequency: freq,
			Priority:        priority,
		})
	}

	for _, locale := range model.Locales {
		prefix := "/" + string(locale)
		add(prefix, "monthly", 1.0)
		add(prefix+"/about", "monthly", 0.8)
		add(prefix+"/contact", "monthly", 0.8)
		for _, slug := range PlatformLegalPages {
			add(prefix+"/"+string(slug), "monthly", 0.5)
		}
	}

	for _, locale := range model.Locales {
		for _, product := range ActiveProducts() {
			productPath := "/" + string(locale) + "/" + string(product.ID)
			add(productPath, "weekly", 0.9)
			for _, slug := range ProductLegalPages {
				if product.HasLegalPage(slug) {
					add(productPath+"/"+string(slug), "monthly", 0.5)
				}
			}
		}
	}

	return entries
}

// WriteSitemap encodes entries as a sitemaps.org urlset
func WriteSitemap(w io.Writer, entries []SitemapEntry) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  entries,
	}); err != nil {
		return err
	}
	return enc.Flush()
}
