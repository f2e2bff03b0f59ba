package model

import (
	"golang.org/x/text/language"
)

// Locale identifies one of the languages the site is published in
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleVI Locale = "vi"
)

// DefaultLocale is used when a request carries no usable language preference
const DefaultLocale = LocaleEN

// Locales lists every supported locale, default first
var Locales = []Locale{LocaleEN, LocaleVI}

var localeNames = map[Locale]string{
	LocaleEN: "English",
	LocaleVI: "Tiếng Việt",
}

// Regional tags advertised as hreflang alternates
var localeAlternates = map[Locale]language.Tag{
	LocaleEN: language.AmericanEnglish,
	LocaleVI: language.MustParse("vi-VN"),
}

// Matcher order must follow Locales so match indexes line up
var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Vietnamese,
})

// ParseLocale reports whether s names a supported locale
func ParseLocale(s string) (Locale, bool) {
	for _, l := range Locales {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Name returns the locale's name in its own language
func (l Locale) Name() string {
	return localeNames[l]
}

// Alternate returns the BCP 47 region tag used for SEO alternates (e.g. "vi-VN")
func (l Locale) Alternate() string {
	if tag, ok := localeAlternates[l]; ok {
		return tag.String()
	}
	return string(l)
}

// Tag returns the base language tag for the locale
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

// MatchLocale picks the best supported locale for an Accept-Language header value
func MatchLocale(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(Locales) {
		return DefaultLocale
	}
	return Locales[index]
}
