package service

import (
	"sort"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/insightai/site/internal/model"
)

// Placeholders maps dotted keys such as "email.support" to their replacement text
type Placeholders map[string]string

// Keys returns every key in sorted order
func (p Placeholders) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is defined
func (p Placeholders) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// BuildPlaceholders flattens the company registry into the lookup table used
// by the injector. Localized facts get one key per locale: the default locale
// uses the bare key and the others append their title-cased code
// ("address.full", "address.fullVi").
func BuildPlaceholders(facts *model.CompanyFacts) Placeholders {
	p := Placeholders{
		"company.name":        facts.Name,
		"company.shortName":   facts.ShortName,
		"company.tagline":     facts.Tagline,
		"company.domain":      facts.Domain,
		"company.website":     facts.Website,
		"company.foundedYear": strconv.Itoa(facts.FoundedYear),

		"email.general": facts.Emails.General,
		"email.support": facts.Emails.Support,
		"email.privacy": facts.Emails.Privacy,
		"email.legal":   facts.Emails.Legal,
		"email.billing": facts.Emails.Billing,
		"email.press":   facts.Emails.Press,
		"email.careers": facts.Emails.Careers,

		"legal.privacyResponseDays":  strconv.Itoa(facts.Legal.PrivacyResponseDays),
		"legal.supportResponseHours": facts.Legal.SupportResponseHours,
		"legal.generalResponseDays":  strconv.Itoa(facts.Legal.GeneralResponseDays),
		"legal.dataRetentionDays":    strconv.Itoa(facts.Legal.DataRetentionDays),
		"legal.backupRetentionDays":  strconv.Itoa(facts.Legal.BackupRetentionDays),
		"legal.minimumAge":           strconv.Itoa(facts.Legal.MinimumAge),
		"legal.liabilityCapUSD":      strconv.Itoa(facts.Legal.LiabilityCapUSD),

		"social.facebook":  facts.Socials.Facebook,
		"social.twitter":   facts.Socials.Twitter,
		"social.instagram": facts.Socials.Instagram,
		"social.linkedin":  facts.Socials.LinkedIn,
		"social.github":    facts.Socials.GitHub,
		"social.youtube":   facts.Socials.YouTube,
	}

	p.addLocalized("address.city", facts.Address.City)
	p.addLocalized("address.country", facts.Address.Country)
	p.addLocalized("address.full", facts.Address.Full)
	p.addLocalized("address.jurisdiction", facts.Address.Jurisdiction)
	p.addLocalized("legal.governingLaw", facts.Legal.GoverningLaw)
	p.addLocalized("legal.dataProtectionLaw", facts.Legal.DataProtectionLaw)

	for id, links := range facts.AppStores {
		p["appStore."+string(id)+".ios"] = links.IOS
		p["appStore."+string(id)+".android"] = links.Android
	}

	return p
}

func (p Placeholders) addLocalized(key string, text model.LocalizedText) {
	for _, locale := range model.Locales {
		p[localizedKey(key, locale)] = text.In(locale)
	}
}

func localizedKey(key string, locale model.Locale) string {
	if locale == model.DefaultLocale {
		return key
	}
	// Casers carry state, so one is built per call.
	return key + cases.Title(language.Und).String(string(locale))
}
