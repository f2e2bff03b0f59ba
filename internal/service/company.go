package service

import (
	"fmt"
	"time"

	"github.com/insightai/site/internal/model"
)

var defaultCompany = model.CompanyFacts{
	Name:        "Insight AI VN",
	ShortName:   "Insight AI",
	Tagline:     "Smart Apps for Modern Living",
	Domain:      "insight.ai.vn",
	Website:     "https://insight.ai.vn",
	FoundedYear: 2026,

	Emails: model.Emails{
		General: "contact@insight.ai.vn",
		Support: "support@insight.ai.vn",
		Privacy: "privacy@insight.ai.vn",
		Legal:   "privacy@insight.ai.vn",
		Billing: "support@insight.ai.vn",
		Press:   "contact@insight.ai.vn",
		Careers: "contact@insight.ai.vn",
	},

	Address: model.Address{
		City: model.LocalizedText{
			model.LocaleEN: "Ho Chi Minh City",
			model.LocaleVI: "TP. Hồ Chí Minh",
		},
		Country: model.LocalizedText{
			model.LocaleEN: "Vietnam",
			model.LocaleVI: "Việt Nam",
		},
		Full: model.LocalizedText{
			model.LocaleEN: "Ho Chi Minh City, Vietnam",
			model.LocaleVI: "TP. Hồ Chí Minh, Việt Nam",
		},
		Jurisdiction: model.LocalizedText{
			model.LocaleEN: "Ho Chi Minh City, Vietnam",
			model.LocaleVI: "TP. Hồ Chí Minh, Việt Nam",
		},
	},

	Legal: model.LegalConstants{
		GoverningLaw: model.LocalizedText{
			model.LocaleEN: "Socialist Republic of Vietnam",
			model.LocaleVI: "Cộng hòa Xã hội Chủ nghĩa Việt Nam",
		},
		DataProtectionLaw: model.LocalizedText{
			model.LocaleEN: "Personal Data Protection Decree (13/2023/ND-CP)",
			model.LocaleVI: "Nghị định 13/2023/NĐ-CP về Bảo vệ Dữ liệu Cá nhân",
		},
		PrivacyResponseDays:  30,
		SupportResponseHours: "24-48",
		GeneralResponseDays:  5,
		DataRetentionDays:    30,
		BackupRetentionDays:  90,
		MinimumAge:           13,
		LiabilityCapUSD:      100,
	},

	Socials: model.Socials{
		Facebook:  "https://facebook.com/insightaivn",
		Twitter:   "https://twitter.com/insightaivn",
		Instagram: "https://instagram.com/insightaivn",
		LinkedIn:  "https://linkedin.com/company/insightaivn",
		GitHub:    "https://github.com/insightaivn",
		YouTube:   "https://youtube.com/@insightaivn",
	},

	AppStores: map[model.ProductID]model.AppStoreLinks{
		model.ProductWiseNest: {
			IOS:     "https://apps.apple.com/app/wisenest/id000000000",
			Android: "https://play.google.com/store/apps/details?id=vn.ai.insight.wisenest",
		},
	},
}

// DefaultCompany returns the process-wide company registry.
// Callers must not modify the returned value.
func DefaultCompany() *model.CompanyFacts {
	return &defaultCompany
}

// MailtoLink builds a mailto: href for an address
func MailtoLink(address string) string {
	return "mailto:" + address
}

// CopyrightText returns the footer copyright line. A zero year means the current year.
func CopyrightText(facts *model.CompanyFacts, locale model.Locale, year int) string {
	if year == 0 {
		year = time.Now().Year()
	}
	if locale == model.LocaleVI {
		return fmt.Sprintf("© %d %s. Đã đăng ký bản quyền.", year, facts.Name)
	}
	return fmt.Sprintf("© %d %s. All rights reserved.", year, facts.Name)
}

// ContactInfo resolves the contact block for a locale
func ContactInfo(facts *model.CompanyFacts, locale model.Locale) model.ContactInfo {
	return model.ContactInfo{
		Email:        facts.Emails.Support,
		EmailHref:    MailtoLink(facts.Emails.Support),
		Location:     facts.Address.Full.In(locale),
		PrivacyEmail: facts.Emails.Privacy,
		LegalEmail:   facts.Emails.Legal,
		BillingEmail: facts.Emails.Billing,
	}
}
