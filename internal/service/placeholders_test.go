package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightai/site/internal/model"
)

func TestBuildPlaceholders(t *testing.T) {
	p := BuildPlaceholders(DefaultCompany())

	tests := []struct {
		key  string
		want string
	}{
		{"company.name", "Insight AI VN"},
		{"company.foundedYear", "2026"},
		{"email.support", "support@insight.ai.vn"},
		{"email.legal", "privacy@insight.ai.vn"},
		{"address.full", "Ho Chi Minh City, Vietnam"},
		{"address.fullVi", "TP. Hồ Chí Minh, Việt Nam"},
		{"address.jurisdictionVi", "TP. Hồ Chí Minh, Việt Nam"},
		{"legal.governingLaw", "Socialist Republic of Vietnam"},
		{"legal.dataProtectionLawVi", "Nghị định 13/2023/NĐ-CP về Bảo vệ Dữ liệu Cá nhân"},
		{"legal.minimumAge", "13"},
		{"legal.supportResponseHours", "24-48"},
		{"legal.liabilityCapUSD", "100"},
		{"social.github", "https://github.com/insightaivn"},
		{"appStore.wisenest.ios", "https://apps.apple.com/app/wisenest/id000000000"},
		{"appStore.wisenest.android", "https://play.google.com/store/apps/details?id=vn.ai.insight.wisenest"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := p[tt.key]
			require.True(t, ok, "missing key %s", tt.key)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Len(t, p, 40)
	assert.False(t, p.Has("address.fullEn"), "default locale uses the bare key")
}

func TestBuildPlaceholdersIsDeterministic(t *testing.T) {
	a := BuildPlaceholders(DefaultCompany())
	b := BuildPlaceholders(DefaultCompany())
	assert.Equal(t, a, b)

	keys := a.Keys()
	assert.IsIncreasing(t, keys)
	assert.Len(t, keys, len(a))
}

func TestBuildPlaceholdersCustomFacts(t *testing.T) {
	facts := &model.CompanyFacts{
		Emails: model.Emails{Support: "support@x.io"},
		Address: model.Address{
			City: model.LocalizedText{model.LocaleEN: "Hanoi"},
		},
		Legal: model.LegalConstants{MinimumAge: 16},
	}

	p := BuildPlaceholders(facts)
	assert.Equal(t, "support@x.io", p["email.support"])
	assert.Equal(t, "16", p["legal.minimumAge"])
	assert.Equal(t, "Hanoi", p["address.city"])
	assert.Equal(t, "Hanoi", p["address.cityVi"], "missing translations fall back to the default locale")
}

func TestContactInfoAndCopyright(t *testing.T) {
	facts := DefaultCompany()

	info := ContactInfo(facts, model.LocaleVI)
	assert.Equal(t, "support@insight.ai.vn", info.Email)
	assert.Equal(t, "mailto:support@insight.ai.vn", info.EmailHref)
	assert.Equal(t, "TP. Hồ Chí Minh, Việt Nam", info.Location)

	assert.Equal(t, "© 2027 Insight AI VN. All rights reserved.", CopyrightText(facts, model.LocaleEN, 2027))
	assert.Equal(t, "© 2027 Insight AI VN. Đã đăng ký bản quyền.", CopyrightText(facts, model.LocaleVI, 2027))
}
