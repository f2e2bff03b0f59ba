package service

import (
	"github.com/insightai/site/internal/model"
)

// ProductLegalPages are the documents a product may publish, in menu order
var ProductLegalPages = []model.LegalPageSlug{
	model.LegalPrivacyPolicy,
	model.LegalTermsOfService,
	model.LegalPermissions,
	model.LegalSubscriptionTerms,
	model.LegalDisclaimer,
}

// PlatformLegalPages are the company-wide documents
var PlatformLegalPages = []model.LegalPageSlug{
	model.LegalPrivacyPolicy,
	model.LegalTermsOfService,
}

var products = []model.Product{
	{
		ID:           model.ProductWiseNest,
		Name:         "WiseNest",
		Tagline:      "Smart Food & Home Management",
		Icon:         "🏠",
		Logo:         "/images/logo-wise-nest.png",
		Favicon:      "/favicons/wisenest",
		Color:        "#22c55e",
		AppStoreURL:  "https://apps.apple.com/app/wisenest/id6758124371",
		PlayStoreURL: "https://play.google.com/store/apps/details?id=com.wisenest.app",
		LegalPages:   ProductLegalPages,
		Active:       true,
	},
}

// GetProduct looks up a product by ID
func GetProduct(id string) (*model.Product, bool) {
	for i := range products {
		if string(products[i].ID) == id {
			return &products[i], true
		}
	}
	return nil, false
}

// ActiveProducts returns the products currently listed on the site
func ActiveProducts() []*model.Product {
	var active []*model.Product
	for i := range products {
		if products[i].Active {
			active = append(active, &products[i])
		}
	}
	return active
}

// ProductIDs returns every product ID, active or not
func ProductIDs() []model.ProductID {
	ids := make([]model.ProductID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

// IsValidLegalPage reports whether slug names a product legal document
func IsValidLegalPage(slug string) bool {
	return containsSlug(ProductLegalPages, slug)
}

// IsPlatformLegalPage reports whether slug names a company-wide legal document
func IsPlatformLegalPage(slug string) bool {
	return containsSlug(PlatformLegalPages, slug)
}

func containsSlug(slugs []model.LegalPageSlug, slug string) bool {
	for _, s := range slugs {
		if string(s) == slug {
			return true
		}
	}
	return false
}
