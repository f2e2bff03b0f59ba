package model

// ProductID identifies a shipped product
type ProductID string

const ProductWiseNest ProductID = "wisenest"

// LegalPageSlug is the URL segment of a legal document
type LegalPageSlug string

const (
	LegalPrivacyPolicy     LegalPageSlug = "privacy-policy"
	LegalTermsOfService    LegalPageSlug = "terms-of-service"
	LegalPermissions       LegalPageSlug = "permissions"
	LegalSubscriptionTerms LegalPageSlug = "subscription-terms"
	LegalDisclaimer        LegalPageSlug = "disclaimer"
)

// Product represents one app listed on the site
type Product struct {
	ID           ProductID
	Name         string
	Tagline      string
	Description  string
	Icon         string
	Logo         string
	Favicon      string // directory holding the product's favicon set
	Color        string
	AppStoreURL  string
	PlayStoreURL string
	LegalPages   []LegalPageSlug
	Active       bool
}

// HasLegalPage reports whether the product publishes the given document
func (p *Product) HasLegalPage(slug LegalPageSlug) bool {
	for _, s := range p.LegalPages {
		if s == slug {
			return true
		}
	}
	return false
}
