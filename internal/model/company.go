package model

// LocalizedText holds one rendering of a fact per locale
type LocalizedText map[Locale]string

// In returns the text for the locale, falling back to the default locale
func (t LocalizedText) In(l Locale) string {
	if v, ok := t[l]; ok {
		return v
	}
	return t[DefaultLocale]
}

// CompanyFacts is the single source of truth for company contact and legal
// details. It is built once at startup and must be treated as read-only.
type CompanyFacts struct {
	Name        string
	ShortName   string
	Tagline     string
	Domain      string
	Website     string
	FoundedYear int

	Emails    Emails
	Address   Address
	Legal     LegalConstants
	Socials   Socials
	AppStores map[ProductID]AppStoreLinks
}

// Emails groups the public mailboxes by purpose
type Emails struct {
	General string
	Support string
	Privacy string
	Legal   string
	Billing string
	Press   string
	Careers string
}

// Address holds the locale-sensitive location facts
type Address struct {
	City         LocalizedText
	Country      LocalizedText
	Full         LocalizedText
	Jurisdiction LocalizedText
}

// LegalConstants are the values quoted by the legal documents
type LegalConstants struct {
	GoverningLaw      LocalizedText
	DataProtectionLaw LocalizedText

	PrivacyResponseDays  int
	SupportResponseHours string // a range, e.g. "24-48"
	GeneralResponseDays  int
	DataRetentionDays    int
	BackupRetentionDays  int
	MinimumAge           int
	LiabilityCapUSD      int
}

// Socials holds the company's social profile URLs
type Socials struct {
	Facebook  string
	Twitter   string
	Instagram string
	LinkedIn  string
	GitHub    string
	YouTube   string
}

// AppStoreLinks are the store listings for one product
type AppStoreLinks struct {
	IOS     string
	Android string
}

// ContactInfo is the locale-resolved contact block shown on the contact page
type ContactInfo struct {
	Email        string
	EmailHref    string
	Location     string
	PrivacyEmail string
	LegalEmail   string
	BillingEmail string
}
