package service

import "errors"

var (
	// ErrUnsupportedLocale is returned for a locale outside model.Locales
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrLocaleNotFound is returned when a locale's messages cannot be read
	ErrLocaleNotFound = errors.New("locale messages not found")
	// ErrMalformedMessages is returned when a locale document is not valid JSON
	ErrMalformedMessages = errors.New("malformed locale messages")
	// ErrLegalDocumentNotFound is returned when a message tree has no usable legal document for a slug
	ErrLegalDocumentNotFound = errors.New("legal document not found")
)

// IsNotFound reports whether err should surface to a visitor as a 404
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnsupportedLocale) ||
		errors.Is(err, ErrLocaleNotFound) ||
		errors.Is(err, ErrLegalDocumentNotFound)
}
