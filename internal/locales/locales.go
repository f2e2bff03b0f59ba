// Package locales embeds the translation catalogs shipped with the site.
package locales

import "embed"

// FS holds one <locale>.json message document per supported locale
//
//go:embed *.json
var FS embed.FS
