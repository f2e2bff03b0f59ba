package service

import (
	"regexp"
	"strings"

	"github.com/insightai/site/internal/model"
)

// placeholderPattern matches {{key}}. Go regexps keep no match state between
// calls, so the compiled pattern is safe to share across requests.
var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Token is one {{key}} occurrence inside a string
type Token struct {
	Raw   string // the full token including delimiters
	Key   string // trimmed key text
	Start int
	End   int
}

// Tokens returns the placeholder tokens in s, left to right
func Tokens(s string) []Token {
	matches := placeholderPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{
			Raw:   s[m[0]:m[1]],
			Key:   strings.TrimSpace(s[m[2]:m[3]]),
			Start: m[0],
			End:   m[1],
		})
	}
	return tokens
}

// Injector replaces {{key}} tokens in message trees
type Injector struct {
	placeholders Placeholders
}

// NewInjector creates an Injector backed by the given placeholder table
func NewInjector(placeholders Placeholders) *Injector {
	return &Injector{placeholders: placeholders}
}

// Placeholders returns the table the injector resolves against
func (i *Injector) Placeholders() Placeholders {
	return i.placeholders
}

// InjectString replaces every known token in s. Unknown tokens are left as
// written, and replacement text is never scanned again.
func (i *Injector) InjectString(s string) string {
	tokens := Tokens(s)
	if len(tokens) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, tok := range tokens {
		b.WriteString(s[last:tok.Start])
		if v, ok := i.placeholders[tok.Key]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(tok.Raw)
		}
		last = tok.End
	}
	b.WriteString(s[last:])
	return b.String()
}

// Inject returns a copy of value with every string leaf resolved. Objects keep
// their key order, sequences their element order, and any other scalar is
// returned as is. The input is not modified.
func (i *Injector) Inject(value any) any {
	switch v := value.(type) {
	case string:
		return i.InjectString(v)

	case *model.Object:
		if v == nil {
			return v
		}
		out := model.NewObject()
		for _, m := range v.Members() {
			out.Set(m.Key, i.Inject(m.Value))
		}
		return out

	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for idx, item := range v {
			out[idx] = i.Inject(item)
		}
		return out

	case []string:
		if v == nil {
			return v
		}
		out := make([]string, len(v))
		for idx, item := range v {
			out[idx] = i.InjectString(item)
		}
		return out

	case map[string]any:
		if v == nil {
			return v
		}
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = i.Inject(item)
		}
		return out

	default:
		return value
	}
}
