package service

import (
	"fmt"
	"sort"

	"github.com/insightai/site/internal/model"
)

// Finding is a placeholder token whose key has no value
type Finding struct {
	Path string // dotted path of the string leaf, e.g. "legal.disclaimer.sections.intro.content"
	Key  string
	Raw  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: unknown placeholder %s", f.Path, f.Raw)
}

// Validate walks an un-injected message tree and reports every token the
// placeholder table cannot resolve, in document order.
func Validate(tree any, placeholders Placeholders) []Finding {
	var findings []Finding
	walkStrings(tree, "", func(path, s string) {
		for _, tok := range Tokens(s) {
			if !placeholders.Has(tok.Key) {
				findings = append(findings, Finding{Path: path, Key: tok.Key, Raw: tok.Raw})
			}
		}
	})
	return findings
}

// UsedKeys returns the distinct placeholder keys referenced by a tree, sorted
func UsedKeys(tree any) []string {
	seen := make(map[string]bool)
	walkStrings(tree, "", func(_, s string) {
		for _, tok := range Tokens(s) {
			seen[tok.Key] = true
		}
	})

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func walkStrings(value any, path string, visit func(path, s string)) {
	switch v := value.(type) {
	case string:
		visit(path, v)
	case *model.Object:
		for _, m := range v.Members() {
			walkStrings(m.Value, joinPath(path, m.Key), visit)
		}
	case []any:
		for i, item := range v {
			walkStrings(item, fmt.Sprintf("%s[%d]", path, i), visit)
		}
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
