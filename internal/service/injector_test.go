package service

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightai/site/internal/model"
)

func TestInjectString(t *testing.T) {
	injector := NewInjector(Placeholders{
		"x":             "V",
		"email.support": "support@x.io",
		"a":             "{{b}}",
		"b":             "Z",
		"empty":         "",
	})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"known key", "pre {{x}} post", "pre V post"},
		{"unknown key preserved", "{{nope}}", "{{nope}}"},
		{"whitespace trimmed", "{{ x }}", "V"},
		{"tabs and newlines trimmed", "{{\tx\n}}", "V"},
		{"dotted key", "Reach us at {{email.support}}", "Reach us at support@x.io"},
		{"substitution not rescanned", "{{a}}", "{{b}}"},
		{"multiple tokens", "{{x}}{{x}}-{{nope}}-{{x}}", "VV-{{nope}}-V"},
		{"empty value", "[{{empty}}]", "[]"},
		{"no tokens", "plain text", "plain text"},
		{"empty string", "", ""},
		{"empty braces", "{{}}", "{{}}"},
		{"blank key", "{{  }}", "{{  }}"},
		{"unclosed token", "{{x", "{{x"},
		{"single braces", "{x}", "{x}"},
		{"brace inside key", "{{{x}}}", "{{{x}}}"},
		{"nested close", "{{x}}}", "V}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, injector.InjectString(tt.input))
		})
	}
}

func TestInjectWhitespaceEquivalence(t *testing.T) {
	injector := NewInjector(Placeholders{"x": "V"})
	assert.Equal(t, injector.InjectString("{{x}}"), injector.InjectString("{{ x }}"))
}

func TestInjectPreservesStructure(t *testing.T) {
	injector := NewInjector(Placeholders{"x": "V"})

	input := model.NewObject(
		model.Member{Key: "title", Value: "{{x}}"},
		model.Member{Key: "items", Value: []any{"{{x}}", "lit"}},
	)

	got := injector.Inject(input)

	want := model.NewObject(
		model.Member{Key: "title", Value: "V"},
		model.Member{Key: "items", Value: []any{"V", "lit"}},
	)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(model.Object{})); diff != "" {
		t.Errorf("Inject() mismatch (-want +got):\n%s", diff)
	}
}

func TestInjectDoesNotMutateInput(t *testing.T) {
	injector := NewInjector(Placeholders{"x": "V"})

	tree, err := model.DecodeTree([]byte(`{"b": "{{x}}", "a": {"list": ["{{x}}", 1, true, null]}}`))
	require.NoError(t, err)

	before, err := json.Marshal(tree)
	require.NoError(t, err)

	got := injector.Inject(tree)

	after, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "input tree changed")

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"V","a":{"list":["V",1,true,null]}}`, string(out))

	assert.NotSame(t, tree, got)
}

func TestInjectScalarsPassThrough(t *testing.T) {
	injector := NewInjector(Placeholders{"x": "V"})

	assert.Equal(t, json.Number("42"), injector.Inject(json.Number("42")))
	assert.Equal(t, true, injector.Inject(true))
	assert.Nil(t, injector.Inject(nil))
	assert.Equal(t, 3.5, injector.Inject(3.5))
}

func TestInjectPlainGoContainers(t *testing.T) {
	injector := NewInjector(Placeholders{"x": "V"})

	got := injector.Inject(map[string]any{
		"s":    "{{x}}",
		"list": []string{"{{x}}", "y"},
	})

	want := map[string]any{
		"s":    "V",
		"list": []string{"V", "y"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Inject() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokens(t *testing.T) {
	tokens := Tokens("a {{ one }} b {{two}} {{}}")
	require.Len(t, tokens, 2)

	assert.Equal(t, "one", tokens[0].Key)
	assert.Equal(t, "{{ one }}", tokens[0].Raw)
	assert.Equal(t, 2, tokens[0].Start)
	assert.Equal(t, 11, tokens[0].End)

	assert.Equal(t, "two", tokens[1].Key)
	assert.Nil(t, Tokens("no tokens here"))
}
