package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTreeKeepsKeyOrder(t *testing.T) {
	tree, err := DecodeTree([]byte(`{"zeta": 1, "alpha": {"b": "x", "a": "y"}, "mid": ["p", {"k": true}, null]}`))
	require.NoError(t, err)

	obj, ok := tree.(*Object)
	require.True(t, ok, "top level should decode to *Object, got %T", tree)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	alpha, _ := obj.Get("alpha")
	assert.Equal(t, []string{"b", "a"}, alpha.(*Object).Keys())

	zeta, _ := obj.Get("zeta")
	assert.Equal(t, json.Number("1"), zeta)

	mid, _ := obj.Get("mid")
	list := mid.([]any)
	require.Len(t, list, 3)
	assert.Equal(t, "p", list[0])
	assert.Nil(t, list[2])
}

func TestDecodeTreeDuplicateKeyKeepsFirstPosition(t *testing.T) {
	tree, err := DecodeTree([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	obj := tree.(*Object)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	a, _ := obj.Get("a")
	assert.Equal(t, json.Number("3"), a)
}

func TestDecodeTreeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"unterminated object", `{"a": "b"`},
		{"trailing value", `{"a": 1} {"b": 2}`},
		{"bad token", `{"a": nope}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTree([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestObjectMarshalJSONRoundTrip(t *testing.T) {
	input := `{"z":"last?","a":[1,{"y":"1","x":"2"}],"n":null,"t":true}`

	tree, err := DecodeTree([]byte(input))
	require.NoError(t, err)

	out, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestObjectSetReplacesInPlace(t *testing.T) {
	obj := NewObject(Member{Key: "a", Value: "1"}, Member{Key: "b", Value: "2"})
	obj.Set("a", "3")
	obj.Set("c", "4")

	assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())
	assert.Equal(t, 3, obj.Len())
	v, ok := obj.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestNilObject(t *testing.T) {
	var obj *Object
	assert.Equal(t, 0, obj.Len())
	assert.Nil(t, obj.Keys())
	_, ok := obj.Get("x")
	assert.False(t, ok)

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestLookup(t *testing.T) {
	tree, err := DecodeTree([]byte(`{"legal": {"privacy-policy": {"date": "today", "sections": {}}}, "list": ["x"]}`))
	require.NoError(t, err)

	s, ok := LookupString(tree, "legal.privacy-policy.date")
	assert.True(t, ok)
	assert.Equal(t, "today", s)

	_, ok = Lookup(tree, "legal.missing.date")
	assert.False(t, ok)

	_, ok = LookupString(tree, "legal.privacy-policy.sections")
	assert.False(t, ok, "sections is an object, not a string")

	_, ok = Lookup(tree, "list.0")
	assert.False(t, ok, "lookup does not index into sequences")

	root, ok := Lookup(tree, "")
	assert.True(t, ok)
	assert.Same(t, tree, root)
}
