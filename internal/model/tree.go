package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// A message tree is built from these values:
//
//	*Object      ordered mapping with string keys
//	[]any        sequence
//	string       text leaf
//	json.Number, bool, nil
//
// Key order matters: legal sections render in document order.

// Member is one key/value pair of an Object
type Member struct {
	Key   string
	Value any
}

// Object is a mapping that remembers insertion order
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject creates an Object holding the given members in order
func NewObject(members ...Member) *Object {
	o := &Object{index: make(map[string]int, len(members))}
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Set stores value under key. A new key is appended; an existing key keeps its position.
func (o *Object) Set(key string, value any) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Get returns the value stored under key
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Len returns the number of members
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Keys returns the keys in order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns a copy of the members in order
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	out := make([]Member, len(o.members))
	copy(out, o.members)
	return out
}

// MarshalJSON encodes the object with its keys in order
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", m.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeTree parses a JSON document into a message tree, keeping object key order.
// Numbers are kept as json.Number so they round-trip unchanged.
func DecodeTree(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return value, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T, not string", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil

	case '[':
		items := []any{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	}

	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

// Lookup walks a dotted path ("legal.privacy-policy.sections") through nested objects
func Lookup(tree any, path string) (any, bool) {
	current := tree
	if path == "" {
		return current, true
	}
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(*Object)
		if !ok {
			return nil, false
		}
		current, ok = obj.Get(part)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// LookupString is Lookup restricted to string leaves
func LookupString(tree any, path string) (string, bool) {
	v, ok := Lookup(tree, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
