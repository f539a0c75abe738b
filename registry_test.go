package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryInsertAndLookup(t *testing.T) {
	r := NewRegistry()
	schema := &Schema{ID: "http://example.com/a.json"}
	r.Insert("http://example.com/a.json", schema)

	got, ok := r.Lookup("http://example.com/a.json")
	assert.True(t, ok)
	assert.Same(t, schema, got)

	_, ok = r.Lookup("http://example.com/missing.json")
	assert.False(t, ok)
}

func TestRegistryInsertFirstWins(t *testing.T) {
	r := NewRegistry()
	first := &Schema{ID: "http://example.com/a.json"}
	second := &Schema{ID: "http://example.com/a.json-different"}

	r.Insert("http://example.com/a.json", first)
	r.Insert("http://example.com/a.json", second)

	got, ok := r.Lookup("http://example.com/a.json")
	assert.True(t, ok)
	assert.Same(t, first, got, "second insert for the same URI must be a no-op")
}

func TestRegistryInsertIgnoresEmptyURIOrNilSchema(t *testing.T) {
	r := NewRegistry()
	r.Insert("", &Schema{})
	r.Insert("http://example.com/a.json", nil)
	assert.Empty(t, r.URIs())
}

func TestRegistryAnchors(t *testing.T) {
	r := NewRegistry()
	schema := &Schema{ID: "http://example.com/a.json#foo"}
	r.InsertAnchor("http://example.com/a.json", "foo", schema)

	got, ok := r.Anchor("http://example.com/a.json", "foo")
	assert.True(t, ok)
	assert.Same(t, schema, got)

	_, ok = r.Anchor("http://example.com/a.json", "bar")
	assert.False(t, ok)

	_, ok = r.Anchor("http://example.com/other.json", "foo")
	assert.False(t, ok)
}

func TestRegistryAnchorFirstWins(t *testing.T) {
	r := NewRegistry()
	first := &Schema{}
	second := &Schema{}
	r.InsertAnchor("http://example.com/a.json", "foo", first)
	r.InsertAnchor("http://example.com/a.json", "foo", second)

	got, _ := r.Anchor("http://example.com/a.json", "foo")
	assert.Same(t, first, got)
}

func TestRegistryURIs(t *testing.T) {
	r := NewRegistry()
	r.Insert("http://example.com/a.json", &Schema{})
	r.Insert("http://example.com/b.json", &Schema{})

	uris := r.URIs()
	assert.Len(t, uris, 2)
	assert.Contains(t, uris, "http://example.com/a.json")
	assert.Contains(t, uris, "http://example.com/b.json")
}
