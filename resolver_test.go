package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverPushIsImmutable(t *testing.T) {
	registry := NewRegistry()
	root := NewResolver(registry, "http://example.com/root.json")

	nested := root.Push("http://example.com/nested.json")

	assert.Equal(t, "http://example.com/root.json", root.BaseURI())
	assert.Equal(t, "http://example.com/nested.json", nested.BaseURI())
	assert.Equal(t, []string{"http://example.com/root.json"}, root.Scope())
	assert.Equal(t, []string{"http://example.com/root.json", "http://example.com/nested.json"}, nested.Scope())
}

func TestResolverVisited(t *testing.T) {
	registry := NewRegistry()
	root := NewResolver(registry, "http://example.com/root.json")
	nested := root.Push("http://example.com/nested.json")

	assert.True(t, root.Visited("http://example.com/root.json"))
	assert.False(t, root.Visited("http://example.com/nested.json"))
	assert.True(t, nested.Visited("http://example.com/root.json"))
	assert.True(t, nested.Visited("http://example.com/nested.json"))
}

func TestResolverResolveReferenceByURI(t *testing.T) {
	registry := NewRegistry()
	target := &Schema{ID: "http://example.com/other.json"}
	registry.Insert("http://example.com/other.json", target)

	r := NewResolver(registry, "http://example.com/root.json")
	got, err := r.ResolveReference("other.json")
	require.NoError(t, err)
	assert.Same(t, target, got)
}

func TestResolverResolveReferenceByAnchor(t *testing.T) {
	registry := NewRegistry()
	target := &Schema{}
	registry.InsertAnchor("http://example.com/root.json", "foo", target)

	r := NewResolver(registry, "http://example.com/root.json")
	got, err := r.ResolveReference("#foo")
	require.NoError(t, err)
	assert.Same(t, target, got)
}

func TestResolverResolveReferenceMissing(t *testing.T) {
	registry := NewRegistry()
	r := NewResolver(registry, "http://example.com/root.json")

	_, err := r.ResolveReference("missing.json")
	assert.ErrorIs(t, err, ErrUnretrievableResource)

	_, err = r.ResolveReference("#missing-anchor")
	assert.ErrorIs(t, err, ErrNoSuchAnchor)
}
