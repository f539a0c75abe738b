package jsonschema

import (
	"fmt"

	"github.com/go-schemacore/jsonschema/internal/uriref"
)

// Resolver is an immutable snapshot of in-progress reference resolution:
// the current base URI and the stack of dynamic scopes visited to reach
// it. Every operation returns a new Resolver rather than mutating the
// receiver, so a caller can hold on to a Resolver value from an outer
// scope while a nested resolution proceeds independently. It is used to
// resolve $ref; $dynamicRef/$recursiveRef are resolved at evaluation time
// against the DynamicScope instead.
type Resolver struct {
	registry *Registry
	baseURI  string
	scope    []string // absolute URIs of resources entered, outermost first
	seen     map[string]bool
}

// NewResolver creates a Resolver rooted at baseURI against registry.
func NewResolver(registry *Registry, baseURI string) Resolver {
	return Resolver{
		registry: registry,
		baseURI:  baseURI,
		scope:    []string{baseURI},
		seen:     map[string]bool{baseURI: true},
	}
}

// Push returns a new Resolver with uri appended to the dynamic scope and
// set as the current base URI. It does not mutate r.
func (r Resolver) Push(uri string) Resolver {
	next := Resolver{
		registry: r.registry,
		baseURI:  uri,
		scope:    append(append([]string{}, r.scope...), uri),
		seen:     make(map[string]bool, len(r.seen)+1),
	}
	for k := range r.seen {
		next.seen[k] = true
	}
	next.seen[uri] = true
	return next
}

// Visited reports whether uri has already been entered in this resolution
// chain, letting callers detect $ref cycles before recursing further.
func (r Resolver) Visited(uri string) bool {
	return r.seen[uri]
}

// BaseURI returns the resolver's current base URI.
func (r Resolver) BaseURI() string { return r.baseURI }

// Scope returns the dynamic scope stack, outermost first.
func (r Resolver) Scope() []string { return append([]string{}, r.scope...) }

// ResolveReference resolves ref (a $ref/$dynamicRef/$recursiveRef value)
// against the resolver's base URI: absolute-URI resolution per RFC 3986
// §5, then either JSON Pointer or plain-name anchor fragment resolution
// against the registry.
func (r Resolver) ResolveReference(ref string) (*Schema, error) {
	target, err := uriref.ResolveAgainst(r.baseURI, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidReference, err)
	}

	base, fragment := splitRef(target)
	if fragment == "" || isJSONPointer(fragment) {
		schema, ok := r.registry.Lookup(base)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnretrievableResource, base)
		}
		if fragment == "" {
			return schema, nil
		}
		return schema.resolveJSONPointer(fragment)
	}

	schema, ok := r.registry.Anchor(base, fragment)
	if !ok {
		return nil, fmt.Errorf("%w: %s#%s", ErrNoSuchAnchor, base, fragment)
	}
	return schema, nil
}
