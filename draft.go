package jsonschema

import "strings"

// Draft identifies which JSON Schema specification version a schema
// resource was authored against. It governs the id keyword name, which
// keywords are recognized subresources, whether format and content
// assertions apply by default, and which reference keywords exist.
type Draft int

const (
	// DraftUnknown is the zero value; DetectDraft never returns it for a
	// recognized $schema URI, and compilation falls back to Draft2020_12.
	DraftUnknown Draft = iota
	Draft4
	Draft6
	Draft7
	Draft2019_09
	Draft2020_12
)

func (d Draft) String() string {
	switch d {
	case Draft4:
		return "draft4"
	case Draft6:
		return "draft6"
	case Draft7:
		return "draft7"
	case Draft2019_09:
		return "2019-09"
	case Draft2020_12:
		return "2020-12"
	default:
		return "unknown"
	}
}

// metaSchemaURIs maps each draft to its canonical $schema identifier.
var metaSchemaURIs = map[Draft]string{
	Draft4:       "http://json-schema.org/draft-04/schema#",
	Draft6:       "http://json-schema.org/draft-06/schema#",
	Draft7:       "http://json-schema.org/draft-07/schema#",
	Draft2019_09: "https://json-schema.org/draft/2019-09/schema",
	Draft2020_12: "https://json-schema.org/draft/2020-12/schema",
}

var schemaURIToDraft = func() map[string]Draft {
	m := make(map[string]Draft, len(metaSchemaURIs))
	for d, uri := range metaSchemaURIs {
		m[uri] = d
	}
	return m
}()

// DetectDraft maps a $schema URI to the Draft it declares. Trailing
// fragment markers ("#") and http/https scheme differences are tolerated.
// Returns DraftUnknown if the URI is not one of the five recognized drafts.
func DetectDraft(schemaURI string) Draft {
	if schemaURI == "" {
		return DraftUnknown
	}
	normalized := schemaURI
	for _, prefix := range []string{"http://", "https://"} {
		if len(normalized) > len(prefix) && normalized[:len(prefix)] == prefix {
			normalized = normalized[len(prefix):]
			break
		}
	}
	normalized = strings.TrimSuffix(normalized, "#")
	for uri, d := range schemaURIToDraft {
		candidate := uri
		for _, prefix := range []string{"http://", "https://"} {
			if len(candidate) > len(prefix) && candidate[:len(prefix)] == prefix {
				candidate = candidate[len(prefix):]
				break
			}
		}
		candidate = strings.TrimSuffix(candidate, "#")
		if candidate == normalized {
			return d
		}
	}
	return DraftUnknown
}

// MetaSchemaURI returns the canonical $schema URI for d.
func (d Draft) MetaSchemaURI() string {
	return metaSchemaURIs[d]
}

// draftInfo is the per-draft behavior table consulted by the compiler and
// the evaluator: which keyword spells $id, whether dependencies is still a
// single overloaded keyword, whether $recursiveRef/$dynamicRef exist, and
// the default format/content assertion posture.
type draftInfo struct {
	idKeyword              string
	hasDependencies        bool // Draft 4-7: single "dependencies" keyword
	hasDependentSchemas    bool // 2019-09+: split dependentSchemas/dependentRequired
	hasRecursiveRef        bool // 2019-09 only
	hasDynamicRef          bool // 2020-12 only
	refSiblingsIgnored     bool // Draft 4-7: $ref suppresses sibling keywords
	assertFormatByDefault  bool // Draft 4-7: format is a validation assertion by default
	assertContentByDefault bool // Draft 6-7: contentEncoding/contentMediaType assert
}

var draftTable = map[Draft]draftInfo{
	Draft4: {
		idKeyword:             "id",
		hasDependencies:        true,
		refSiblingsIgnored:     true,
		assertFormatByDefault:  true,
		assertContentByDefault: false,
	},
	Draft6: {
		idKeyword:             "$id",
		hasDependencies:        true,
		refSiblingsIgnored:     true,
		assertFormatByDefault:  true,
		assertContentByDefault: true,
	},
	Draft7: {
		idKeyword:             "$id",
		hasDependencies:        true,
		refSiblingsIgnored:     true,
		assertFormatByDefault:  true,
		assertContentByDefault: true,
	},
	Draft2019_09: {
		idKeyword:           "$id",
		hasDependentSchemas: true,
		hasRecursiveRef:     true,
	},
	Draft2020_12: {
		idKeyword:           "$id",
		hasDependentSchemas: true,
		hasDynamicRef:       true,
	},
}

func (d Draft) info() draftInfo {
	if info, ok := draftTable[d]; ok {
		return info
	}
	return draftTable[Draft2020_12]
}

func (d Draft) idKeyword() string                { return d.info().idKeyword }
func (d Draft) usesLegacyDependencies() bool      { return d.info().hasDependencies }
func (d Draft) usesDependentSchemas() bool        { return d.info().hasDependentSchemas }
func (d Draft) supportsRecursiveRef() bool        { return d.info().hasRecursiveRef }
func (d Draft) supportsDynamicRef() bool          { return d.info().hasDynamicRef }
func (d Draft) refIgnoresSiblings() bool          { return d.info().refSiblingsIgnored }
func (d Draft) assertsFormatByDefault() bool      { return d.info().assertFormatByDefault }
func (d Draft) assertsContentByDefault() bool     { return d.info().assertContentByDefault }
