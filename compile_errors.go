package jsonschema

import (
	"errors"
	"fmt"
)

// Compile-time error taxonomy. The Resolver, the Retriever implementations
// and meta-schema validation (CompileValidator) return errors wrapping these
// sentinels; where one reaches Compile or CompileValidator, that call
// returns it with a nil schema. ErrInvalidKeywordValue, ErrInvalidAnchor,
// ErrReferenceCycle and ErrInvalidFormatName are declared but not returned
// by any code path in this package. They are kept as a flat,
// category-commented sentinel block, in the same spirit as the surviving
// part of errors.go, but scoped to the compile-time surface of this package
// rather than mixed in with runtime/type-conversion errors.
var (
	// Schema document errors.
	ErrInvalidSchema      = errors.New("jsonschema: schema document is not valid JSON Schema")
	ErrUnknownDraft       = errors.New("jsonschema: unable to determine the draft of a schema resource")
	ErrInvalidKeywordValue = errors.New("jsonschema: keyword has a value of the wrong type")

	// Reference resolution errors.
	ErrInvalidReference      = errors.New("jsonschema: reference could not be resolved against its base URI")
	ErrUnretrievableResource = errors.New("jsonschema: referenced resource is not registered and could not be retrieved")
	ErrNoSuchAnchor          = errors.New("jsonschema: referenced anchor does not exist in the target resource")
	ErrInvalidAnchor         = errors.New("jsonschema: anchor name is not a valid anchor-name token")
	ErrReferenceCycle        = errors.New("jsonschema: reference resolution formed a cycle")

	// Meta-schema / format errors.
	ErrMetaSchemaFailure = errors.New("jsonschema: schema failed validation against its draft's meta-schema")
	ErrInvalidFormatName = errors.New("jsonschema: format name is not recognized and IgnoreUnknownFormats is false")

	// ErrRegexValidation heads the joined error Compile returns when a
	// pattern or patternProperties key is not valid RE2 syntax.
	ErrRegexValidation = errors.New("jsonschema: schema contains invalid regular expressions")
)

// RegexPatternError reports one invalid regular expression found in a schema.
type RegexPatternError struct {
	Keyword  string // "pattern" or "patternProperties"
	Location string // JSON Pointer fragment of the offending keyword
	Pattern  string
	Err      error
}

func (e *RegexPatternError) Error() string {
	return fmt.Sprintf("jsonschema: invalid %s regular expression %q at %s: %v", e.Keyword, e.Pattern, e.Location, e.Err)
}

func (e *RegexPatternError) Unwrap() error { return e.Err }
