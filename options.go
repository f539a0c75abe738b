package jsonschema

// CustomValidator is the contract a custom keyword factory (see
// CustomKeywordFactory) must return: the three-tier evaluation contract
// every built-in keyword validator follows internally.
type CustomValidator interface {
	// IsValid reports whether instance satisfies the keyword, without
	// building any error detail. Schema evaluation calls Validate, not
	// IsValid, for custom keywords.
	IsValid(instance any) bool
	// Validate returns the first error, or nil if instance is valid.
	Validate(instance any) *EvaluationError
	// Apply returns every annotation/error this keyword produces, for the
	// "basic" output format.
	Apply(instance any) (annotation any, errs []*EvaluationError)
}

// CustomKeywordFactory builds a CustomValidator from a raw keyword value.
// parentObject is the raw JSON object the keyword was found in (so a
// custom keyword can consult sibling keywords), keywordValue is this
// keyword's own decoded value, and schemaLocation is the evaluation-path
// this keyword occupies.
type CustomKeywordFactory func(parentObject map[string]any, keywordValue any, schemaLocation string) (CustomValidator, error)

// ContentCodec pairs a fast membership check with a decoder for a
// contentEncoding/contentMediaType registration. ApplyOptions registers
// only Decode; Check is not consulted.
type ContentCodec struct {
	Check  func(string) bool
	Decode func(string) ([]byte, error)
}

// Options configures a Validator beyond what the lower-level Compiler
// knobs (AssertFormat, Decoders, MediaTypes, Loaders) already cover. A
// Compiler built via NewCompiler works unchanged without ever touching
// Options; Options exists for the spec-shaped configuration surface that
// layers on top.
type Options struct {
	// Draft assumed for schemas with no $schema keyword. Zero value means
	// the compiler's DefaultDraft (itself defaulting to Draft2020_12).
	Draft Draft

	// Retriever fetches external resources not pre-registered via
	// Resources. With a nil Retriever only the Compiler's Loaders are used
	// (http and https by default); other schemes fail with
	// ErrNoLoaderRegistered.
	Retriever Retriever

	// Resources pre-registers raw schema documents under absolute URIs,
	// so $ref targets resolve without any network access.
	Resources map[string][]byte

	// Formats registers additional custom format checkers, merged with
	// the built-in table.
	Formats map[string]func(any) bool

	// ValidateFormats overrides the draft's default format-assertion
	// posture. Nil means "use the draft default."
	ValidateFormats *bool

	// IgnoreUnknownFormats controls whether an unrecognized format name is
	// silently accepted (true) or, where format is asserted, fails
	// validation with an "unknown_format" error (false). Compile does not
	// check format names. ApplyOptions copies this field as is, so its zero
	// value (false) replaces NewCompiler's default of true.
	IgnoreUnknownFormats bool

	// ContentMediaTypeChecks / ContentEncodingChecks register custom
	// content codecs beyond the Compiler's Decoders/MediaTypes maps; only
	// each entry's Decode is registered.
	ContentMediaTypeChecks map[string]ContentCodec
	ContentEncodingChecks  map[string]ContentCodec

	// Keywords registers custom keyword factories, consulted before the
	// built-in dispatch table for any keyword name present here.
	Keywords map[string]CustomKeywordFactory

	// ValidateSchema opts into validating compiled schemas against their
	// draft's meta-schema at compile time.
	ValidateSchema bool
}
