package jsonschema

import "iter"

// Validator wraps a compiled root schema together with the resolved
// Options it was compiled with, and is the primary entry point for
// validating instances: IsValid for a fast yes/no answer, Validate/
// IterErrors for a droppable error stream, and Apply for the full
// annotation/error output used to build "flag" or "basic" output.
type Validator struct {
	schema *Schema
}

// NewValidator wraps an already-compiled Schema as a Validator. Compiler.
// Compile returns a *Schema, not a Validator; this constructor wraps that
// result, or a *Schema built through the lower-level constructor API.
func NewValidator(schema *Schema) *Validator {
	return &Validator{schema: schema}
}

// Schema exposes the underlying compiled schema node, for callers that
// want the richer EvaluationResult-based API schema.go/validate.go
// already provide.
func (v *Validator) Schema() *Schema { return v.schema }

// IsValid reports whether instance satisfies the schema. It delegates to
// the same evaluation path as Validate/Apply and only reads the resulting
// boolean; it does not yet short-circuit the underlying tree walk at the
// first failing keyword (see DESIGN.md's Open Questions).
func (v *Validator) IsValid(instance any) bool {
	return v.schema.Validate(instance).IsValid()
}

// Validate returns a droppable iterator over every validation error found
// for instance. The iterator may be abandoned at any point (a `for range`
// loop with a `break`) without leaking partial state, since the full
// result tree is built eagerly and the iterator only walks it.
func (v *Validator) Validate(instance any) iter.Seq[*EvaluationError] {
	result := v.schema.Validate(instance)
	return func(yield func(*EvaluationError) bool) {
		var walk func(r *EvaluationResult) bool
		walk = func(r *EvaluationResult) bool {
			for _, err := range r.Errors {
				if !yield(err) {
					return false
				}
			}
			for _, detail := range r.Details {
				if !walk(detail) {
					return false
				}
			}
			return true
		}
		walk(result)
	}
}

// IterErrors is an alias for Validate, kept distinct for call sites that
// want to make clear they are iterating errors rather than validating a
// boolean outcome.
func (v *Validator) IterErrors(instance any) iter.Seq[*EvaluationError] {
	return v.Validate(instance)
}

// Apply runs the full evaluation, collecting annotations as well as
// errors, and returns an Output that can be rendered as "flag" or
// "basic" output.
func (v *Validator) Apply(instance any) *Output {
	result := v.schema.Validate(instance)
	//nolint:errcheck
	result.CollectAnnotations()
	return &Output{result: result}
}
