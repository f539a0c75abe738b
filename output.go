package jsonschema

// OutputUnit is one entry of a "basic" output per the standard's output
// format vocabulary: a keyword location (evaluation path), an absolute
// keyword location (schema resource URI + pointer), the instance location
// it applies to, and either an annotation value or an error message.
// "detailed" and "verbose" output are not implemented.
type OutputUnit struct {
	Valid                   bool   `json:"valid"`
	KeywordLocation         string `json:"keywordLocation"`
	AbsoluteKeywordLocation string `json:"absoluteKeywordLocation,omitempty"`
	InstanceLocation        string `json:"instanceLocation"`
	Error                   string `json:"error,omitempty"`
	Annotations             any    `json:"annotations,omitempty"`
}

// BasicOutput is the top-level "basic" output document: "valid" plus
// either an "annotations" array (when Valid) or an "errors" array (when
// not) of OutputUnit, matching the JSON shape of the standard's "basic"
// output format.
type BasicOutput struct {
	Valid       bool         `json:"valid"`
	Annotations []OutputUnit `json:"annotations,omitempty"`
	Errors      []OutputUnit `json:"errors,omitempty"`
}

// Output wraps a completed evaluation, exposing both the "flag" and
// "basic" output formats over the same underlying EvaluationResult tree.
type Output struct {
	result *EvaluationResult
}

// Flag returns the single boolean "flag" output format.
func (o *Output) Flag() bool {
	if o == nil || o.result == nil {
		return false
	}
	return o.result.IsValid()
}

// Basic returns the flattened "basic" output format: one unit per
// evaluated keyword location, successes included as annotations and
// failures as errors.
func (o *Output) Basic() *BasicOutput {
	basic := &BasicOutput{Valid: o.Flag()}
	if o == nil || o.result == nil {
		return basic
	}
	var walk func(r *EvaluationResult)
	walk = func(r *EvaluationResult) {
		unit := OutputUnit{
			Valid:                   r.IsValid(),
			KeywordLocation:         r.EvaluationPath,
			AbsoluteKeywordLocation: r.SchemaLocation,
			InstanceLocation:        r.InstanceLocation,
		}
		for _, err := range r.Errors {
			unit.Error = err.Error()
			basic.Errors = append(basic.Errors, unit)
			unit.Error = ""
		}
		if len(r.Errors) == 0 {
			for keyword, annotation := range r.Annotations {
				unit.Annotations = map[string]any{keyword: annotation}
				basic.Annotations = append(basic.Annotations, unit)
				unit.Annotations = nil
			}
		}
		for _, detail := range r.Details {
			walk(detail)
		}
	}
	walk(o.result)
	return basic
}

// Errors returns every EvaluationError produced by the evaluation, in
// document order, for callers that want the raw error set without the
// output-format envelope.
func (o *Output) Errors() []*EvaluationError {
	if o == nil || o.result == nil {
		return nil
	}
	var errs []*EvaluationError
	var walk func(r *EvaluationResult)
	walk = func(r *EvaluationResult) {
		for _, err := range r.Errors {
			errs = append(errs, err)
		}
		for _, detail := range r.Details {
			walk(detail)
		}
	}
	walk(o.result)
	return errs
}
