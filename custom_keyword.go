package jsonschema

import "fmt"

// resolveCustomKeywords builds a CustomValidator for every keyword name in
// s.Extra that has a registered factory, storing the result on the schema
// so evaluate can run it alongside the built-in keywords. Extra keywords
// with no registered factory remain plain annotations, as before.
func (s *Schema) resolveCustomKeywords(factories map[string]CustomKeywordFactory) error {
	if len(factories) == 0 || len(s.Extra) == 0 {
		return nil
	}
	for name, factory := range factories {
		value, present := s.Extra[name]
		if !present {
			continue
		}
		validator, err := factory(s.Extra, value, fmt.Sprintf("/%s", name))
		if err != nil {
			return fmt.Errorf("jsonschema: custom keyword %q: %w", name, err)
		}
		if s.customKeywords == nil {
			s.customKeywords = make(map[string]CustomValidator)
		}
		s.customKeywords[name] = validator
	}
	return nil
}

// evaluateCustomKeywords runs every resolved custom keyword validator
// against instance, merging their errors into result the same way a
// built-in keyword group does.
func evaluateCustomKeywords(schema *Schema, instance any, result *EvaluationResult) {
	for name, validator := range schema.customKeywords {
		if err := validator.Validate(instance); err != nil {
			//nolint:errcheck
			result.AddError(err)
		}
		_ = name
	}
}
