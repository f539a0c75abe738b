package jsonschema

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json"
)

// resolveLegacyDependencies splits Draft 4-7's overloaded "dependencies"
// keyword into its two cases: an array value behaves like dependentRequired
// for that property, an object value behaves like dependentSchemas. Later
// drafts split these into dedicated keywords directly; this keeps the
// single-keyword surface working for older documents without duplicating
// the evaluator logic in validate.go, which dispatches against the
// resolved maps below exactly like dependentRequired/dependentSchemas.
func (s *Schema) resolveLegacyDependencies(compiler *Compiler, resolveRefs bool) {
	if len(s.Dependencies) == 0 {
		return
	}

	for propName, raw := range s.Dependencies {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 {
			continue
		}
		if trimmed[0] == '[' {
			var required []string
			if err := json.Unmarshal(raw, &required); err != nil {
				continue
			}
			if s.legacyDependentRequired == nil {
				s.legacyDependentRequired = make(map[string][]string)
			}
			s.legacyDependentRequired[propName] = required
			continue
		}

		dep := &Schema{}
		if err := json.Unmarshal(raw, dep); err != nil {
			continue
		}
		dep.initializeSchemaCore(compiler, s, resolveRefs)
		if s.legacyDependentSchemas == nil {
			s.legacyDependentSchemas = make(map[string]*Schema)
		}
		s.legacyDependentSchemas[propName] = dep
	}
}

// evaluateLegacyDependencies evaluates Draft 4-7's "dependencies" keyword,
// mirroring evaluateDependentRequired/evaluateDependentSchemas for the
// resolved maps built by resolveLegacyDependencies.
func evaluateLegacyDependencies(schema *Schema, instance interface{}, dynamicScope *DynamicScope) ([]*EvaluationResult, *EvaluationError) {
	if len(schema.legacyDependentRequired) == 0 && len(schema.legacyDependentSchemas) == 0 {
		return nil, nil
	}

	object, ok := instance.(map[string]interface{})
	if !ok {
		return nil, nil
	}

	var missing []string
	for propName, required := range schema.legacyDependentRequired {
		if _, exists := object[propName]; !exists {
			continue
		}
		for _, req := range required {
			if _, ok := object[req]; !ok {
				missing = append(missing, fmt.Sprintf("'%s' requires '%s'", propName, req))
			}
		}
	}

	var results []*EvaluationResult
	var failed []string
	for propName, depSchema := range schema.legacyDependentSchemas {
		if _, exists := object[propName]; !exists {
			continue
		}
		result, _, _ := depSchema.evaluate(object, dynamicScope)
		if result == nil {
			continue
		}
		//nolint:errcheck
		result.SetEvaluationPath(fmt.Sprintf("/dependencies/%s", propName)).
			SetSchemaLocation(schema.GetSchemaLocation(fmt.Sprintf("/dependencies/%s", propName))).
			SetInstanceLocation("")
		results = append(results, result)
		if !result.IsValid() {
			failed = append(failed, propName)
		}
	}

	if len(missing) == 0 && len(failed) == 0 {
		return results, nil
	}

	return results, NewEvaluationError("dependencies", "dependencies_mismatch",
		"Dependencies not satisfied: {reasons}", map[string]any{
			"reasons": fmt.Sprintf("%v%v", missing, failed),
		})
}
