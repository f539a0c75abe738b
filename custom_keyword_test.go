package jsonschema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evenLengthValidator is a toy CustomValidator used to exercise the
// resolveCustomKeywords/evaluateCustomKeywords wiring: it requires a string
// instance to have even length.
type evenLengthValidator struct{}

func (evenLengthValidator) IsValid(instance any) bool {
	s, ok := instance.(string)
	return ok && len(s)%2 == 0
}

func (v evenLengthValidator) Validate(instance any) *EvaluationError {
	if v.IsValid(instance) {
		return nil
	}
	return NewEvaluationError("evenLength", "even_length_mismatch", "value must have even length", nil)
}

func (v evenLengthValidator) Apply(instance any) (any, []*EvaluationError) {
	if err := v.Validate(instance); err != nil {
		return nil, []*EvaluationError{err}
	}
	return true, nil
}

func evenLengthFactory(parentObject map[string]any, keywordValue any, schemaLocation string) (CustomValidator, error) {
	enabled, _ := keywordValue.(bool)
	if !enabled {
		return nil, fmt.Errorf("evenLength keyword value must be true")
	}
	return evenLengthValidator{}, nil
}

func TestCustomKeywordResolutionAndEvaluation(t *testing.T) {
	compiler := NewCompiler()
	compiler.RegisterKeyword("evenLength", evenLengthFactory)

	schema, err := compiler.Compile([]byte(`{"type": "string", "evenLength": true}`))
	require.NoError(t, err)

	require.Contains(t, schema.customKeywords, "evenLength")

	result := schema.Validate("ab")
	assert.True(t, result.IsValid())

	result = schema.Validate("abc")
	assert.False(t, result.IsValid())
}

func TestCustomKeywordFactoryErrorPropagates(t *testing.T) {
	compiler := NewCompiler()
	compiler.RegisterKeyword("evenLength", evenLengthFactory)

	_, err := compiler.Compile([]byte(`{"type": "string", "evenLength": false}`))
	assert.Error(t, err)
}

func TestNoCustomKeywordsWithoutFactories(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type": "string", "evenLength": true}`))
	require.NoError(t, err)
	assert.Empty(t, schema.customKeywords)
}
