package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyDependenciesArrayForm(t *testing.T) {
	compiler := NewCompiler()
	compiler.DefaultDraft = Draft7
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"dependencies": {
			"credit_card": ["billing_address"]
		}
	}`))
	require.NoError(t, err)
	require.Equal(t, []string{"billing_address"}, schema.legacyDependentRequired["credit_card"])

	result := schema.Validate(map[string]interface{}{"credit_card": "1234"})
	assert.False(t, result.IsValid())

	result = schema.Validate(map[string]interface{}{"credit_card": "1234", "billing_address": "x"})
	assert.True(t, result.IsValid())

	result = schema.Validate(map[string]interface{}{"billing_address": "x"})
	assert.True(t, result.IsValid(), "dependency only applies when the triggering property is present")
}

func TestLegacyDependenciesSchemaForm(t *testing.T) {
	compiler := NewCompiler()
	compiler.DefaultDraft = Draft7
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"dependencies": {
			"credit_card": {
				"properties": {
					"billing_address": {"type": "string"}
				},
				"required": ["billing_address"]
			}
		}
	}`))
	require.NoError(t, err)
	require.Contains(t, schema.legacyDependentSchemas, "credit_card")

	result := schema.Validate(map[string]interface{}{"credit_card": "1234", "billing_address": 5})
	assert.False(t, result.IsValid())

	result = schema.Validate(map[string]interface{}{"credit_card": "1234", "billing_address": "5th Ave"})
	assert.True(t, result.IsValid())
}

func TestDependentSchemasAndRequiredUsedInsteadFor2020_12(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"dependentRequired": {
			"credit_card": ["billing_address"]
		}
	}`))
	require.NoError(t, err)
	assert.Empty(t, schema.legacyDependentRequired, "2020-12 schemas must not populate the legacy map")

	result := schema.Validate(map[string]interface{}{"credit_card": "1234"})
	assert.False(t, result.IsValid())
}
