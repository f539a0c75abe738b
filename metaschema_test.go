package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetaSchemas(t *testing.T) {
	compiler := NewCompiler()
	require.NoError(t, RegisterMetaSchemas(compiler))

	schema, err := compiler.GetSchema(Draft2020_12.MetaSchemaURI())
	require.NoError(t, err)
	assert.NotNil(t, schema)

	schema, err = compiler.GetSchema(Draft4.MetaSchemaURI())
	require.NoError(t, err)
	assert.NotNil(t, schema)
}

func TestValidateAgainstMetaSchemaAcceptsWellFormedSchema(t *testing.T) {
	err := validateAgainstMetaSchema([]byte(`{"type": "object", "properties": {"name": {"type": "string"}}}`), Draft2020_12)
	assert.NoError(t, err)
}

func TestValidateAgainstMetaSchemaRejectsMalformedSchema(t *testing.T) {
	err := validateAgainstMetaSchema([]byte(`{"type": 5}`), Draft2020_12)
	assert.ErrorIs(t, err, ErrMetaSchemaFailure)
}

func TestCompileValidatorWithMetaSchemaValidation(t *testing.T) {
	compiler := NewCompiler()
	compiler.ValidateAgainstMetaSchema = true

	_, err := compiler.CompileValidator([]byte(`{"type": "string"}`))
	assert.NoError(t, err)

	_, err = compiler.CompileValidator([]byte(`{"type": 5}`))
	assert.Error(t, err)
}
