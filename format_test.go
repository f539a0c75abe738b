package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIDNHostname(t *testing.T) {
	assert.True(t, IsIDNHostname("example.com"))
	assert.True(t, IsIDNHostname("例え.テスト"))
	assert.False(t, IsIDNHostname(""))
	assert.True(t, IsIDNHostname(42), "format checks are vacuously true for non-string instances")
	assert.False(t, IsIDNHostname("-leading-hyphen.com"))
}

func TestIsIDNEmail(t *testing.T) {
	assert.True(t, IsIDNEmail("user@example.com"))
	assert.True(t, IsIDNEmail("用户@例え.テスト"))
	assert.False(t, IsIDNEmail("not-an-email"))
	assert.True(t, IsIDNEmail(42), "format checks are vacuously true for non-string instances")
}

func TestAssertsFormatDraftDefault(t *testing.T) {
	compiler := NewCompiler()
	compiler.DefaultDraft = Draft7
	schema, err := compiler.Compile([]byte(`{"type": "string", "format": "email"}`))
	assert.NoError(t, err)
	assert.True(t, schema.assertsFormat(), "draft 7 asserts format by default")

	result := schema.Validate("not-an-email")
	assert.False(t, result.IsValid())
}

func TestAssertsFormatDraft2020_12DefaultsToAnnotation(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type": "string", "format": "email"}`))
	assert.NoError(t, err)
	assert.False(t, schema.assertsFormat(), "2020-12 is annotation-only by default")

	result := schema.Validate("not-an-email")
	assert.True(t, result.IsValid(), "format mismatches are not assertion failures by default under 2020-12")
}

func TestAssertsFormatCompilerOverride(t *testing.T) {
	compiler := NewCompiler()
	enabled := true
	compiler.ValidateFormats = &enabled
	schema, err := compiler.Compile([]byte(`{"type": "string", "format": "email"}`))
	assert.NoError(t, err)
	assert.True(t, schema.assertsFormat())

	result := schema.Validate("not-an-email")
	assert.False(t, result.IsValid())
}
