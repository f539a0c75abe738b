package jsonschema

// EvaluateFormat checks if the data conforms to the format specified in the schema.
//   - The "format" keyword defines the data format expected for a value.
//   - The function uses compiler-registered custom formats first, then falls back to the global `Formats` map.
//   - Whether a mismatch is an assertion error or a no-op annotation depends on the schema's
//     draft (Draft4-7 assert by default, 2019-09+ are annotation-only by default) unless the
//     compiler's ValidateFormats or AssertFormat override that posture.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-format
func evaluateFormat(schema *Schema, value interface{}) *EvaluationError {
	if schema.Format == nil {
		return nil
	}

	formatName := *schema.Format
	var formatDef *FormatDef
	var customValidator func(interface{}) bool

	// 1. Check compiler-specific custom formats first
	if schema.compiler != nil {
		schema.compiler.customFormatsRW.RLock()
		formatDef = schema.compiler.customFormats[formatName]
		schema.compiler.customFormatsRW.RUnlock()
	}

	if formatDef != nil {
		// Found in custom formats
		if formatDef.Type != "" {
			valueType := getDataType(value)
			if !matchesType(valueType, formatDef.Type) {
				return nil // Type doesn't match, so skip validation
			}
		}
		customValidator = formatDef.Validate
	} else if globalValidator, ok := Formats[formatName]; ok {
		// Fallback to global formats
		customValidator = globalValidator
	}

	// If a validator was found (either custom or global)
	if customValidator != nil {
		if !customValidator(value) {
			if schema.assertsFormat() {
				return NewEvaluationError("format", "format_mismatch", "Value does not match format '{format}'", map[string]interface{}{"format": formatName})
			}
		}
		return nil // Validation passed or not asserted
	}

	// No validator found for formatName.
	if schema.ignoresUnknownFormats() {
		return nil
	}
	if schema.assertsFormat() {
		return NewEvaluationError("format", "unknown_format", "Unknown format '{format}'", map[string]interface{}{"format": formatName})
	}

	return nil // Default behavior: ignore unknown formats
}

// assertsFormat reports whether format validation failures should produce
// an assertion error for this schema, resolving the compiler's explicit
// ValidateFormats override, the legacy AssertFormat flag, and the draft's
// own default assertion posture, in that order.
func (s *Schema) assertsFormat() bool {
	if s.compiler == nil {
		return s.draft.assertsFormatByDefault()
	}
	if s.compiler.ValidateFormats != nil {
		return *s.compiler.ValidateFormats
	}
	if s.compiler.AssertFormat {
		return true
	}
	return s.draft.assertsFormatByDefault()
}

// ignoresUnknownFormats reports whether an unrecognized format name should
// be silently accepted rather than treated as a validation error.
func (s *Schema) ignoresUnknownFormats() bool {
	if s.compiler == nil {
		return true
	}
	return s.compiler.IgnoreUnknownFormats
}

// matchesType checks if a value type matches the required type
func matchesType(valueType, requiredType string) bool {
	if requiredType == "" {
		return true // No type restriction
	}

	// Special handling: integer is also considered number
	if requiredType == "number" && valueType == "integer" {
		return true
	}

	return valueType == requiredType
}
