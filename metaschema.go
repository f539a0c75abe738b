package jsonschema

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/go-json-experiment/json"
)

//go:embed metaschemas/draft4.json
var metaSchemaDraft4 []byte

//go:embed metaschemas/draft6.json
var metaSchemaDraft6 []byte

//go:embed metaschemas/draft7.json
var metaSchemaDraft7 []byte

//go:embed metaschemas/2019-09.json
var metaSchemaDraft201909 []byte

//go:embed metaschemas/2020-12.json
var metaSchemaDraft202012 []byte

func metaSchemaDocument(draft Draft) []byte {
	switch draft {
	case Draft4:
		return metaSchemaDraft4
	case Draft6:
		return metaSchemaDraft6
	case Draft7:
		return metaSchemaDraft7
	case Draft2019_09:
		return metaSchemaDraft201909
	default:
		return metaSchemaDraft202012
	}
}

var metaValidatorFor = sync.OnceValues(func() (map[Draft]*Schema, error) {
	result := make(map[Draft]*Schema, 5)
	for _, draft := range []Draft{Draft4, Draft6, Draft7, Draft2019_09, Draft2020_12} {
		compiler := NewCompiler()
		compiler.DefaultDraft = draft
		schema, err := compiler.Compile(metaSchemaDocument(draft))
		if err != nil {
			return nil, fmt.Errorf("jsonschema: bootstrapping %s meta-schema: %w", draft, err)
		}
		result[draft] = schema
	}
	return result, nil
})

// RegisterMetaSchemas compiles and registers all five bundled meta-schema
// documents into compiler under their canonical $schema URIs, so user
// schemas may $ref them directly. Not done automatically by NewCompiler,
// since the meta-validators themselves are built via NewCompiler with
// ValidateAgainstMetaSchema left false - registering unconditionally would
// make every compiler pay that one-time cost even when never needed.
func RegisterMetaSchemas(compiler *Compiler) error {
	for _, draft := range []Draft{Draft4, Draft6, Draft7, Draft2019_09, Draft2020_12} {
		if _, err := compiler.Compile(metaSchemaDocument(draft), draft.MetaSchemaURI()); err != nil {
			return fmt.Errorf("jsonschema: registering %s meta-schema: %w", draft, err)
		}
	}
	return nil
}

// validateAgainstMetaSchema checks that jsonSchema is itself a valid
// instance of its draft's meta-schema. Meta-validators are built with
// ValidateAgainstMetaSchema left false, breaking the bootstrap cycle, and
// memoized process-wide since they never change.
func validateAgainstMetaSchema(jsonSchema []byte, draft Draft) error {
	validators, err := metaValidatorFor()
	if err != nil {
		return err
	}
	meta, ok := validators[draft]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDraft, draft)
	}

	var instance any
	if err := json.Unmarshal(jsonSchema, &instance); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSchema, err)
	}

	result := meta.Validate(instance)
	if !result.IsValid() {
		return fmt.Errorf("%w: %s", ErrMetaSchemaFailure, result.Error())
	}
	return nil
}
