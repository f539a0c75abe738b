package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDraft(t *testing.T) {
	cases := []struct {
		uri  string
		want Draft
	}{
		{"http://json-schema.org/draft-04/schema#", Draft4},
		{"https://json-schema.org/draft-04/schema#", Draft4},
		{"http://json-schema.org/draft-06/schema#", Draft6},
		{"http://json-schema.org/draft-07/schema#", Draft7},
		{"https://json-schema.org/draft/2019-09/schema", Draft2019_09},
		{"https://json-schema.org/draft/2020-12/schema", Draft2020_12},
		{"", DraftUnknown},
		{"https://example.com/not-a-draft", DraftUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DetectDraft(c.uri), "for %s", c.uri)
	}
}

func TestDraftString(t *testing.T) {
	assert.Equal(t, "draft4", Draft4.String())
	assert.Equal(t, "2020-12", Draft2020_12.String())
	assert.Equal(t, "unknown", DraftUnknown.String())
}

func TestDraftBehaviorTable(t *testing.T) {
	assert.True(t, Draft4.usesLegacyDependencies())
	assert.False(t, Draft2020_12.usesLegacyDependencies())

	assert.True(t, Draft2019_09.usesDependentSchemas())
	assert.True(t, Draft2020_12.usesDependentSchemas())
	assert.False(t, Draft7.usesDependentSchemas())

	assert.True(t, Draft2019_09.supportsRecursiveRef())
	assert.False(t, Draft2020_12.supportsRecursiveRef())

	assert.True(t, Draft2020_12.supportsDynamicRef())
	assert.False(t, Draft2019_09.supportsDynamicRef())

	assert.True(t, Draft4.refIgnoresSiblings())
	assert.True(t, Draft7.refIgnoresSiblings())
	assert.False(t, Draft2019_09.refIgnoresSiblings())
	assert.False(t, Draft2020_12.refIgnoresSiblings())

	assert.True(t, Draft4.assertsFormatByDefault())
	assert.False(t, Draft2020_12.assertsFormatByDefault())

	assert.False(t, Draft4.assertsContentByDefault())
	assert.True(t, Draft6.assertsContentByDefault())
	assert.True(t, Draft7.assertsContentByDefault())

	assert.Equal(t, "id", Draft4.idKeyword())
	assert.Equal(t, "$id", Draft6.idKeyword())
}

func TestDraftMetaSchemaURI(t *testing.T) {
	assert.Equal(t, "http://json-schema.org/draft-04/schema#", Draft4.MetaSchemaURI())
	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", Draft2020_12.MetaSchemaURI())
}

func TestUnknownDraftFallsBackToLatestBehavior(t *testing.T) {
	// DraftUnknown has no table row; info() falls back to Draft2020_12's row
	// so the evaluator always has a valid behavior set to consult.
	assert.Equal(t, Draft2020_12.idKeyword(), DraftUnknown.idKeyword())
	assert.True(t, DraftUnknown.supportsDynamicRef())
}
