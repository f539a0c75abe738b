package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieverFunc(t *testing.T) {
	var r Retriever = RetrieverFunc(func(uri string) ([]byte, error) {
		return []byte(`{"type":"string"}`), nil
	})
	doc, err := r.Retrieve("http://example.com/schema.json")
	require.NoError(t, err)
	assert.Equal(t, `{"type":"string"}`, string(doc))
}

func TestNoopRetrieverAlwaysFails(t *testing.T) {
	_, err := NoopRetriever.Retrieve("http://example.com/schema.json")
	assert.ErrorIs(t, err, ErrUnretrievableResource)
}

func TestMapRetriever(t *testing.T) {
	m := MapRetriever{
		"http://example.com/schema.json": []byte(`{"type":"object"}`),
	}
	doc, err := m.Retrieve("http://example.com/schema.json")
	require.NoError(t, err)
	assert.Equal(t, `{"type":"object"}`, string(doc))

	_, err = m.Retrieve("http://example.com/missing.json")
	assert.ErrorIs(t, err, ErrUnretrievableResource)
}
