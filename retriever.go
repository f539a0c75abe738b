package jsonschema

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Retriever fetches the raw JSON document for a schema resource not
// already registered with the Compiler, keyed by absolute URI. The
// Compiler first tries Compiler.Loaders (scheme -> loader func) for the
// URI's scheme and falls back to Compiler.Retriever only when no loader
// is registered for that scheme; there is no default Retriever.
type Retriever interface {
	Retrieve(uri string) ([]byte, error)
}

// RetrieverFunc adapts a function to the Retriever interface.
type RetrieverFunc func(uri string) ([]byte, error)

// Retrieve implements Retriever.
func (f RetrieverFunc) Retrieve(uri string) ([]byte, error) { return f(uri) }

// httpRetriever is the default Retriever, built the same way the teacher's
// setupLoaders wires an http.Client with a bounded timeout for http/https
// schemes.
type httpRetriever struct {
	client *http.Client
}

func newHTTPRetriever() *httpRetriever {
	return &httpRetriever{client: &http.Client{Timeout: 10 * time.Second}}
}

func (h *httpRetriever) Retrieve(uri string) ([]byte, error) {
	resp, err := h.client.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrUnretrievableResource, uri, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrUnretrievableResource, uri, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// NoopRetriever always fails, useful for tests that want every reference
// fully pre-registered and any unexpected network attempt to be an error.
var NoopRetriever Retriever = RetrieverFunc(func(uri string) ([]byte, error) {
	return nil, fmt.Errorf("%w: %s: retrieval disabled", ErrUnretrievableResource, uri)
})

// MapRetriever serves schemas from an in-memory map keyed by absolute URI,
// for tests and for bundling a fixed set of known resources.
type MapRetriever map[string][]byte

// Retrieve implements Retriever.
func (m MapRetriever) Retrieve(uri string) ([]byte, error) {
	doc, ok := m[uri]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnretrievableResource, uri)
	}
	return doc, nil
}
