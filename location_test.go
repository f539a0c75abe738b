package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationRootString(t *testing.T) {
	assert.Equal(t, "", rootLocation.String())
}

func TestLocationChildString(t *testing.T) {
	loc := rootLocation.child("properties").child("name")
	assert.Equal(t, "/properties/name", loc.String())
}

func TestLocationEscapesTildeAndSlash(t *testing.T) {
	loc := rootLocation.child("a/b~c")
	assert.Equal(t, "/a~1b~0c", loc.String())
}

func TestLocationDeepChain(t *testing.T) {
	loc := rootLocation.child("items").child("0").child("properties").child("x")
	assert.Equal(t, "/items/0/properties/x", loc.String())
}
