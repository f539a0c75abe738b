// Package uriref implements the strict URI-reference and JSON Pointer
// helpers the core validation engine needs beyond what the root package's
// bundled JSON Pointer library provides: RFC 3986 §5 reference resolution,
// percent-encoding-aware pointer segment codecs, and array-index token
// validation.
package uriref

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// Sentinel errors for the strict operations below.
var (
	ErrInvalidPercentEncoding = errors.New("uriref: invalid percent-encoding in pointer segment")
	ErrInvalidArrayIndex      = errors.New("uriref: invalid array index token")
	ErrPointerToNowhere       = errors.New("uriref: json pointer resolves to nowhere")
)

// ParseURI parses s as a URI reference, same as net/url.Parse but named to
// match the vocabulary used by callers in this module.
func ParseURI(s string) (*url.URL, error) {
	return url.Parse(s)
}

// ResolveAgainst resolves ref against base per RFC 3986 §5, preserving the
// distinction between an absent fragment and an empty one: a ref of "#"
// yields a present-but-empty fragment, not a fragment-less URI.
func ResolveAgainst(base, ref string) (string, error) {
	if ref == "" {
		return base, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	resolved := baseURL.ResolveReference(refURL)
	if !strings.Contains(ref, "#") {
		resolved.Fragment = ""
		resolved.RawFragment = ""
	} else if refURL.Fragment == "" {
		resolved.Fragment = ""
		resolved.RawFragment = ""
		return resolved.String() + "#", nil
	}
	return resolved.String(), nil
}

// EncodePointerSegment escapes "~" and "/" per RFC 6901. When the input
// contains neither character, the original string is returned unchanged
// (no allocation).
func EncodePointerSegment(segment string) string {
	if !strings.ContainsAny(segment, "~/") {
		return segment
	}
	var b strings.Builder
	b.Grow(len(segment) + 2)
	for _, r := range segment {
		switch r {
		case '~':
			b.WriteString("~0")
		case '/':
			b.WriteString("~1")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DecodePointerSegment unescapes "~1" and "~0" per RFC 6901. Returns the
// input unchanged (no allocation) when it contains no "~".
func DecodePointerSegment(segment string) (string, error) {
	if !strings.Contains(segment, "~") {
		return segment, nil
	}
	var b strings.Builder
	b.Grow(len(segment))
	for i := 0; i < len(segment); i++ {
		if segment[i] != '~' {
			b.WriteByte(segment[i])
			continue
		}
		if i+1 >= len(segment) {
			return "", ErrInvalidPercentEncoding
		}
		switch segment[i+1] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", ErrInvalidPercentEncoding
		}
		i++
	}
	return b.String(), nil
}

// IndexFromSegment parses a JSON Pointer token as an array index per
// RFC 6901: a leading "+" is rejected, and a leading "0" is only valid
// when the whole token is exactly "0".
func IndexFromSegment(segment string) (int, error) {
	if segment == "" || strings.HasPrefix(segment, "+") {
		return 0, ErrInvalidArrayIndex
	}
	if len(segment) > 1 && segment[0] == '0' {
		return 0, ErrInvalidArrayIndex
	}
	n, err := strconv.Atoi(segment)
	if err != nil || n < 0 {
		return 0, ErrInvalidArrayIndex
	}
	return n, nil
}

// SplitPointer splits a JSON Pointer (without its leading "#") into decoded
// tokens. An empty pointer yields an empty, non-nil slice (root).
func SplitPointer(pointer string) ([]string, error) {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" {
		return []string{}, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, ErrPointerToNowhere
	}
	rawTokens := strings.Split(pointer[1:], "/")
	tokens := make([]string, len(rawTokens))
	for i, raw := range rawTokens {
		decoded, err := DecodePointerSegment(raw)
		if err != nil {
			return nil, err
		}
		tokens[i] = decoded
	}
	return tokens, nil
}
