package jsonschema

import "strings"

// location is a lazily-materialized JSON Pointer chain into the instance
// being validated. Each recursive evaluation step that descends into a
// property or item pushes one segment by allocating a new node that
// points at its parent; no string is built until something actually
// fails or annotates, at which point String() walks the chain once.
// This mirrors the eager fmt.Sprintf-per-step construction elsewhere in
// this package's older evaluate path, but avoids that allocation for the
// overwhelming majority of sub-schema evaluations that produce no output.
type location struct {
	parent  *location
	segment string
}

// rootLocation is the empty location, representing the instance root.
var rootLocation = &location{}

// child returns a new location one segment deeper than l.
func (l *location) child(segment string) *location {
	return &location{parent: l, segment: segment}
}

// String materializes the location as a JSON Pointer, escaping "~" and
// "/" in each segment per RFC 6901.
func (l *location) String() string {
	if l == nil || (l.parent == nil && l.segment == "") {
		return ""
	}
	segments := make([]string, 0, 4)
	for n := l; n != nil && !(n.parent == nil && n.segment == ""); n = n.parent {
		segments = append(segments, encodeSegment(n.segment))
	}
	// segments were collected innermost-first; reverse them.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return "/" + strings.Join(segments, "/")
}

func encodeSegment(segment string) string {
	if !strings.ContainsAny(segment, "~/") {
		return segment
	}
	replacer := strings.NewReplacer("~", "~0", "/", "~1")
	return replacer.Replace(segment)
}
