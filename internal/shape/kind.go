// Package shape defines the closed set of primitive categories produced by
// the classifiers.
package shape

import (
	"encoding/json"
	"fmt"
)

// Kind is a primitive category.
type Kind int

const (
	// None means the polygon had no valid exterior ring.
	None Kind = iota
	Triangle
	Square
	Rectangle
	Circle
	Polygon
	Cylinder
	// Unknown is reported when no rule matched.
	Unknown
)

// Kinds lists every category in declaration order.
var Kinds = []Kind{None, Triangle, Square, Rectangle, Circle, Polygon, Cylinder, Unknown}

var labels = map[Kind]string{
	None:      "No shape detected",
	Triangle:  "Triangle",
	Square:    "Square",
	Rectangle: "Rectangle",
	Circle:    "Circle",
	Polygon:   "Polygon",
	Cylinder:  "Cylinder",
	Unknown:   "Unknown shape",
}

var slugs = map[Kind]string{
	None:      "none",
	Triangle:  "triangle",
	Square:    "square",
	Rectangle: "rectangle",
	Circle:    "circle",
	Polygon:   "polygon",
	Cylinder:  "cylinder",
	Unknown:   "unknown",
}

// String returns the display label used in plane reports, e.g. "Square".
func (k Kind) String() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Slug returns the lower-case name used in face reports, e.g. "square".
func (k Kind) Slug() string {
	if s, ok := slugs[k]; ok {
		return s
	}
	return fmt.Sprintf("kind%d", int(k))
}

// ParseSlug is the inverse of Slug.
func ParseSlug(s string) (Kind, error) {
	for k, slug := range slugs {
		if slug == s {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("unknown shape %q", s)
}

// MarshalText encodes the kind by slug, so kinds can key JSON objects.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Slug()), nil
}

// UnmarshalText decodes a slug.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseSlug(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

var _ json.Marshaler = Counts(nil)

// Counts tallies results per kind.
type Counts map[Kind]int

// MarshalJSON writes every face-level kind, including zero counts, keyed by
// slug.
func (c Counts) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(c))
	for _, k := range []Kind{Cylinder, Square, Rectangle, Circle, Triangle} {
		out[k.Slug()] = c[k]
	}
	for k, n := range c {
		out[k.Slug()] = n
	}
	return json.Marshal(out)
}
