package labels

import (
	"encoding/json"
	"slices"
)

// DefaultDelimiter separates the package name from the bump kind in a label.
const DefaultDelimiter = ":"

// Bump is a semantic version increment kind.
type Bump string

const (
	BumpMajor Bump = "major"
	BumpMinor Bump = "minor"
	BumpPatch Bump = "patch"
)

// ValidBumps returns the recognised bump kinds in descending order of impact.
func ValidBumps() []Bump {
	return []Bump{BumpMajor, BumpMinor, BumpPatch}
}

// IsValid reports whether b is a recognised bump kind.
func (b Bump) IsValid() bool {
	return slices.Contains(ValidBumps(), b)
}

// Label is a pull-request label as delivered in a GitHub webhook payload.
// Only the name is consumed; the remaining fields are ignored on decode.
type Label struct {
	Name string `json:"name"`
}

// Entry is a single fan-out job of the build matrix.
type Entry struct {
	Package string `json:"package"`
	Bump    Bump   `json:"bump"`
}

// Matrix is the CI build matrix. Include keeps the order of the input labels.
type Matrix struct {
	Include []Entry `json:"include"`
}

// HasEntries reports whether at least one label was accepted.
func (m Matrix) HasEntries() bool {
	return len(m.Include) > 0
}

// Packages returns the package names in matrix order.
func (m Matrix) Packages() []string {
	pkgs := make([]string, 0, len(m.Include))
	for _, e := range m.Include {
		pkgs = append(pkgs, e.Package)
	}
	return pkgs
}

// JSON encodes the matrix as a single compact JSON document.
// An empty matrix encodes as {"include":[]}, never as null.
func (m Matrix) JSON() ([]byte, error) {
	if m.Include == nil {
		m.Include = []Entry{}
	}
	return json.Marshal(m)
}
