// internal/nodeid/types.go
package nodeid

import "strconv"

// ID is the stable identity of a node within a single template.
type ID uint64

// Root is the identity of the implicit root group. It always exists and has
// no parent.
const Root ID = 0

// Separator splits the segments of a path.
const Separator = '.'

// String renders the identity as a decimal number prefixed with '#'.
func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// IsRoot reports whether id is the root group.
func (id ID) IsRoot() bool {
	return id == Root
}

// Path is the structured representation of a dotted name path.
type Path []string

// Last returns the final segment of the path, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Append returns a new path with name added as the final segment.
func (p Path) Append(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}
