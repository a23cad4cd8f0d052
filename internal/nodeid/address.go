// internal/nodeid/address.go
package nodeid

import (
	"slices"
	"strings"
)

// String serializes the Path into its canonical dotted representation.
func (p Path) String() string {
	return strings.Join(p, string(Separator))
}

// Equal checks two paths segment by segment.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}
