// internal/nodeid/parser.go
package nodeid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned for names and path segments that are empty.
	ErrEmptyName = errors.New("name cannot be empty")
	// ErrSeparatorInName is returned for names that contain the separator.
	ErrSeparatorInName = errors.New("name cannot contain the path separator")
)

// Split cuts raw at the first separator. When raw has no separator, head and
// rest are both raw and last is true, so the caller treats head as the final
// segment.
func Split(raw string) (head, rest string, last bool) {
	head, rest, found := strings.Cut(raw, string(Separator))
	if !found {
		return raw, raw, true
	}
	return head, rest, false
}

// ValidName checks that name can be used as a single path segment.
func ValidName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsRune(name, Separator) {
		return fmt.Errorf("%w: %q", ErrSeparatorInName, name)
	}
	return nil
}

// Parse creates a Path by splitting its canonical string representation.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	segments := strings.Split(raw, string(Separator))
	for i, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("path %q contains an empty segment at position %d", raw, i)
		}
	}
	return Path(segments), nil
}

// MustParse is like Parse but panics on error. It is intended for paths
// that are known to be valid at compile time.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}
