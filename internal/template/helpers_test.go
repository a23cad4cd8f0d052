package template_test

import (
	"testing"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/stretchr/testify/require"
)

// mustID returns a function that unwraps (id, err) pairs from the Add
// methods, failing the test on error.
func mustID(t *testing.T) func(nodeid.ID, error) nodeid.ID {
	t.Helper()
	return func(id nodeid.ID, err error) nodeid.ID {
		t.Helper()
		require.NoError(t, err)
		return id
	}
}
