package testutil

import (
	"testing"
)

// RunSheetTest runs the app against a single sheet file.
func RunSheetTest(t *testing.T, sheetHCL string, opts ...Option) *HarnessResult {
	t.Helper()
	return RunIntegrationTest(t, map[string]string{"main.hcl": sheetHCL}, opts...)
}
