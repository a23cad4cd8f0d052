package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/sheetgo/internal/app"
	"github.com/specialistvlad/sheetgo/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// Option adjusts the app configuration used by the harness.
type Option func(cfg *app.Config)

// WithOutput selects the sheet output format.
func WithOutput(format string) Option {
	return func(cfg *app.Config) { cfg.Output = format }
}

// RunIntegrationTest writes files (relative path -> HCL) into a temp dir and
// runs the full app against that dir using a background context.
func RunIntegrationTest(t *testing.T, files map[string]string, opts ...Option) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, opts...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts ...Option) *HarnessResult {
	t.Helper()

	sheetDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(sheetDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg := &app.Config{
		SheetPath: sheetDir,
		LogLevel:  "debug",
		LogFormat: "text",
		Output:    "text",
		NoColor:   true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	err := app.NewApp(out, logs, cfg, hcl.NewLoader()).Run(ctx)

	if os.Getenv("SHEETGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
	}
}
