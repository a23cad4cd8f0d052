package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/sheetgo/internal/config"
	"github.com/specialistvlad/sheetgo/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader returns a fixed definition or error.
type stubLoader struct {
	def   *config.Definition
	err   error
	paths []string
}

func (l *stubLoader) Load(_ context.Context, paths ...string) (*config.Definition, error) {
	l.paths = paths
	return l.def, l.err
}

func testConfig(output string) *Config {
	return &Config{SheetPath: "hero.hcl", LogLevel: "debug", LogFormat: "text", Output: output, NoColor: true}
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	loader := &stubLoader{def: &config.Definition{
		Name:   "hero",
		Scores: []*config.Score{{Name: "strength", Value: 20}},
	}}
	var out, logs bytes.Buffer
	a := NewApp(&out, &logs, testConfig("text"), loader)

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"hero.hcl"}, loader.paths)
	assert.Contains(t, out.String(), "sheet hero")
	assert.Regexp(t, `abilities\.strength\s+5\n`, out.String())
	assert.Regexp(t, `abilities\.strength\.mod\.mod\s+5\n`, out.String())
	assert.Contains(t, logs.String(), `msg="Sheet evaluated."`)
}

func TestApp_Run_JSON(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{def: &config.Definition{Name: "hero"}}
	var out, logs bytes.Buffer

	require.NoError(t, NewApp(&out, &logs, testConfig("json"), loader).Run(context.Background()))
	assert.Contains(t, out.String(), `"abilities.wisdom.mod.mod":0`)
}

func TestApp_Run_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		loader      *stubLoader
		errContains string
		errIs       error
	}{
		{
			name:        "load fails",
			loader:      &stubLoader{err: errors.New("boom")},
			errContains: "failed to load sheet: boom",
		},
		{
			name:        "build fails",
			loader:      &stubLoader{def: &config.Definition{Groups: []*config.Group{{Name: "abilities"}}}},
			errContains: "failed to build sheet",
			errIs:       template.ErrNameConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			err := NewApp(&out, &logs, testConfig("text"), tc.loader).Run(context.Background())
			require.ErrorContains(t, err, tc.errContains)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
			}
			assert.Empty(t, out.String(), "nothing is rendered before the sheet is built")
		})
	}
}
