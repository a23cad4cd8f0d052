package template_test

import (
	"errors"
	"testing"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathOf(t *testing.T) {
	tpl := template.New()
	must := mustID(t)
	abilities := must(tpl.AddGroup("abilities", nodeid.Root))
	strength := must(tpl.AddLeaf("strength", abilities, false))
	common := must(tpl.AddMeta("mod", strength, template.MetaCommon))
	inner := must(tpl.AddLeaf("mod", common, false))

	testCases := []struct {
		id   nodeid.ID
		want string
	}{
		{id: abilities, want: "abilities"},
		{id: strength, want: "abilities.strength"},
		{id: common, want: "abilities.strength.mod"},
		{id: inner, want: "abilities.strength.mod.mod"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			p, ok := tpl.PathOf(tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.want, p.String())

			// The path round-trips through Resolve.
			got, ok := tpl.Resolve(p.String(), nodeid.Root)
			require.True(t, ok)
			assert.Equal(t, tc.id, got)
		})
	}

	p, ok := tpl.PathOf(nodeid.Root)
	require.True(t, ok)
	assert.Empty(t, p)

	_, ok = tpl.PathOf(999)
	assert.False(t, ok)
}

func TestWalk_Order(t *testing.T) {
	tpl := template.New()
	must := mustID(t)
	scores := must(tpl.AddGroup("scores", nodeid.Root))
	must(tpl.AddLeaf("strength", scores, false))
	must(tpl.AddMeta("total", scores, template.MetaSum))
	must(tpl.AddLeaf("dexterity", scores, false))
	abilities := must(tpl.AddGroup("abilities", nodeid.Root))
	common := must(tpl.AddMeta("shared", abilities, template.MetaCommon))
	must(tpl.AddMeta("name", common, template.MetaIdent))
	must(tpl.AddLeaf("mod", common, false))

	var paths []string
	err := tpl.Walk(func(id nodeid.ID, path nodeid.Path, n template.Node) error {
		paths = append(paths, path.String())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"scores",
		"scores.strength",
		"scores.dexterity",
		"scores.total",
		"abilities",
		"abilities.shared",
		"abilities.shared.mod",
		"abilities.shared.name",
	}, paths)
}

func TestWalk_StopsOnError(t *testing.T) {
	tpl := template.New()
	must := mustID(t)
	must(tpl.AddLeaf("a", nodeid.Root, false))
	must(tpl.AddLeaf("b", nodeid.Root, false))

	stop := errors.New("stop")
	visited := 0
	err := tpl.Walk(func(nodeid.ID, nodeid.Path, template.Node) error {
		visited++
		return stop
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visited)
}
