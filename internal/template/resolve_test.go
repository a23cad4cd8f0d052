package template_test

import (
	"strings"
	"testing"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tpl := template.New()
	must := mustID(t)
	scores := must(tpl.AddGroup("ability_scores", nodeid.Root))
	strength := must(tpl.AddLeaf("strength", scores, false))
	limit := must(tpl.AddMeta("limit", strength, template.MetaConstraint))
	total := must(tpl.AddMeta("total", scores, template.MetaSum))
	abilities := must(tpl.AddGroup("abilities", nodeid.Root))
	common := must(tpl.AddMeta("shared", abilities, template.MetaCommon))
	name := must(tpl.AddMeta("name", common, template.MetaIdent))
	mod := must(tpl.AddLeaf("mod", common, false))

	testCases := []struct {
		name  string
		path  string
		start nodeid.ID
		want  nodeid.ID
		found bool
	}{
		{name: "group", path: "ability_scores", start: nodeid.Root, want: scores, found: true},
		{name: "nested leaf", path: "ability_scores.strength", start: nodeid.Root, want: strength, found: true},
		{name: "leaf metadata", path: "ability_scores.strength.limit", start: nodeid.Root, want: limit, found: true},
		{name: "group metadata", path: "ability_scores.total", start: nodeid.Root, want: total, found: true},
		{name: "relative start", path: "strength", start: scores, want: strength, found: true},
		{name: "through common meta", path: "abilities.shared.mod", start: nodeid.Root, want: mod, found: true},
		{name: "common ident", path: "abilities.shared.name", start: nodeid.Root, want: name, found: true},
		{name: "inner group is not addressable", path: "abilities.shared." + template.CommonGroupName, start: nodeid.Root, found: false},
		{name: "missing segment", path: "ability_scores.dexterity", start: nodeid.Root, found: false},
		{name: "past a non-common meta", path: "ability_scores.total.x", start: nodeid.Root, found: false},
		{name: "past a leaf child", path: "ability_scores.strength.limit.x", start: nodeid.Root, found: false},
		{name: "empty path", path: "", start: nodeid.Root, found: false},
		{name: "empty segment", path: "ability_scores..strength", start: nodeid.Root, found: false},
		{name: "trailing separator", path: "ability_scores.", start: nodeid.Root, found: false},
		{name: "unknown start", path: "strength", start: 999, found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := tpl.Resolve(tc.path, tc.start)
			require.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestResolve_FindsEveryAddedNode(t *testing.T) {
	tpl := template.New()
	must := mustID(t)
	g := must(tpl.AddGroup("g", nodeid.Root))

	for _, name := range []string{"a", "b", "c", "d"} {
		id := must(tpl.AddLeaf(name, g, false))
		got, ok := tpl.Resolve("g."+name, nodeid.Root)
		require.True(t, ok, name)
		assert.Equal(t, id, got)
	}
}

func TestResolve_DeepChain(t *testing.T) {
	const depth = 1024
	tpl := template.New()
	must := mustID(t)

	parent := nodeid.Root
	segments := make([]string, 0, depth+1)
	for i := 0; i < depth; i++ {
		parent = must(tpl.AddGroup("g", parent))
		segments = append(segments, "g")
	}
	leaf := must(tpl.AddLeaf("end", parent, false))
	segments = append(segments, "end")

	got, ok := tpl.Resolve(strings.Join(segments, "."), nodeid.Root)
	require.True(t, ok)
	assert.Equal(t, leaf, got)
}
