package template_test

import (
	"testing"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/template"
	"github.com/specialistvlad/sheetgo/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_Chaining(t *testing.T) {
	// Arrange
	tpl := template.New()
	root := tpl.Root()

	// Act
	scores, err := root.AddGroup("ability_scores")
	require.NoError(t, err)
	strength, err := scores.AddLeaf("strength", false)
	require.NoError(t, err)
	strength, err = strength.SetValue(value.Integer(16))
	require.NoError(t, err)
	limit, err := strength.AddMeta("limit", template.MetaConstraint)
	require.NoError(t, err)
	_, err = limit.SetMeta(template.Constraint{Op: template.LessOrEqual, Bound: 20})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, nodeid.Root, root.ID())
	assert.Same(t, tpl, strength.Template())
	assert.Equal(t, "strength", strength.Name())
	assert.Equal(t, "ability_scores.strength", strength.Path().String())

	found, ok := root.FindLeaf("ability_scores.strength")
	require.True(t, ok)
	assert.Equal(t, strength.ID(), found.ID())

	got, err := found.Eval()
	require.NoError(t, err)
	assert.Equal(t, value.Integer(16), got)

	e, ok := found.Expr()
	require.True(t, ok)
	assert.True(t, value.ExprEqual(value.Int(16), e))

	m, ok := scores.FindMeta("strength.limit")
	require.True(t, ok)
	c := m.Node().(*template.Meta).Data().(template.Constraint)
	satisfied, err := c.Satisfied(got)
	require.NoError(t, err)
	assert.True(t, satisfied)
}

func TestHandle_FindKind(t *testing.T) {
	tpl := template.New()
	root := tpl.Root()
	g, err := root.AddGroup("g")
	require.NoError(t, err)
	_, err = g.AddLeaf("leaf", false)
	require.NoError(t, err)

	_, ok := root.FindGroup("g")
	assert.True(t, ok)
	_, ok = root.FindLeaf("g")
	assert.False(t, ok)
	_, ok = root.FindMeta("g.leaf")
	assert.False(t, ok)
	_, ok = root.Find("g.missing")
	assert.False(t, ok)

	_, ok = g.Expr()
	assert.False(t, ok, "groups have no expression")
}

func TestHandle_Errors(t *testing.T) {
	tpl := template.New()
	root := tpl.Root()
	leaf, err := root.AddLeaf("leaf", false)
	require.NoError(t, err)

	_, err = leaf.AddGroup("nope")
	require.ErrorIs(t, err, template.ErrParentIsLeaf)
	_, err = root.AddLeaf("leaf", false)
	require.ErrorIs(t, err, template.ErrNameConflict)
	_, err = root.SetValue(value.Integer(1))
	require.ErrorIs(t, err, template.ErrNotLeaf)

	_, ok := tpl.Handle(999)
	assert.False(t, ok)
	h, ok := tpl.Handle(leaf.ID())
	require.True(t, ok)
	assert.Equal(t, leaf.Ref(), h.Ref())
}

func TestHandle_ZeroValue(t *testing.T) {
	tpl := template.New()
	missing, ok := tpl.Root().Find("nowhere")
	require.False(t, ok)

	for name, h := range map[string]template.Handle{"zero": {}, "failed find": missing} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, h.Valid())
			assert.Empty(t, h.Name())
			assert.Nil(t, h.Node())
			assert.Nil(t, h.Path())
			assert.Nil(t, h.Template())

			_, ok := h.Expr()
			assert.False(t, ok)
			_, ok = h.Find("a")
			assert.False(t, ok)
			_, ok = h.FindLeaf("a")
			assert.False(t, ok)

			_, err := h.AddGroup("g")
			require.ErrorIs(t, err, template.ErrParentNotExists)
			_, err = h.AddLeaf("l", false)
			require.ErrorIs(t, err, template.ErrParentNotExists)
			_, err = h.AddMeta("m", template.MetaSum)
			require.ErrorIs(t, err, template.ErrParentNotExists)
			_, err = h.SetValue(value.Integer(1))
			require.ErrorIs(t, err, template.ErrNotExists)
			_, err = h.SetExpr(value.Int(1))
			require.ErrorIs(t, err, template.ErrNotExists)
			_, err = h.SetMeta(template.Sum{})
			require.ErrorIs(t, err, template.ErrNotExists)
			_, err = h.Eval()
			require.ErrorIs(t, err, template.ErrMissingDependency)
		})
	}

	assert.True(t, tpl.Root().Valid())
}
