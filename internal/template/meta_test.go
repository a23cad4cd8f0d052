package template_test

import (
	"errors"
	"testing"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/template"
	"github.com/specialistvlad/sheetgo/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMeta_StartPayloads(t *testing.T) {
	testCases := []struct {
		kind template.MetaKind
		want template.Metadata
	}{
		{kind: template.MetaSum, want: template.Sum{}},
		{kind: template.MetaIdent, want: template.Ident{}},
		{kind: template.MetaConcat, want: template.Concat{}},
		{kind: template.MetaConstraint, want: template.Constraint{}},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			tpl := template.New()
			id := mustID(t)(tpl.AddMeta("m", nodeid.Root, tc.kind))

			meta := mustNode[*template.Meta](t, tpl, id)
			assert.Equal(t, tc.kind, meta.Kind())
			assert.Equal(t, tc.want, meta.Data())
		})
	}
}

func TestMeta_DataIsACopy(t *testing.T) {
	tpl := template.New()
	id := mustID(t)(tpl.AddMeta("total", nodeid.Root, template.MetaSum))
	values := []int64{1, 2}
	require.NoError(t, tpl.SetMeta(id, template.Sum{Values: values}))

	values[0] = 100
	data := mustNode[*template.Meta](t, tpl, id).Data().(template.Sum)
	data.Values[1] = 100

	got, err := tpl.EvalLeaf(id)
	require.NoError(t, err)
	assert.Equal(t, value.Integer(3), got)
}

func TestSetMeta_Errors(t *testing.T) {
	tpl := template.New()
	must := mustID(t)
	leaf := must(tpl.AddLeaf("leaf", nodeid.Root, false))
	sum := must(tpl.AddMeta("sum", nodeid.Root, template.MetaSum))
	ident := must(tpl.AddMeta("ident", nodeid.Root, template.MetaIdent))
	common := must(tpl.AddMeta("common", leaf, template.MetaCommon))

	testCases := []struct {
		name string
		id   nodeid.ID
		data template.Metadata
		want error
	}{
		{name: "unknown id", id: 999, data: template.Sum{}, want: template.ErrNotExists},
		{name: "leaf", id: leaf, data: template.Sum{}, want: template.ErrNotMeta},
		{name: "group", id: nodeid.Root, data: template.Sum{}, want: template.ErrNotMeta},
		{name: "kind change", id: sum, data: template.Concat{}, want: template.ErrWrongKind},
		{name: "ident has no payload", id: ident, data: template.Ident{}, want: template.ErrWrongKind},
		{name: "common has no payload", id: common, data: template.Common{Inner: 0}, want: template.ErrWrongKind},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tpl.SetMeta(tc.id, tc.data)
			require.ErrorIs(t, err, tc.want)
			var editErr *template.EditError
			require.True(t, errors.As(err, &editErr))
			assert.Equal(t, tc.id, editErr.ID)
		})
	}
}

func TestSetExpr_Errors(t *testing.T) {
	tpl := template.New()
	must := mustID(t)
	g := must(tpl.AddGroup("g", nodeid.Root))
	m := must(tpl.AddMeta("m", g, template.MetaSum))

	require.ErrorIs(t, tpl.SetExpr(999, value.Int(1)), template.ErrNotExists)
	require.ErrorIs(t, tpl.SetExpr(g, value.Int(1)), template.ErrNotLeaf)
	require.ErrorIs(t, tpl.SetValue(m, value.Integer(1)), template.ErrNotLeaf)
}

func TestSetExpr_StaticKind(t *testing.T) {
	tpl := template.New()
	id := mustID(t)(tpl.AddLeaf("x", nodeid.Root, false))
	leaf := mustNode[*template.Leaf](t, tpl, id)
	assert.Equal(t, value.KindUndefined, leaf.ValueKind())

	require.NoError(t, tpl.SetExpr(id, value.Add(value.Int(1), value.Int(2))))
	assert.Equal(t, value.KindInteger, leaf.ValueKind())

	require.NoError(t, tpl.SetExpr(id, value.Ref(nodeid.Root)))
	assert.Equal(t, value.KindUndefined, leaf.ValueKind())

	require.NoError(t, tpl.SetExpr(id, nil))
	_, ok := leaf.Expr()
	assert.False(t, ok)
	_, err := tpl.EvalLeaf(id)
	require.ErrorIs(t, err, template.ErrMissingInfo)
}

func TestConstraint_Satisfied(t *testing.T) {
	testCases := []struct {
		name       string
		constraint template.Constraint
		v          value.Value
		want       bool
		wantErr    bool
	}{
		{name: "unset", constraint: template.Constraint{}, v: value.String("anything"), want: true},
		{name: "greater than", constraint: template.Constraint{Op: template.GreaterThan, Bound: 3}, v: value.Integer(4), want: true},
		{name: "greater than fails", constraint: template.Constraint{Op: template.GreaterThan, Bound: 3}, v: value.Integer(3), want: false},
		{name: "greater or equal", constraint: template.Constraint{Op: template.GreaterOrEqual, Bound: 3}, v: value.Integer(3), want: true},
		{name: "less than", constraint: template.Constraint{Op: template.LessThan, Bound: 20}, v: value.Integer(21), want: false},
		{name: "less or equal", constraint: template.Constraint{Op: template.LessOrEqual, Bound: 20}, v: value.Integer(20), want: true},
		{name: "equal", constraint: template.Constraint{Op: template.Equal, Bound: 10}, v: value.Integer(10), want: true},
		{name: "not an integer", constraint: template.Constraint{Op: template.Equal, Bound: 10}, v: value.String("10"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.constraint.Satisfied(tc.v)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestErrors_Messages(t *testing.T) {
	addErr := &template.AddError{Kind: template.AddNameConflict, Parent: 3, Name: "strength"}
	assert.Equal(t, `add "strength" under #3: name conflict`, addErr.Error())

	evalErr := &template.EvalError{Kind: template.EvalDivisionByZero, ID: 7}
	assert.Equal(t, "eval #7: division by zero", evalErr.Error())

	assert.False(t, errors.Is(addErr, template.ErrInvalidName))
	assert.False(t, errors.Is(evalErr, template.ErrNameConflict))
}
