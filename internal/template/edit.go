package template

import (
	"slices"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/value"
)

// SetValue sets a literal value on a leaf. It is shorthand for SetExpr with
// a Literal.
func (t *Template) SetValue(id nodeid.ID, v value.Value) error {
	return t.SetExpr(id, value.Lit(v))
}

// SetExpr sets the expression of a leaf and recomputes its static kind. The
// leaf's cached result, and the cached results of everything computed from
// it, are invalidated. A nil expression clears the leaf.
func (t *Template) SetExpr(id nodeid.ID, expr value.Expr) error {
	e, ok := t.entry(id)
	if !ok {
		return &EditError{Kind: EditNotExists, ID: id}
	}
	leaf, isLeaf := e.node.(*Leaf)
	if !isLeaf {
		return &EditError{Kind: EditNotLeaf, ID: id}
	}

	leaf.expr = expr
	leaf.kind = value.KindOf(expr)
	t.Invalidate(id)
	return nil
}

// SetMeta replaces the payload of a Sum, Concat or Constraint meta with one
// of the same kind. Common and Ident have no editable payload.
func (t *Template) SetMeta(id nodeid.ID, data Metadata) error {
	e, ok := t.entry(id)
	if !ok {
		return &EditError{Kind: EditNotExists, ID: id}
	}
	m, isMeta := e.node.(*Meta)
	if !isMeta {
		return &EditError{Kind: EditNotMeta, ID: id}
	}

	switch m.data.(type) {
	case Sum:
		d, same := data.(Sum)
		if !same {
			return &EditError{Kind: EditWrongKind, ID: id}
		}
		m.data = Sum{Values: slices.Clone(d.Values)}
	case Concat:
		d, same := data.(Concat)
		if !same {
			return &EditError{Kind: EditWrongKind, ID: id}
		}
		m.data = Concat{Parts: slices.Clone(d.Parts)}
	case Constraint:
		d, same := data.(Constraint)
		if !same {
			return &EditError{Kind: EditWrongKind, ID: id}
		}
		m.data = d
	default:
		return &EditError{Kind: EditWrongKind, ID: id}
	}

	t.Invalidate(id)
	return nil
}
