package template

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/value"
)

// CommonGroupName is the reserved name of the synthetic group owned by a
// Common meta. User nodes may not use it.
const CommonGroupName = "__common"

// MetaKind selects the behavior of a meta node. It is also the start kind
// passed to AddMeta.
type MetaKind int

const (
	MetaCommon MetaKind = iota
	MetaSum
	MetaIdent
	MetaConcat
	MetaConstraint
)

func (k MetaKind) String() string {
	switch k {
	case MetaCommon:
		return "common"
	case MetaSum:
		return "sum"
	case MetaIdent:
		return "ident"
	case MetaConcat:
		return "concat"
	case MetaConstraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// Metadata is the payload of a meta node: one of Common, Sum, Ident, Concat
// or Constraint.
type Metadata interface {
	Kind() MetaKind
	metadata()
}

// Common owns a synthetic inner group. Paths descending through the meta
// continue in that group and nodes added under the meta are linked into it.
// Common has no value.
type Common struct {
	Inner nodeid.ID
}

// Sum evaluates to the sum of its integers.
type Sum struct {
	Values []int64
}

// Ident evaluates to the name of the nearest named ancestor.
type Ident struct{}

// Concat evaluates each part and joins the resulting strings.
type Concat struct {
	Parts []value.Expr
}

// Constraint records a bound on its parent's value. The template stores it
// but never enforces it; Satisfied is available to callers that do.
type Constraint struct {
	Op    ConstraintOp
	Bound int64
}

func (Common) metadata()     {}
func (Sum) metadata()        {}
func (Ident) metadata()      {}
func (Concat) metadata()     {}
func (Constraint) metadata() {}

func (Common) Kind() MetaKind     { return MetaCommon }
func (Sum) Kind() MetaKind        { return MetaSum }
func (Ident) Kind() MetaKind      { return MetaIdent }
func (Concat) Kind() MetaKind     { return MetaConcat }
func (Constraint) Kind() MetaKind { return MetaConstraint }

// ConstraintOp is the comparison a Constraint applies.
type ConstraintOp int

const (
	ConstraintUnset ConstraintOp = iota
	GreaterThan
	GreaterOrEqual
	LessThan
	LessOrEqual
	Equal
)

func (o ConstraintOp) String() string {
	switch o {
	case ConstraintUnset:
		return "unset"
	case GreaterThan:
		return ">"
	case GreaterOrEqual:
		return ">="
	case LessThan:
		return "<"
	case LessOrEqual:
		return "<="
	case Equal:
		return "=="
	default:
		return "?"
	}
}

// Satisfied reports whether v meets the constraint. An unset constraint is
// always satisfied.
func (c Constraint) Satisfied(v value.Value) (bool, error) {
	if c.Op == ConstraintUnset {
		return true, nil
	}
	n, ok := v.(value.Integer)
	if !ok {
		return false, fmt.Errorf("constraint %s %d: value %v is not an integer", c.Op, c.Bound, v)
	}
	i := int64(n)
	switch c.Op {
	case GreaterThan:
		return i > c.Bound, nil
	case GreaterOrEqual:
		return i >= c.Bound, nil
	case LessThan:
		return i < c.Bound, nil
	case LessOrEqual:
		return i <= c.Bound, nil
	case Equal:
		return i == c.Bound, nil
	default:
		return false, fmt.Errorf("unknown constraint operator %d", c.Op)
	}
}

// startData returns the initial payload for a meta of the given kind.
// inner is only used for Common.
func startData(kind MetaKind, inner nodeid.ID) (Metadata, bool) {
	switch kind {
	case MetaCommon:
		return Common{Inner: inner}, true
	case MetaSum:
		return Sum{}, true
	case MetaIdent:
		return Ident{}, true
	case MetaConcat:
		return Concat{}, true
	case MetaConstraint:
		return Constraint{}, true
	default:
		return nil, false
	}
}

func cloneMetadata(m Metadata) Metadata {
	switch m := m.(type) {
	case Sum:
		return Sum{Values: slices.Clone(m.Values)}
	case Concat:
		return Concat{Parts: slices.Clone(m.Parts)}
	default:
		return m
	}
}
