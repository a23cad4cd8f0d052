package value

import (
	"fmt"
	"strconv"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
)

// Expr is an expression evaluated on demand by a template.
type Expr interface {
	String() string
	expr()
}

// Literal evaluates to its value.
type Literal struct {
	Value Value
}

// Reference evaluates the referenced leaf or meta node and returns its value.
type Reference struct {
	ID nodeid.ID
}

// IdentRef evaluates the referenced node, expects a String, resolves that
// string as a path from the root and returns the value of the node found
// there.
type IdentRef struct {
	ID nodeid.ID
}

// InfixOp applies Op to the integer results of LHS and RHS.
type InfixOp struct {
	LHS Expr
	RHS Expr
	Op  Op
}

func (Literal) expr()   {}
func (Reference) expr() {}
func (IdentRef) expr()  {}
func (InfixOp) expr()   {}

func (l Literal) String() string {
	switch v := l.Value.(type) {
	case nil:
		return "<nil>"
	case String:
		return strconv.Quote(string(v))
	default:
		return v.String()
	}
}

func (r Reference) String() string { return fmt.Sprintf("ref(%s)", r.ID) }
func (r IdentRef) String() string  { return fmt.Sprintf("identref(%s)", r.ID) }

func (o InfixOp) String() string {
	return fmt.Sprintf("(%s %s %s)", exprString(o.LHS), o.Op, exprString(o.RHS))
}

func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

// Op is the operator of an InfixOp.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	// OpNeg is reserved. Templates reject it at evaluation time.
	OpNeg
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpNeg:
		return "neg"
	default:
		return "?"
	}
}

// KindOf returns the static kind of an expression. References are not
// known until they are evaluated.
func KindOf(e Expr) Kind {
	switch e := e.(type) {
	case Literal:
		if e.Value == nil {
			return KindUndefined
		}
		return e.Value.Kind()
	case InfixOp:
		return KindInteger
	default:
		return KindUndefined
	}
}

// ExprEqual compares two expression trees structurally.
func ExprEqual(a, b Expr) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Literal:
		bl, ok := b.(Literal)
		return ok && Equal(a.Value, bl.Value)
	case Reference:
		br, ok := b.(Reference)
		return ok && a.ID == br.ID
	case IdentRef:
		br, ok := b.(IdentRef)
		return ok && a.ID == br.ID
	case InfixOp:
		bo, ok := b.(InfixOp)
		return ok && a.Op == bo.Op && ExprEqual(a.LHS, bo.LHS) && ExprEqual(a.RHS, bo.RHS)
	}
	return false
}

// Lit wraps v in a Literal.
func Lit(v Value) Literal { return Literal{Value: v} }

// Int is shorthand for an Integer literal.
func Int(n int64) Literal { return Literal{Value: Integer(n)} }

// Str is shorthand for a String literal.
func Str(s string) Literal { return Literal{Value: String(s)} }

// Ref references the node with the given identity.
func Ref(id nodeid.ID) Reference { return Reference{ID: id} }

// Indirect builds an IdentRef through the node with the given identity.
func Indirect(id nodeid.ID) IdentRef { return IdentRef{ID: id} }

// Infix builds an InfixOp.
func Infix(lhs, rhs Expr, op Op) InfixOp { return InfixOp{LHS: lhs, RHS: rhs, Op: op} }

func Add(lhs, rhs Expr) InfixOp { return Infix(lhs, rhs, OpAdd) }
func Sub(lhs, rhs Expr) InfixOp { return Infix(lhs, rhs, OpSub) }
func Mul(lhs, rhs Expr) InfixOp { return Infix(lhs, rhs, OpMul) }
func Div(lhs, rhs Expr) InfixOp { return Infix(lhs, rhs, OpDiv) }
func Pow(lhs, rhs Expr) InfixOp { return Infix(lhs, rhs, OpPow) }
