package template

import (
	"github.com/specialistvlad/sheetgo/internal/value"
)

// infix evaluates both operands and applies the operator. Arithmetic wraps
// on overflow; division truncates toward zero.
func (ev *evaluator) infix(op value.InfixOp) (value.Value, error) {
	id := ev.current()
	if op.Op < value.OpAdd || op.Op > value.OpPow {
		return nil, evalErr(EvalUnsupportedOp, id)
	}

	lhs, err := ev.expr(op.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := ev.expr(op.RHS)
	if err != nil {
		return nil, err
	}

	l, lok := lhs.(value.Integer)
	r, rok := rhs.(value.Integer)
	if !lok || !rok {
		return nil, evalErr(EvalInvalidType, id)
	}

	switch op.Op {
	case value.OpAdd:
		return l + r, nil
	case value.OpSub:
		return l - r, nil
	case value.OpMul:
		return l * r, nil
	case value.OpDiv:
		if r == 0 {
			return nil, evalErr(EvalDivisionByZero, id)
		}
		return l / r, nil
	default:
		if r < 0 {
			return nil, evalErr(EvalNegativeExponent, id)
		}
		return value.Integer(ipow(int64(l), int64(r))), nil
	}
}

// ipow computes base**exp by squaring. exp must not be negative.
func ipow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
