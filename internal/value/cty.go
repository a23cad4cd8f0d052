package value

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrUnevaluated is returned when a list element is not a literal and so has
// no value without a template to evaluate it.
var ErrUnevaluated = errors.New("list element is not a literal")

// ToCty converts a value into its cty equivalent. Lists become tuples so
// mixed element kinds are preserved.
func ToCty(v Value) (cty.Value, error) {
	switch v := v.(type) {
	case Integer:
		return cty.NumberIntVal(int64(v)), nil
	case String:
		return cty.StringVal(string(v)), nil
	case List:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(v))
		for i, e := range v {
			lit, ok := e.(Literal)
			if !ok {
				return cty.NilVal, fmt.Errorf("element %d (%s): %w", i, exprString(e), ErrUnevaluated)
			}
			ev, err := ToCty(lit.Value)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, ev)
		}
		return cty.TupleVal(elems), nil
	case nil:
		return cty.NilVal, errors.New("cannot convert a nil value")
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
	}
}

// FromCty converts a known, non-null cty value into a Value. Numbers must be
// whole and fit in 64 bits. Lists, sets and tuples become Lists of literals.
func FromCty(v cty.Value) (Value, error) {
	if v.IsNull() {
		return nil, errors.New("value is null")
	}
	if !v.IsWhollyKnown() {
		return nil, errors.New("value is not known")
	}

	ty := v.Type()
	switch {
	case ty == cty.Number:
		var n int64
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return nil, fmt.Errorf("number must be a whole 64 bit integer: %w", err)
		}
		return Integer(n), nil
	case ty == cty.String:
		return String(v.AsString()), nil
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		out := make(List, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			elem, err := FromCty(ev)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", len(out), err)
			}
			out = append(out, Lit(elem))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
	}
}
