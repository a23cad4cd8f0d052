package value

import (
	"strconv"
	"strings"
)

// Value is a single computed value.
type Value interface {
	Kind() Kind
	String() string
	value()
}

// Integer is a 64 bit signed integer.
type Integer int64

// String is a UTF-8 string.
type String string

// List holds expressions. The elements are not evaluated as part of the
// list itself.
type List []Expr

func (Integer) value() {}
func (String) value()  {}
func (List) value()    {}

func (Integer) Kind() Kind { return KindInteger }
func (String) Kind() Kind  { return KindString }
func (List) Kind() Kind    { return KindList }

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }
func (s String) String() string  { return string(s) }

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal compares two values. Lists are compared element by element with
// ExprEqual. A nil value only equals another nil value.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Integer:
		bi, ok := b.(Integer)
		return ok && a == bi
	case String:
		bs, ok := b.(String)
		return ok && a == bs
	case List:
		bl, ok := b.(List)
		if !ok || len(a) != len(bl) {
			return false
		}
		for i := range a {
			if !ExprEqual(a[i], bl[i]) {
				return false
			}
		}
		return true
	}
	return false
}
