package value

// Kind is the static type tag tracked alongside a leaf for bookkeeping.
type Kind int

const (
	KindUndefined Kind = iota // no value or expression yet, or not known until evaluated
	KindInteger
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}
