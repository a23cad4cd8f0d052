package template

import (
	"fmt"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
)

// AddErrorKind classifies why a node could not be added.
type AddErrorKind int

const (
	AddParentNotExists AddErrorKind = iota // parent identity is unknown
	AddParentIsLeaf                        // parent cannot hold this node (leaf, or non-Common meta)
	AddInvalidParent                       // Common-specific structural violation
	AddNameConflict                        // sibling name already taken
	AddInvalidName                         // empty, contains the separator, or reserved
	AddInvalidMetaKind                     // unknown meta start kind
)

func (k AddErrorKind) String() string {
	switch k {
	case AddParentNotExists:
		return "parent does not exist"
	case AddParentIsLeaf:
		return "parent cannot hold children"
	case AddInvalidParent:
		return "invalid parent"
	case AddNameConflict:
		return "name conflict"
	case AddInvalidName:
		return "invalid name"
	case AddInvalidMetaKind:
		return "invalid meta kind"
	default:
		return "unknown add error"
	}
}

// AddError is returned by AddGroup, AddLeaf and AddMeta.
type AddError struct {
	Kind   AddErrorKind
	Parent nodeid.ID
	Name   string
}

func (e *AddError) Error() string {
	return fmt.Sprintf("add %q under %s: %s", e.Name, e.Parent, e.Kind)
}

// Is matches any AddError of the same kind, so the sentinels below work with
// errors.Is.
func (e *AddError) Is(target error) bool {
	t, ok := target.(*AddError)
	return ok && t.Kind == e.Kind
}

var (
	ErrParentNotExists = &AddError{Kind: AddParentNotExists}
	ErrParentIsLeaf    = &AddError{Kind: AddParentIsLeaf}
	ErrInvalidParent   = &AddError{Kind: AddInvalidParent}
	ErrNameConflict    = &AddError{Kind: AddNameConflict}
	ErrInvalidName     = &AddError{Kind: AddInvalidName}
	ErrInvalidMetaKind = &AddError{Kind: AddInvalidMetaKind}
)

// EditErrorKind classifies why a node could not be edited.
type EditErrorKind int

const (
	EditNotExists EditErrorKind = iota
	EditNotLeaf
	EditNotMeta
	EditWrongKind // meta payload kind differs, or the kind has no editable payload
)

func (k EditErrorKind) String() string {
	switch k {
	case EditNotExists:
		return "node does not exist"
	case EditNotLeaf:
		return "node is not a leaf"
	case EditNotMeta:
		return "node is not a meta"
	case EditWrongKind:
		return "wrong meta kind"
	default:
		return "unknown edit error"
	}
}

// EditError is returned by SetValue, SetExpr and SetMeta.
type EditError struct {
	Kind EditErrorKind
	ID   nodeid.ID
}

func (e *EditError) Error() string {
	return fmt.Sprintf("edit %s: %s", e.ID, e.Kind)
}

func (e *EditError) Is(target error) bool {
	t, ok := target.(*EditError)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotExists = &EditError{Kind: EditNotExists}
	ErrNotLeaf   = &EditError{Kind: EditNotLeaf}
	ErrNotMeta   = &EditError{Kind: EditNotMeta}
	ErrWrongKind = &EditError{Kind: EditWrongKind}
)

// EvalErrorKind classifies evaluation failures.
type EvalErrorKind int

const (
	EvalNotALeaf EvalErrorKind = iota
	EvalInfiniteRecursion
	EvalMissingInfo
	EvalMissingDependency
	EvalMissingPathDependency
	EvalInvalidIdentRef
	EvalInvalidType
	EvalMetaType
	EvalMissingParent
	EvalInvalidConcatElement
	EvalDivisionByZero
	EvalNegativeExponent
	EvalUnsupportedOp
)

func (k EvalErrorKind) String() string {
	switch k {
	case EvalNotALeaf:
		return "not a leaf"
	case EvalInfiniteRecursion:
		return "infinite recursion"
	case EvalMissingInfo:
		return "missing expression"
	case EvalMissingDependency:
		return "missing dependency"
	case EvalMissingPathDependency:
		return "missing path dependency"
	case EvalInvalidIdentRef:
		return "identref source is not a string"
	case EvalInvalidType:
		return "operands must be integers"
	case EvalMetaType:
		return "meta kind has no value"
	case EvalMissingParent:
		return "no named ancestor"
	case EvalInvalidConcatElement:
		return "concat element is not a string"
	case EvalDivisionByZero:
		return "division by zero"
	case EvalNegativeExponent:
		return "negative exponent"
	case EvalUnsupportedOp:
		return "unsupported operator"
	default:
		return "unknown eval error"
	}
}

// EvalError is returned by EvalLeaf. ID is the node the failure is
// attributed to. Path is set for EvalMissingPathDependency.
type EvalError struct {
	Kind EvalErrorKind
	ID   nodeid.ID
	Path string
}

func (e *EvalError) Error() string {
	if e.Kind == EvalMissingPathDependency {
		return fmt.Sprintf("eval: %s %q", e.Kind, e.Path)
	}
	return fmt.Sprintf("eval %s: %s", e.ID, e.Kind)
}

func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotALeaf              = &EvalError{Kind: EvalNotALeaf}
	ErrInfiniteRecursion     = &EvalError{Kind: EvalInfiniteRecursion}
	ErrMissingInfo           = &EvalError{Kind: EvalMissingInfo}
	ErrMissingDependency     = &EvalError{Kind: EvalMissingDependency}
	ErrMissingPathDependency = &EvalError{Kind: EvalMissingPathDependency}
	ErrInvalidIdentRef       = &EvalError{Kind: EvalInvalidIdentRef}
	ErrInvalidType           = &EvalError{Kind: EvalInvalidType}
	ErrMetaType              = &EvalError{Kind: EvalMetaType}
	ErrMissingParent         = &EvalError{Kind: EvalMissingParent}
	ErrInvalidConcatElement  = &EvalError{Kind: EvalInvalidConcatElement}
	ErrDivisionByZero        = &EvalError{Kind: EvalDivisionByZero}
	ErrNegativeExponent      = &EvalError{Kind: EvalNegativeExponent}
	ErrUnsupportedOp         = &EvalError{Kind: EvalUnsupportedOp}
)

func evalErr(kind EvalErrorKind, id nodeid.ID) *EvalError {
	return &EvalError{Kind: kind, ID: id}
}
