package template

import (
	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/value"
)

// Handle binds an identity to the template that owns it so calls can be
// chained without resolving from the root again. It carries no state of its
// own and must not outlive the template. The zero Handle, returned by failed
// lookups and adds, is bound to nothing: accessors return zero values and
// mutations fail as if the node did not exist.
type Handle struct {
	id nodeid.ID
	t  *Template
}

// Root returns a handle to the root group.
func (t *Template) Root() Handle {
	return Handle{id: nodeid.Root, t: t}
}

// Handle returns a handle to the node with the given identity.
func (t *Template) Handle(id nodeid.ID) (Handle, bool) {
	if !t.Exists(id) {
		return Handle{}, false
	}
	return Handle{id: id, t: t}, true
}

// Valid reports whether the handle is bound to an existing node.
func (h Handle) Valid() bool { return h.t != nil && h.t.Exists(h.id) }

// ID returns the identity the handle is bound to.
func (h Handle) ID() nodeid.ID { return h.id }

// Template returns the owning template.
func (h Handle) Template() *Template { return h.t }

// Name returns the node's name.
func (h Handle) Name() string {
	if h.t == nil {
		return ""
	}
	name, _ := h.t.Name(h.id)
	return name
}

// Node returns the underlying node.
func (h Handle) Node() Node {
	if h.t == nil {
		return nil
	}
	n, _ := h.t.Node(h.id)
	return n
}

// Path returns the node's path from the root.
func (h Handle) Path() nodeid.Path {
	if h.t == nil {
		return nil
	}
	p, _ := h.t.PathOf(h.id)
	return p
}

// Ref returns an expression referencing this node.
func (h Handle) Ref() value.Reference { return value.Ref(h.id) }

// AddGroup creates a group under this node.
func (h Handle) AddGroup(name string) (Handle, error) {
	if h.t == nil {
		return Handle{}, h.unbound(name)
	}
	id, err := h.t.AddGroup(name, h.id)
	if err != nil {
		return Handle{}, err
	}
	return Handle{id: id, t: h.t}, nil
}

// AddLeaf creates a leaf under this node.
func (h Handle) AddLeaf(name string, deferred bool) (Handle, error) {
	if h.t == nil {
		return Handle{}, h.unbound(name)
	}
	id, err := h.t.AddLeaf(name, h.id, deferred)
	if err != nil {
		return Handle{}, err
	}
	return Handle{id: id, t: h.t}, nil
}

// AddMeta attaches a meta to this node.
func (h Handle) AddMeta(name string, start MetaKind) (Handle, error) {
	if h.t == nil {
		return Handle{}, h.unbound(name)
	}
	id, err := h.t.AddMeta(name, h.id, start)
	if err != nil {
		return Handle{}, err
	}
	return Handle{id: id, t: h.t}, nil
}

// Find resolves path relative to this node.
func (h Handle) Find(path string) (Handle, bool) {
	if h.t == nil {
		return Handle{}, false
	}
	id, ok := h.t.Resolve(path, h.id)
	if !ok {
		return Handle{}, false
	}
	return Handle{id: id, t: h.t}, true
}

// FindLeaf resolves path relative to this node and requires a leaf.
func (h Handle) FindLeaf(path string) (Handle, bool) {
	return h.findKind(path, func(n Node) bool { _, ok := n.(*Leaf); return ok })
}

// FindGroup resolves path relative to this node and requires a group.
func (h Handle) FindGroup(path string) (Handle, bool) {
	return h.findKind(path, func(n Node) bool { _, ok := n.(*Group); return ok })
}

// FindMeta resolves path relative to this node and requires a meta.
func (h Handle) FindMeta(path string) (Handle, bool) {
	return h.findKind(path, func(n Node) bool { _, ok := n.(*Meta); return ok })
}

func (h Handle) findKind(path string, match func(Node) bool) (Handle, bool) {
	found, ok := h.Find(path)
	if !ok || !match(found.Node()) {
		return Handle{}, false
	}
	return found, true
}

// SetValue sets a literal value on this leaf.
func (h Handle) SetValue(v value.Value) (Handle, error) {
	if h.t == nil {
		return h, &EditError{Kind: EditNotExists, ID: h.id}
	}
	return h, h.t.SetValue(h.id, v)
}

// SetExpr sets the expression of this leaf.
func (h Handle) SetExpr(e value.Expr) (Handle, error) {
	if h.t == nil {
		return h, &EditError{Kind: EditNotExists, ID: h.id}
	}
	return h, h.t.SetExpr(h.id, e)
}

// SetMeta replaces the payload of this meta.
func (h Handle) SetMeta(data Metadata) (Handle, error) {
	if h.t == nil {
		return h, &EditError{Kind: EditNotExists, ID: h.id}
	}
	return h, h.t.SetMeta(h.id, data)
}

// Expr returns the expression of this leaf, if it is a leaf with one set.
func (h Handle) Expr() (value.Expr, bool) {
	leaf, ok := h.Node().(*Leaf)
	if !ok {
		return nil, false
	}
	return leaf.Expr()
}

// Eval evaluates this leaf or meta.
func (h Handle) Eval() (value.Value, error) {
	if h.t == nil {
		return nil, evalErr(EvalMissingDependency, h.id)
	}
	return h.t.EvalLeaf(h.id)
}

func (h Handle) unbound(name string) *AddError {
	return &AddError{Kind: AddParentNotExists, Parent: h.id, Name: name}
}
