package template

import (
	"slices"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/value"
)

// Node is one of *Leaf, *Group or *Meta.
type Node interface {
	// Parent returns the identity of the node's parent. Only the root has
	// no parent.
	Parent() (nodeid.ID, bool)
	node()
}

// memo is the cached result of a leaf or meta, plus the dependency edges
// recorded the last time it was evaluated.
type memo struct {
	cached     value.Value
	valid      bool
	deps       []nodeid.ID // nodes this result was computed from
	dependents []nodeid.ID // nodes whose results were computed from this one
}

// Cached returns the memoized result, if it is valid.
func (m *memo) Cached() (value.Value, bool) {
	if !m.valid {
		return nil, false
	}
	return m.cached, true
}

// Dependencies returns the nodes read by the most recent evaluation.
func (m *memo) Dependencies() []nodeid.ID { return slices.Clone(m.deps) }

// Dependents returns the nodes that read this node while being evaluated.
func (m *memo) Dependents() []nodeid.ID { return slices.Clone(m.dependents) }

func (m *memo) reset() {
	m.cached = nil
	m.valid = false
}

// Leaf is a scalar slot holding an expression and its memoized result.
type Leaf struct {
	memo

	kind     value.Kind
	expr     value.Expr
	deferred bool
	parent   nodeid.ID
	meta     []nodeid.ID
}

func (l *Leaf) node() {}

func (l *Leaf) Parent() (nodeid.ID, bool) { return l.parent, true }

// ValueKind is the static kind of the current expression.
func (l *Leaf) ValueKind() value.Kind { return l.kind }

// Expr returns the expression, or false if none has been set yet.
func (l *Leaf) Expr() (value.Expr, bool) { return l.expr, l.expr != nil }

// Deferred reports whether the leaf should only be evaluated when an
// external action asks for it. The template itself does not consult it.
func (l *Leaf) Deferred() bool { return l.deferred }

// Meta returns the identities of the metas attached to the leaf.
func (l *Leaf) Meta() []nodeid.ID { return slices.Clone(l.meta) }

// Group is an ordered container of child nodes.
type Group struct {
	parent    nodeid.ID
	hasParent bool
	children  []nodeid.ID
	meta      []nodeid.ID
	common    nodeid.ID
	hasCommon bool
}

func (g *Group) node() {}

func (g *Group) Parent() (nodeid.ID, bool) { return g.parent, g.hasParent }

// Children returns the child identities in insertion order.
func (g *Group) Children() []nodeid.ID { return slices.Clone(g.children) }

// Meta returns the identities of the metas attached to the group.
func (g *Group) Meta() []nodeid.ID { return slices.Clone(g.meta) }

// Common returns the group's Common meta, if one is attached.
func (g *Group) Common() (nodeid.ID, bool) { return g.common, g.hasCommon }

// Meta decorates its parent with the behavior described by its payload.
type Meta struct {
	memo

	parent nodeid.ID
	data   Metadata
}

func (m *Meta) node() {}

func (m *Meta) Parent() (nodeid.ID, bool) { return m.parent, true }

// Kind returns the kind of the payload.
func (m *Meta) Kind() MetaKind { return m.data.Kind() }

// Data returns a copy of the payload.
func (m *Meta) Data() Metadata { return cloneMetadata(m.data) }

// entry is a single arena slot. An entry never changes after insertion;
// mutable state lives behind the node pointer.
type entry struct {
	name string
	node Node
}
