package template

import (
	"github.com/specialistvlad/sheetgo/internal/nodeid"
)

// Template owns every node of one template instance. Identities are
// indexes into the arena and are never reused.
type Template struct {
	nodes []entry
}

// New creates a template containing only the root group.
func New() *Template {
	return &Template{
		nodes: []entry{{name: "", node: &Group{}}},
	}
}

// Len returns the number of nodes, including the root and the inner groups
// of Common metas.
func (t *Template) Len() int {
	return len(t.nodes)
}

// Exists reports whether id names a node.
func (t *Template) Exists(id nodeid.ID) bool {
	_, ok := t.entry(id)
	return ok
}

// Node returns the node with the given identity.
func (t *Template) Node(id nodeid.ID) (Node, bool) {
	e, ok := t.entry(id)
	if !ok {
		return nil, false
	}
	return e.node, true
}

// Name returns the name of the node with the given identity. The root's
// name is empty.
func (t *Template) Name(id nodeid.ID) (string, bool) {
	e, ok := t.entry(id)
	if !ok {
		return "", false
	}
	return e.name, true
}

func (t *Template) entry(id nodeid.ID) (entry, bool) {
	if uint64(id) >= uint64(len(t.nodes)) {
		return entry{}, false
	}
	return t.nodes[id], true
}

func (t *Template) nextID() nodeid.ID {
	return nodeid.ID(len(t.nodes))
}

// AddGroup creates a group named name under parent.
func (t *Template) AddGroup(name string, parent nodeid.ID) (nodeid.ID, error) {
	target, err := t.attachPoint(name, parent, false)
	if err != nil {
		return 0, err
	}

	id := t.nextID()
	t.nodes = append(t.nodes, entry{name: name, node: &Group{parent: target, hasParent: true}})
	g := t.nodes[target].node.(*Group)
	g.children = append(g.children, id)
	return id, nil
}

// AddLeaf creates a leaf named name under parent. The leaf has no
// expression until one is set.
func (t *Template) AddLeaf(name string, parent nodeid.ID, deferred bool) (nodeid.ID, error) {
	target, err := t.attachPoint(name, parent, false)
	if err != nil {
		return 0, err
	}

	id := t.nextID()
	t.nodes = append(t.nodes, entry{name: name, node: &Leaf{parent: target, deferred: deferred}})
	g := t.nodes[target].node.(*Group)
	g.children = append(g.children, id)
	return id, nil
}

// AddMeta creates a meta named name attached to parent, starting with the
// empty payload of the given kind. A Common meta also allocates its inner
// group; a group may carry at most one Common.
func (t *Template) AddMeta(name string, parent nodeid.ID, start MetaKind) (nodeid.ID, error) {
	target, err := t.attachPoint(name, parent, true)
	if err != nil {
		return 0, err
	}

	id := t.nextID()
	data, ok := startData(start, id+1)
	if !ok {
		return 0, &AddError{Kind: AddInvalidMetaKind, Parent: parent, Name: name}
	}

	owner := t.nodes[target].node
	if start == MetaCommon {
		if g, isGroup := owner.(*Group); isGroup && g.hasCommon {
			return 0, &AddError{Kind: AddInvalidParent, Parent: parent, Name: name}
		}
	}

	t.nodes = append(t.nodes, entry{name: name, node: &Meta{parent: target, data: data}})
	if start == MetaCommon {
		t.nodes = append(t.nodes, entry{name: CommonGroupName, node: &Group{parent: id, hasParent: true}})
		if g, isGroup := owner.(*Group); isGroup {
			g.common, g.hasCommon = id, true
		}
	}

	switch n := owner.(type) {
	case *Group:
		n.meta = append(n.meta, id)
	case *Leaf:
		n.meta = append(n.meta, id)
	}
	return id, nil
}

// attachPoint validates an insertion and returns the node the new entry is
// linked into. Nothing is modified. Adding under a Common meta targets its
// inner group.
func (t *Template) attachPoint(name string, parent nodeid.ID, isMeta bool) (nodeid.ID, error) {
	if nodeid.ValidName(name) != nil || name == CommonGroupName {
		return 0, &AddError{Kind: AddInvalidName, Parent: parent, Name: name}
	}

	e, ok := t.entry(parent)
	if !ok {
		return 0, &AddError{Kind: AddParentNotExists, Parent: parent, Name: name}
	}

	target := parent
	switch n := e.node.(type) {
	case *Group:
	case *Leaf:
		if !isMeta {
			return 0, &AddError{Kind: AddParentIsLeaf, Parent: parent, Name: name}
		}
	case *Meta:
		c, isCommon := n.data.(Common)
		if !isCommon {
			return 0, &AddError{Kind: AddParentIsLeaf, Parent: parent, Name: name}
		}
		target = c.Inner
	}

	if _, taken := t.lookupChild(target, name); taken {
		return 0, &AddError{Kind: AddNameConflict, Parent: parent, Name: name}
	}
	return target, nil
}
