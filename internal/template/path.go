package template

import (
	"slices"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
)

// PathOf returns the path that resolves to id from the root. Common inner
// groups are not addressable, so they are left out. The root's path is
// empty.
func (t *Template) PathOf(id nodeid.ID) (nodeid.Path, bool) {
	if !t.Exists(id) {
		return nil, false
	}

	var segments []string
	for cur := id; cur != nodeid.Root; {
		e := t.nodes[cur]
		if !isCommonGroup(e) {
			segments = append(segments, e.name)
		}
		parent, ok := e.node.Parent()
		if !ok {
			return nil, false
		}
		cur = parent
	}
	slices.Reverse(segments)
	return nodeid.Path(segments), true
}

// WalkFunc is called for every user-visible node visited by Walk. Returning
// an error stops the walk and Walk returns that error.
type WalkFunc func(id nodeid.ID, path nodeid.Path, n Node) error

// Walk visits every user-visible node depth-first, in insertion order:
// a group's children, then its metadata. Members of a Common meta's inner
// group are visited as if they were children of the meta. The root itself
// is not visited.
func (t *Template) Walk(fn WalkFunc) error {
	type frame struct {
		id   nodeid.ID
		path nodeid.Path
	}

	var stack []frame
	push := func(scope nodeid.ID, path nodeid.Path) {
		members := t.members(scope)
		for i := len(members) - 1; i >= 0; i-- {
			id := members[i]
			stack = append(stack, frame{id: id, path: path.Append(t.nodes[id].name)})
		}
	}

	push(nodeid.Root, nil)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(f.id, f.path, t.nodes[f.id].node); err != nil {
			return err
		}
		push(f.id, f.path)
	}
	return nil
}

// members lists the nodes resolvable one segment below scope, in lookup
// order.
func (t *Template) members(scope nodeid.ID) []nodeid.ID {
	switch n := t.nodes[scope].node.(type) {
	case *Group:
		return append(slices.Clone(n.children), n.meta...)
	case *Leaf:
		return n.meta
	case *Meta:
		if c, isCommon := n.data.(Common); isCommon {
			return t.members(c.Inner)
		}
	}
	return nil
}

func isCommonGroup(e entry) bool {
	_, isGroup := e.node.(*Group)
	return isGroup && e.name == CommonGroupName
}
