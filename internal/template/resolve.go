package template

import (
	"slices"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
)

// Resolve translates a dotted path, relative to start, into an identity.
// Each segment is looked up among the children and metadata of the current
// scope. Leaves only expose their metadata; a Common meta continues in its
// inner group; every other meta is a dead end.
func (t *Template) Resolve(path string, start nodeid.ID) (nodeid.ID, bool) {
	scope := start
	for {
		head, rest, last := nodeid.Split(path)
		id, ok := t.lookupChild(scope, head)
		if !ok {
			return 0, false
		}
		if last {
			return id, true
		}
		scope, path = id, rest
	}
}

// lookupChild finds the node named name directly reachable from scope.
func (t *Template) lookupChild(scope nodeid.ID, name string) (nodeid.ID, bool) {
	e, ok := t.entry(scope)
	if !ok {
		return 0, false
	}

	switch n := e.node.(type) {
	case *Group:
		if id, found := t.findNamed(n.children, name); found {
			return id, true
		}
		return t.findNamed(n.meta, name)
	case *Leaf:
		return t.findNamed(n.meta, name)
	case *Meta:
		if c, isCommon := n.data.(Common); isCommon {
			return t.lookupChild(c.Inner, name)
		}
	}
	return 0, false
}

func (t *Template) findNamed(ids []nodeid.ID, name string) (nodeid.ID, bool) {
	i := slices.IndexFunc(ids, func(id nodeid.ID) bool {
		return t.nodes[id].name == name
	})
	if i < 0 {
		return 0, false
	}
	return ids[i], true
}
