package template

import (
	"slices"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
)

// Invalidate clears the cached result of id and of every node whose cached
// result was computed from it, directly or transitively. Unknown identities
// and groups are ignored.
func (t *Template) Invalidate(id nodeid.ID) {
	seen := make(map[nodeid.ID]struct{})
	stack := []nodeid.ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := seen[cur]; done {
			continue
		}
		seen[cur] = struct{}{}

		m := t.memoOf(cur)
		if m == nil {
			continue
		}
		m.reset()
		stack = append(stack, m.dependents...)
	}
}

// InvalidateAll clears every cached result.
func (t *Template) InvalidateAll() {
	for i := range t.nodes {
		if m := t.memoOf(nodeid.ID(i)); m != nil {
			m.reset()
		}
	}
}

func (t *Template) memoOf(id nodeid.ID) *memo {
	e, ok := t.entry(id)
	if !ok {
		return nil
	}
	switch n := e.node.(type) {
	case *Leaf:
		return &n.memo
	case *Meta:
		return &n.memo
	}
	return nil
}

// link records that dependent's result is computed from dependency.
func (t *Template) link(dependent, dependency nodeid.ID) {
	dm, sm := t.memoOf(dependent), t.memoOf(dependency)
	if dm == nil || sm == nil {
		return
	}
	if !slices.Contains(dm.deps, dependency) {
		dm.deps = append(dm.deps, dependency)
	}
	if !slices.Contains(sm.dependents, dependent) {
		sm.dependents = append(sm.dependents, dependent)
	}
}

// unlinkDeps drops the edges recorded by the previous evaluation of id.
func (t *Template) unlinkDeps(id nodeid.ID, m *memo) {
	for _, dep := range m.deps {
		if dm := t.memoOf(dep); dm != nil {
			dm.dependents = slices.DeleteFunc(dm.dependents, func(d nodeid.ID) bool { return d == id })
		}
	}
	m.deps = m.deps[:0]
}
