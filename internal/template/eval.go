package template

import (
	"strings"

	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/value"
)

// EvalLeaf evaluates a leaf or value-producing meta.
//
// A valid cached result is returned as is. Otherwise the node's expression
// (or meta payload) is evaluated recursively; every node evaluated along the
// way caches its own result and records which nodes it read. Revisiting a
// node that is still being evaluated in the same call fails with
// EvalInfiniteRecursion.
func (t *Template) EvalLeaf(id nodeid.ID) (value.Value, error) {
	ev := &evaluator{t: t, visiting: make(map[nodeid.ID]struct{})}
	return ev.eval(id)
}

// evaluator holds the state of a single EvalLeaf call.
type evaluator struct {
	t *Template
	// visiting is the set of nodes on the active chain.
	visiting map[nodeid.ID]struct{}
	chain    []nodeid.ID
}

// current returns the node whose expression is being evaluated.
func (ev *evaluator) current() nodeid.ID {
	if len(ev.chain) == 0 {
		return nodeid.Root
	}
	return ev.chain[len(ev.chain)-1]
}

func (ev *evaluator) eval(id nodeid.ID) (value.Value, error) {
	e, ok := ev.t.entry(id)
	if !ok {
		return nil, evalErr(EvalMissingDependency, id)
	}
	if _, seen := ev.visiting[id]; seen {
		return nil, evalErr(EvalInfiniteRecursion, id)
	}
	if len(ev.chain) > 0 {
		ev.t.link(ev.current(), id)
	}

	var m *memo
	switch n := e.node.(type) {
	case *Group:
		return nil, evalErr(EvalNotALeaf, id)
	case *Leaf:
		if n.valid {
			return n.cached, nil
		}
		if n.expr == nil {
			return nil, evalErr(EvalMissingInfo, id)
		}
		m = &n.memo
	case *Meta:
		if n.valid {
			return n.cached, nil
		}
		switch n.data.(type) {
		case Common, Constraint:
			return nil, evalErr(EvalMetaType, id)
		}
		m = &n.memo
	}

	ev.t.unlinkDeps(id, m)
	ev.visiting[id] = struct{}{}
	ev.chain = append(ev.chain, id)

	v, err := ev.compute(id, e.node)

	ev.chain = ev.chain[:len(ev.chain)-1]
	delete(ev.visiting, id)
	if err != nil {
		return nil, err
	}

	m.cached, m.valid = v, true
	return v, nil
}

func (ev *evaluator) compute(id nodeid.ID, n Node) (value.Value, error) {
	switch n := n.(type) {
	case *Leaf:
		return ev.expr(n.expr)
	case *Meta:
		switch d := n.data.(type) {
		case Sum:
			var total int64
			for _, v := range d.Values {
				total += v
			}
			return value.Integer(total), nil
		case Ident:
			name, err := ev.t.identName(id, n)
			if err != nil {
				return nil, err
			}
			return value.String(name), nil
		case Concat:
			var sb strings.Builder
			for _, part := range d.Parts {
				v, err := ev.expr(part)
				if err != nil {
					return nil, err
				}
				s, isString := v.(value.String)
				if !isString {
					return nil, evalErr(EvalInvalidConcatElement, id)
				}
				sb.WriteString(string(s))
			}
			return value.String(sb.String()), nil
		}
	}
	return nil, evalErr(EvalMetaType, id)
}

func (ev *evaluator) expr(e value.Expr) (value.Value, error) {
	switch e := e.(type) {
	case value.Literal:
		if e.Value == nil {
			return nil, evalErr(EvalMissingInfo, ev.current())
		}
		return e.Value, nil
	case value.Reference:
		return ev.eval(e.ID)
	case value.IdentRef:
		return ev.identRef(e.ID)
	case value.InfixOp:
		return ev.infix(e)
	}
	return nil, evalErr(EvalMissingInfo, ev.current())
}

// identRef evaluates src, resolves its string result from the root and
// evaluates the node found there.
func (ev *evaluator) identRef(src nodeid.ID) (value.Value, error) {
	v, err := ev.eval(src)
	if err != nil {
		return nil, err
	}
	path, isString := v.(value.String)
	if !isString {
		return nil, evalErr(EvalInvalidIdentRef, src)
	}

	target, found := ev.t.Resolve(string(path), nodeid.Root)
	if !found {
		return nil, &EvalError{Kind: EvalMissingPathDependency, ID: src, Path: string(path)}
	}
	return ev.eval(target)
}

// identName walks up from an Ident meta to the first named group or leaf.
// Metas are skipped, and a Common inner group continues at the meta that
// owns it.
func (t *Template) identName(id nodeid.ID, m *Meta) (string, error) {
	cur := m.parent
	for {
		if cur == nodeid.Root {
			return "", evalErr(EvalMissingParent, id)
		}
		e, ok := t.entry(cur)
		if !ok {
			return "", evalErr(EvalMissingParent, id)
		}

		switch n := e.node.(type) {
		case *Leaf:
			return e.name, nil
		case *Group:
			if !isCommonGroup(e) {
				return e.name, nil
			}
			cur = n.parent
		case *Meta:
			cur = n.parent
		}
	}
}
