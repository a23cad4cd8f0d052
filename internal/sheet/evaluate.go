package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/sheetgo/internal/ctxlog"
	"github.com/specialistvlad/sheetgo/internal/nodeid"
	"github.com/specialistvlad/sheetgo/internal/template"
	"github.com/specialistvlad/sheetgo/internal/value"
)

// ErrNotFound is returned by Value when a path does not resolve.
var ErrNotFound = errors.New("path not found")

// Status is the outcome of evaluating one entry.
type Status int

const (
	StatusValue Status = iota
	StatusDeferred
	StatusUnset
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusValue:
		return "value"
	case StatusDeferred:
		return "deferred"
	case StatusUnset:
		return "unset"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is one evaluated leaf or value-producing meta.
type Entry struct {
	ID     nodeid.ID
	Path   nodeid.Path
	Status Status
	Value  value.Value
	Err    error
	// Derived is set for entries computed from other nodes rather than
	// holding a literal.
	Derived    bool
	Violations []Violation
}

// Violation is a Constraint meta whose bound the entry's value breaks.
type Violation struct {
	Name       string
	Constraint template.Constraint
	Err        error
}

func (v Violation) String() string {
	if v.Err != nil {
		return fmt.Sprintf("%s: %v", v.Name, v.Err)
	}
	return fmt.Sprintf("%s: must be %s %d", v.Name, v.Constraint.Op, v.Constraint.Bound)
}

// Report holds the entries of one evaluation in walk order.
type Report struct {
	Entries []Entry
}

// Err joins the errors of every failed entry, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, e := range r.Entries {
		if e.Status == StatusError {
			errs = append(errs, fmt.Errorf("%s: %w", e.Path, e.Err))
		}
	}
	return errors.Join(errs...)
}

// Violations counts the broken constraints across all entries.
func (r *Report) Violations() int {
	n := 0
	for _, e := range r.Entries {
		n += len(e.Violations)
	}
	return n
}

// Evaluate evaluates every leaf and value-producing meta of the sheet in
// walk order. Deferred leaves are reported but not evaluated; a failing
// entry does not stop the others.
func (s *Sheet) Evaluate(ctx context.Context) *Report {
	logger := ctxlog.FromContext(ctx).With("sheet", s.Name)
	report := &Report{}

	// The callback never fails, so neither does Walk.
	_ = s.Template.Walk(func(id nodeid.ID, path nodeid.Path, n template.Node) error {
		entry := Entry{ID: id, Path: path}

		switch n := n.(type) {
		case *template.Group:
			return nil
		case *template.Meta:
			if k := n.Kind(); k == template.MetaCommon || k == template.MetaConstraint {
				return nil
			}
			entry.Derived = true
			s.evalInto(&entry)
		case *template.Leaf:
			expr, hasExpr := n.Expr()
			switch {
			case n.Deferred():
				entry.Status = StatusDeferred
			case !hasExpr:
				entry.Status = StatusUnset
			default:
				_, literal := expr.(value.Literal)
				entry.Derived = !literal
				s.evalInto(&entry)
				if entry.Status == StatusValue {
					entry.Violations = s.check(n, entry.Value)
				}
			}
		}

		if entry.Status == StatusError {
			logger.Debug("Entry failed to evaluate.", "path", path.String(), "error", entry.Err)
		}
		for _, v := range entry.Violations {
			logger.Warn("Constraint violated.", "path", path.String(), "constraint", v.String(), "value", entry.Value)
		}
		report.Entries = append(report.Entries, entry)
		return nil
	})

	logger.Debug("Sheet evaluated.", "entries", len(report.Entries), "violations", report.Violations())
	return report
}

func (s *Sheet) evalInto(e *Entry) {
	v, err := s.Template.EvalLeaf(e.ID)
	if err != nil {
		e.Status, e.Err = StatusError, err
		return
	}
	e.Status, e.Value = StatusValue, v
}

// check tests v against the Constraint metas attached to leaf.
func (s *Sheet) check(leaf *template.Leaf, v value.Value) []Violation {
	var out []Violation
	for _, id := range leaf.Meta() {
		n, _ := s.Template.Node(id)
		meta, ok := n.(*template.Meta)
		if !ok || meta.Kind() != template.MetaConstraint {
			continue
		}
		c := meta.Data().(template.Constraint)
		name, _ := s.Template.Name(id)

		satisfied, err := c.Satisfied(v)
		if err != nil || !satisfied {
			out = append(out, Violation{Name: name, Constraint: c, Err: err})
		}
	}
	return out
}

// Value resolves path from the root and evaluates the node found there.
func (s *Sheet) Value(path string) (value.Value, error) {
	id, ok := s.Template.Resolve(path, nodeid.Root)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	return s.Template.EvalLeaf(id)
}
