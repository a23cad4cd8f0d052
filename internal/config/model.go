package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Definition is the unified, format-agnostic description of a character
// sheet: its ability scores plus any free-form groups.
type Definition struct {
	Name   string
	Scores []*Score
	Groups []*Group
}

// Score is an ability score input, e.g. `strength = 14`.
type Score struct {
	Name  string
	Value int64
	// Bounds are stored on the sheet as constraint metas and reported when
	// violated. They never stop evaluation.
	Min *int64
	Max *int64
}

// Group is a named container of leaves, sums and nested groups.
type Group struct {
	Name   string
	Leaves []*Leaf
	Sums   []*Sum
	Groups []*Group
}

// Leaf is a literal slot. A leaf without a value is left unset; a deferred
// leaf is skipped by evaluation.
type Leaf struct {
	Name     string
	Value    *cty.Value
	Deferred bool
	Min      *int64
	Max      *int64
}

// HasValue reports whether the definition assigns a value to the leaf.
func (l *Leaf) HasValue() bool {
	return l.Value != nil && !l.Value.IsNull()
}

// Sum is a fixed list of integers added together.
type Sum struct {
	Name   string
	Values []int64
}

// Merge appends other's scores and groups to d. The first non-empty name
// wins.
func (d *Definition) Merge(other *Definition) {
	if d.Name == "" {
		d.Name = other.Name
	}
	d.Scores = append(d.Scores, other.Scores...)
	d.Groups = append(d.Groups, other.Groups...)
}
