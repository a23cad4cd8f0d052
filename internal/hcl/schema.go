package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Sheets []*Sheet  `hcl:"sheet,block"`
	Remain hcl.Body `hcl:",remain"`
}

// Sheet is the HCL shape of a `sheet "<name>" { ... }` block.
type Sheet struct {
	Name   string   `hcl:"name,label"`
	Scores []*Score `hcl:"score,block"`
	Groups []*Group `hcl:"group,block"`
}

// Score is a `score "<ability>" { value = 14 }` block.
type Score struct {
	Name  string `hcl:"name,label"`
	Value int64  `hcl:"value"`
	Min   *int64 `hcl:"min,optional"`
	Max   *int64 `hcl:"max,optional"`
}

// Group is a `group "<name>" { ... }` block. Groups nest.
type Group struct {
	Name   string   `hcl:"name,label"`
	Leaves []*Leaf  `hcl:"leaf,block"`
	Sums   []*Sum   `hcl:"sum,block"`
	Groups []*Group `hcl:"group,block"`
}

// Leaf is a `leaf "<name>" { value = ... }` block. The value is kept as an
// expression so an omitted attribute can be told apart from a null one.
type Leaf struct {
	Name     string         `hcl:"name,label"`
	Value    hcl.Expression `hcl:"value,optional"`
	Deferred bool           `hcl:"deferred,optional"`
	Min      *int64         `hcl:"min,optional"`
	Max      *int64         `hcl:"max,optional"`
}

// Sum is a `sum "<name>" { values = [1, 2] }` block.
type Sum struct {
	Name   string  `hcl:"name,label"`
	Values []int64 `hcl:"values"`
}
