// Package template implements the hierarchical template: a graph of named
// nodes where some leaves hold raw values and others hold expressions that
// reference other nodes by identity or, indirectly, by path.
//
// # Node Kinds
//
// Every node is one of three kinds:
//   - **Group:** an ordered container of child nodes. The root group has ID 0,
//     always exists and has no parent.
//   - **Leaf:** a scalar slot holding an expression and a memoized result.
//   - **Meta:** a node that decorates its parent with derived or structural
//     behavior (Common, Sum, Ident, Concat, Constraint).
//
// All nodes live in a single arena owned by Template and every link between
// them (parent, child, reference, Common inner group) is a plain nodeid.ID.
// The graph is not a pure tree: Reference, IdentRef and Common inner groups
// add edges that may form cycles. Cycles are only detected at evaluation
// time.
//
// # Namespaces and Paths
//
// Names are unique within the combined child and metadata namespace of a
// parent. A path such as `abilities.strength.mod.mod` descends through
// children and metadata; descending through a Common meta continues in its
// inner group.
//
// # Evaluation
//
// EvalLeaf evaluates a leaf or value-producing meta on demand. Each node
// evaluated during a call caches its own result. While evaluating, the
// template records which nodes each result was computed from, and every
// mutation (SetValue, SetExpr, SetMeta) invalidates the mutated node and,
// transitively, everything computed from it.
//
// # Concurrency
//
// A Template has no internal synchronization. Callers sharing one between
// goroutines must serialize all access, including evaluation, which writes
// to caches.
package template
