// internal/nodeid/doc.go

/*
Package nodeid provides the identity and path vocabulary shared by the
template packages.

Every node in a template is addressed by a small unsigned integer ID that is
assigned monotonically by the store. ID 0 is reserved for the implicit root
group. Nodes can also be addressed by name through a path: a dot-separated
sequence of segment names, e.g. `abilities.strength.mod.mod`.

Paths are case-sensitive and matched exactly. There are no wildcards, no
indexing and no escaping, so a node name may never contain the separator.
*/
package nodeid
