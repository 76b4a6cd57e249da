// Package graphidx builds and holds the immutable graph index (C2): the
// edge list plus outgoing/incoming adjacency and the source set, rejecting
// self-loops, duplicate edges, and cyclic input at construction time.
//
// What:
//   - Build(edges) constructs an Index in a single deterministic pass.
//   - Index is immutable once returned: no method mutates it.
//
// Why:
//   - topo, diamond, and belief all consume one read-only Index concurrently
//     (spec.md §5: "structural artifacts ... become immutable, shared by
//     read-only reference across threads").
//
// Errors:
//   - ErrSelfLoop, ErrDuplicateEdge, ErrNotADAG (all from dagbelieterr).
//
// Complexity: Build is O(V+E).
package graphidx
