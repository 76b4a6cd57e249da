// Package topo computes the topological artifacts of C3: layered iteration
// sets, ancestor/descendant closures, and fork/join classification, over a
// graphidx.Index.
//
// What:
//   - ForkJoinOf classifies nodes by in/out-degree (forks: |outgoing|>1,
//     joins: |incoming|>1).
//   - Analyze runs a Kahn-style peel that drains one BFS frontier (layer) at
//     a time, fusing ancestor-closure propagation into the same pass and
//     back-propagating descendant closures once each node's ancestor set is
//     final.
//
// Why:
//   - diamond needs ancestors/descendants and fork/join sets to run its
//     8-step identification per join node (spec.md §4.3); belief needs
//     Layers to drive its layer-synchronous pass (spec.md §4.5).
//
// Set representation: Closures picks a dense bitset (DenseClosureThreshold)
// or a sparse hash-set backing per node count, matching the teacher's
// README guidance to trade bitsets for hash-sets by density (spec.md §9).
//
// Errors:
//   - dagbelieterr.ErrNotADAG if residual in-degree remains after the queue drains.
//
// Complexity: O((V+E)*avg(|ancestors|)) per spec.md §4.2.
package topo
