// Package diamond implements C4 (per-join diamond identification) and C5
// (the recursive, content-addressed diamond store).
//
// What:
//   - Identify runs the 8-step algorithm of spec.md §4.3 for one join node,
//     returning its Descriptor or ok=false if it has no diamond.
//   - Store.Resolve recursively explores a root Descriptor's induced sub-DAG,
//     discovering nested diamonds and deduplicating structurally identical
//     sub-problems behind a content-addressed key (spec.md §4.4).
//
// Why:
//   - belief's case D needs, for each join, the conditioning roots
//     (HighestNodes) and the sub-DAG to re-run propagation over for every
//     conditioning assignment; Store caches that sub-DAG analysis once per
//     unique structural shape instead of recomputing it per occurrence
//     (spec.md §9: "cache per unique-diamond entry").
//
// Complexity: Identify is O(V+E) per join (dominated by the induced-edge
// scan); Store.Resolve amortizes repeated structural shapes to one analysis
// each via internal/xhash content addressing.
package diamond
