package diamond

import "github.com/dagbelief/dagbelief/graphidx"

// Descriptor describes one join node's diamond substructure (spec.md §3).
type Descriptor struct {
	// Join is the re-convergence node.
	Join graphidx.NodeID

	// RelevantNodes is the vertex set of EdgeList after the completeness pass,
	// sorted ascending. It includes Join, every HighestNodes entry, and every
	// intermediate node on a path between them.
	RelevantNodes []graphidx.NodeID

	// HighestNodes is the non-empty set of conditioning roots: fork ancestors
	// shared by two or more of Join's parents, restricted to sources of the
	// induced sub-DAG. Sorted ascending.
	HighestNodes []graphidx.NodeID

	// EdgeList is the induced, completeness-closed edge set, in the same
	// relative order as the original Index.Edges (spec.md §4.3 tie-break).
	EdgeList []graphidx.Edge

	// NonDiamondParents are parents of Join not reachable from any
	// HighestNodes element inside the diamond. Sorted ascending.
	NonDiamondParents []graphidx.NodeID
}
