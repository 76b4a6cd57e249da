package graphidx

import (
	"fmt"
	"sort"

	"github.com/dagbelief/dagbelief/dagbelieterr"
)

// visitState mirrors the teacher's dfs package's White/Gray/Black coloring
// (see dfs/types.go), used here only for cycle detection during Build.
const (
	white = iota
	gray
	black
)

// Build constructs an Index from edges, deterministically and in a single
// pass. It rejects self-loops (ErrSelfLoop), duplicate ordered pairs
// (ErrDuplicateEdge), and cyclic input (ErrNotADAG, detected via three-color
// DFS in the style of the teacher's dfs.DetectCycles).
//
// Complexity: O(V+E).
func Build(edges []Edge) (*Index, error) {
	outgoing := make(map[NodeID][]NodeID, len(edges))
	incoming := make(map[NodeID][]NodeID, len(edges))
	seen := make(map[Edge]struct{}, len(edges))
	nodeSet := make(map[NodeID]struct{}, len(edges)*2)

	for _, e := range edges {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: node %d", dagbelieterr.ErrSelfLoop, e.From)
		}
		if _, dup := seen[e]; dup {
			return nil, fmt.Errorf("%w: (%d,%d)", dagbelieterr.ErrDuplicateEdge, e.From, e.To)
		}
		seen[e] = struct{}{}

		outgoing[e.From] = append(outgoing[e.From], e.To)
		if _, ok := outgoing[e.To]; !ok {
			outgoing[e.To] = nil
		}
		incoming[e.To] = append(incoming[e.To], e.From)
		if _, ok := incoming[e.From]; !ok {
			incoming[e.From] = nil
		}
		nodeSet[e.From] = struct{}{}
		nodeSet[e.To] = struct{}{}
	}

	nodes := make([]NodeID, 0, len(nodeSet))
	for v := range nodeSet {
		nodes = append(nodes, v)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	// Deterministic adjacency order: ascending target/source id within each list.
	for _, v := range nodes {
		sort.Slice(outgoing[v], func(i, j int) bool { return outgoing[v][i] < outgoing[v][j] })
		sort.Slice(incoming[v], func(i, j int) bool { return incoming[v][i] < incoming[v][j] })
	}

	idx := &Index{
		Edges:    append([]Edge(nil), edges...),
		Outgoing: outgoing,
		Incoming: incoming,
		nodes:    nodes,
	}

	if err := detectCycle(idx); err != nil {
		return nil, err
	}

	for _, v := range nodes {
		if len(incoming[v]) == 0 {
			idx.Sources = append(idx.Sources, v)
		}
	}

	return idx, nil
}

// detectCycle runs a three-color DFS over idx's outgoing adjacency, returning
// ErrNotADAG on the first back-edge found.
func detectCycle(idx *Index) error {
	state := make(map[NodeID]int, len(idx.nodes))
	var visit func(v NodeID) error
	visit = func(v NodeID) error {
		state[v] = gray
		for _, w := range idx.Outgoing[v] {
			switch state[w] {
			case white:
				if err := visit(w); err != nil {
					return err
				}
			case gray:
				return fmt.Errorf("%w: back-edge (%d,%d)", dagbelieterr.ErrNotADAG, v, w)
			}
		}
		state[v] = black
		return nil
	}

	for _, v := range idx.nodes {
		if state[v] == white {
			if err := visit(v); err != nil {
				return err
			}
		}
	}
	return nil
}
