package topo

import (
	"fmt"
	"sort"

	"github.com/dagbelief/dagbelief/dagbelieterr"
	"github.com/dagbelief/dagbelief/graphidx"
)

// Layers is the ordered sequence of disjoint node sets produced by Analyze.
// Order[i] holds every node whose longest predecessor chain has length i,
// listed in ascending NodeID order (spec.md §4.2's determinism guarantee).
type Layers struct {
	Order   [][]graphidx.NodeID
	LayerOf map[graphidx.NodeID]int
}

// Closures holds the ancestor/descendant transitive closures computed
// alongside layering. ancestors[v] includes v itself; descendants[v] does not.
type Closures struct {
	ancestors   map[graphidx.NodeID]closureSet
	descendants map[graphidx.NodeID]closureSet
}

// IsAncestor reports whether u is a transitive predecessor of v, or u==v.
func (c *Closures) IsAncestor(u, v graphidx.NodeID) bool {
	set, ok := c.ancestors[v]
	return ok && set.has(u)
}

// IsDescendant reports whether v is a transitive successor of u.
func (c *Closures) IsDescendant(v, u graphidx.NodeID) bool {
	set, ok := c.descendants[u]
	return ok && set.has(v)
}

// Ancestors returns the sorted transitive-predecessor set of v, including v.
func (c *Closures) Ancestors(v graphidx.NodeID) []graphidx.NodeID {
	return sortedNodes(c.ancestors[v])
}

// Descendants returns the sorted transitive-successor set of v, excluding v.
func (c *Closures) Descendants(v graphidx.NodeID) []graphidx.NodeID {
	return sortedNodes(c.descendants[v])
}

func sortedNodes(set closureSet) []graphidx.NodeID {
	if set == nil {
		return nil
	}
	out := set.slice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Analyze runs a Kahn-style peel over idx, draining one BFS frontier (layer)
// at a time, and fuses ancestor-closure propagation into the same pass:
// a node's ancestor set is the union of its predecessors' (already-final)
// ancestor sets, plus itself. Descendant closures are back-propagated to
// every ancestor once a node's ancestor set is known. Returns ErrNotADAG if
// any node remains unprocessed once the queue drains.
//
// Complexity: O((V+E)*avg(|ancestors|)).
func Analyze(idx *graphidx.Index) (*Layers, *Closures, error) {
	nodes := idx.Nodes()
	toIndex := make(map[graphidx.NodeID]int, len(nodes))
	for i, v := range nodes {
		toIndex[v] = i
	}

	inDegree := make(map[graphidx.NodeID]int, len(nodes))
	for _, v := range nodes {
		inDegree[v] = len(idx.Incoming[v])
	}

	ancestors := make(map[graphidx.NodeID]closureSet, len(nodes))
	descendants := make(map[graphidx.NodeID]closureSet, len(nodes))
	for _, v := range nodes {
		descendants[v] = newClosureSet(toIndex, nodes)
	}

	layers := &Layers{LayerOf: make(map[graphidx.NodeID]int, len(nodes))}

	var frontier []graphidx.NodeID
	for _, v := range nodes {
		if inDegree[v] == 0 {
			frontier = append(frontier, v)
		}
	}
	sort.Slice(frontier, func(i, j int) bool { return frontier[i] < frontier[j] })

	processed := 0
	layerIdx := 0
	for len(frontier) > 0 {
		for _, v := range frontier {
			set := newClosureSet(toIndex, nodes)
			set.add(v)
			for _, u := range idx.Incoming[v] {
				set.unionFrom(ancestors[u])
			}
			ancestors[v] = set
			layers.LayerOf[v] = layerIdx
		}
		layerCopy := append([]graphidx.NodeID(nil), frontier...)
		layers.Order = append(layers.Order, layerCopy)
		processed += len(frontier)

		var next []graphidx.NodeID
		for _, v := range frontier {
			for _, w := range idx.Outgoing[v] {
				inDegree[w]--
				if inDegree[w] == 0 {
					next = append(next, w)
				}
			}
		}
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		frontier = next
		layerIdx++
	}

	if processed != len(nodes) {
		return nil, nil, fmt.Errorf("%w: %d of %d nodes have residual in-degree", dagbelieterr.ErrNotADAG, len(nodes)-processed, len(nodes))
	}

	for _, v := range nodes {
		for _, a := range ancestors[v].slice() {
			if a == v {
				continue
			}
			descendants[a].add(v)
		}
	}

	return layers, &Closures{ancestors: ancestors, descendants: descendants}, nil
}
