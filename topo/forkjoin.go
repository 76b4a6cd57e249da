package topo

import "github.com/dagbelief/dagbelief/graphidx"

// ForkJoin holds the fork and join node sets of a graph: forks have more
// than one outgoing edge, joins have more than one incoming edge.
type ForkJoin struct {
	Forks map[graphidx.NodeID]struct{}
	Joins map[graphidx.NodeID]struct{}
}

// IsFork reports whether v has more than one outgoing edge.
func (fj *ForkJoin) IsFork(v graphidx.NodeID) bool {
	_, ok := fj.Forks[v]
	return ok
}

// IsJoin reports whether v has more than one incoming edge.
func (fj *ForkJoin) IsJoin(v graphidx.NodeID) bool {
	_, ok := fj.Joins[v]
	return ok
}

// ForkJoinOf classifies every node in idx by in/out-degree (spec.md §3).
func ForkJoinOf(idx *graphidx.Index) *ForkJoin {
	fj := &ForkJoin{
		Forks: make(map[graphidx.NodeID]struct{}),
		Joins: make(map[graphidx.NodeID]struct{}),
	}
	for _, v := range idx.Nodes() {
		if len(idx.Outgoing[v]) > 1 {
			fj.Forks[v] = struct{}{}
		}
		if len(idx.Incoming[v]) > 1 {
			fj.Joins[v] = struct{}{}
		}
	}
	return fj
}
