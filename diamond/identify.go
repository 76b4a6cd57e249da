package diamond

import (
	"sort"

	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/prob"
	"github.com/dagbelief/dagbelief/topo"
)

type nodeSet map[graphidx.NodeID]struct{}

func newNodeSet(vs ...graphidx.NodeID) nodeSet {
	s := make(nodeSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

func (s nodeSet) add(v graphidx.NodeID)      { s[v] = struct{}{} }
func (s nodeSet) has(v graphidx.NodeID) bool { _, ok := s[v]; return ok }
func (s nodeSet) addAll(vs []graphidx.NodeID) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}
func (s nodeSet) sorted() []graphidx.NodeID {
	out := make([]graphidx.NodeID, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Identify runs the 8-step diamond-identification algorithm of spec.md §4.3
// for the single join node j. ok is false (with a nil Descriptor) if j has
// no diamond. priors supplies the prior of every graph-level source, used
// at step 3 to drop degenerate (prior exactly 0 or 1) conditioning roots.
func Identify(
	idx *graphidx.Index,
	closures *topo.Closures,
	fj *topo.ForkJoin,
	priors map[graphidx.NodeID]prob.Value,
	join graphidx.NodeID,
) (desc *Descriptor, ok bool, err error) {
	parents := idx.Incoming[join]
	if len(parents) < 2 {
		return nil, false, nil
	}

	// Step 1: collect candidate ancestors.
	a := newNodeSet()
	for _, p := range parents {
		a.addAll(closures.Ancestors(p))
	}
	a.addAll(parents)

	// Step 2: restrict to forks.
	for v := range a {
		if !fj.IsFork(v) {
			delete(a, v)
		}
	}

	// Step 3: drop irrelevant (degenerate-prior) sources.
	sourceSet := newNodeSet(idx.Sources...)
	for v := range a {
		if !sourceSet.has(v) {
			continue
		}
		pr, ok := priors[v]
		if ok && pr.IsZeroOrOne() {
			delete(a, v)
		}
	}
	if len(a) == 0 {
		return nil, false, nil
	}

	// Step 4: build candidate relevant set R.
	ancestorsJoin := newNodeSet(closures.Ancestors(join)...)
	r := newNodeSet()
	r.addAll(a.sorted())
	r.add(join)
	for _, v := range a.sorted() {
		for _, d := range closures.Descendants(v) {
			if ancestorsJoin.has(d) {
				r.add(d)
			}
		}
	}

	// Step 5: extract induced edges.
	inEprime := make(map[graphidx.Edge]struct{})
	for _, edge := range idx.Edges {
		if r.has(edge.From) && r.has(edge.To) {
			inEprime[edge] = struct{}{}
		}
	}

	// Step 6: find sub-sources of the induced sub-DAG; highest_nodes = A ∩ sub_sources.
	hasIncomingInEprime := make(nodeSet)
	for edge := range inEprime {
		hasIncomingInEprime.add(edge.To)
	}
	subSources := newNodeSet()
	for v := range r {
		if !hasIncomingInEprime.has(v) {
			subSources.add(v)
		}
	}
	highest := newNodeSet()
	for v := range a {
		if subSources.has(v) {
			highest.add(v)
		}
	}

	// Step 7: completeness pass over the snapshot of intermediate nodes.
	intermediate := newNodeSet()
	for v := range r {
		if subSources.has(v) || v == join {
			continue
		}
		intermediate.add(v)
	}
	for _, m := range intermediate.sorted() {
		for _, u := range idx.Incoming[m] {
			inEprime[graphidx.Edge{From: u, To: m}] = struct{}{}
			r.add(u)
		}
	}

	// Step 8: finalize.
	if len(highest) == 0 {
		return nil, false, nil
	}
	finalEdges := make([]graphidx.Edge, 0, len(inEprime))
	relevant := newNodeSet()
	for _, edge := range idx.Edges {
		if _, ok := inEprime[edge]; ok {
			finalEdges = append(finalEdges, edge)
			relevant.add(edge.From)
			relevant.add(edge.To)
		}
	}
	relevant.add(join)
	relevant.addAll(highest.sorted())

	nonDiamondParents := newNodeSet()
	for _, p := range parents {
		if !relevant.has(p) {
			nonDiamondParents.add(p)
		}
	}

	return &Descriptor{
		Join:              join,
		RelevantNodes:     relevant.sorted(),
		HighestNodes:      highest.sorted(),
		EdgeList:          finalEdges,
		NonDiamondParents: nonDiamondParents.sorted(),
	}, true, nil
}

// IdentifyAll runs Identify for every join node in fj.Joins, returning the
// set of root descriptors in ascending join-id order (deterministic output,
// spec.md §4.2's ordering guarantee).
func IdentifyAll(
	idx *graphidx.Index,
	closures *topo.Closures,
	fj *topo.ForkJoin,
	priors map[graphidx.NodeID]prob.Value,
) ([]*Descriptor, error) {
	joins := make([]graphidx.NodeID, 0, len(fj.Joins))
	for j := range fj.Joins {
		joins = append(joins, j)
	}
	sort.Slice(joins, func(i, j int) bool { return joins[i] < joins[j] })

	var out []*Descriptor
	for _, j := range joins {
		d, ok, err := Identify(idx, closures, fj, priors, j)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}
