package belief

import (
	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/prob"
)

// caseTree handles a node with exactly one incoming edge (spec.md §4.5
// Case T): belief[v] = prior[v] * mul(belief[u], edge_prob[(u,v)]).
func caseTree(prior, parentBelief, edgeProb prob.Value) (prob.Value, error) {
	x, err := parentBelief.Mul(edgeProb)
	if err != nil {
		return nil, err
	}
	return prior.Mul(x)
}

// combineParents computes the product-of-complements "at least one delivers"
// probability over an arbitrary parent list: 1 - prod_i(1 - mul(belief[p_i],
// edge_prob[(p_i,v)])). It is used both for Case M's P(any) over every
// parent and for Case D's N(v) over a join's non-diamond parents.
func combineParents(
	tag prob.Tag,
	parents []graphidx.NodeID,
	belief map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
	v graphidx.NodeID,
) (prob.Value, error) {
	if len(parents) == 0 {
		return prob.Degenerate(tag, false), nil
	}
	acc := prob.Degenerate(tag, true)
	for _, p := range parents {
		x, err := belief[p].Mul(edgeProbs[graphidx.Edge{From: p, To: v}])
		if err != nil {
			return nil, err
		}
		acc, err = acc.Mul(x.Comp())
		if err != nil {
			return nil, err
		}
	}
	return acc.Comp(), nil
}

// caseIndependent handles a node with 2+ parents that is not a diamond join
// (spec.md §4.5 Case M): belief[v] = prior[v] * P(any).
func caseIndependent(
	prior prob.Value,
	parents []graphidx.NodeID,
	belief map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
	v graphidx.NodeID,
) (prob.Value, error) {
	atLeastOne, err := combineParents(prior.Tag(), parents, belief, edgeProbs, v)
	if err != nil {
		return nil, err
	}
	return prior.Mul(atLeastOne)
}

// combineDiamondAndResidual folds a diamond's conditioned contribution D(v)
// together with its non-diamond parents' independent contribution N(v) into
// the final Case D belief: prior[v] * (1 - (1-D(v))*(1-N(v))).
func combineDiamondAndResidual(prior, d, n prob.Value) (prob.Value, error) {
	bothMiss, err := d.Comp().Mul(n.Comp())
	if err != nil {
		return nil, err
	}
	return prior.Mul(bothMiss.Comp())
}
