package belief

import (
	"context"

	"github.com/dagbelief/dagbelief/dagbelieterr"
	"github.com/dagbelief/dagbelief/diamond"
	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/prob"
)

// enumerateFull computes D(v) = sum_sigma w_sigma * b_sigma(v) over every
// assignment sigma: H -> {true,false} (spec.md §4.5 Case D, |H| <= T).
func (eng *engine) enumerateFull(
	ctx context.Context,
	nested *diamond.Entry,
	h []graphidx.NodeID,
	outerBelief map[graphidx.NodeID]prob.Value,
	priors map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
	tag prob.Tag,
) (prob.Value, error) {
	n := len(h)
	total := 1 << uint(n)
	acc := prob.Degenerate(tag, false)

	for mask := 0; mask < total; mask++ {
		select {
		case <-ctx.Done():
			return nil, dagbelieterr.ErrCancelled
		default:
		}

		overrides := make(map[graphidx.NodeID]prob.Value, n)
		weight := prob.Degenerate(tag, true)
		for i, node := range h {
			active := mask&(1<<uint(i)) != 0
			overrides[node] = prob.Degenerate(tag, active)
			factor := outerBelief[node]
			if !active {
				factor = factor.Comp()
			}
			var err error
			weight, err = weight.Mul(factor)
			if err != nil {
				return nil, err
			}
		}

		subBelief, err := eng.evalSubDAG(ctx, nested, overrides, priors, edgeProbs, false, true)
		if err != nil {
			return nil, err
		}
		bSigma := subBelief[nested.Descriptor.Join]

		term, err := weight.Mul(bSigma)
		if err != nil {
			return nil, err
		}
		acc, err = acc.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// enumeratePIE computes D(v) via n-way inclusion-exclusion over the events
// E_h = "path from h activates v through the diamond" (spec.md §4.5, |H| >
// T):
//
//	P(union) = sum_{k=1..n} (-1)^(k+1) sum_{|S|=k} P(intersect_{h in S} E_h)
//
// Each intersection term P(intersect_{h in S} E_h) is computed exactly like
// one term of enumerateFull's wσ: every h in H is forced, h in S to active
// and h in H\S to inactive, weighted by the product over all of H of
// belief_original(h) (active) or comp(belief_original(h)) (inactive). Only
// the non-empty subsets S are summed, with alternating sign by |S|, instead
// of enumerateFull's full 2^|H| assignments summed with uniform sign. The
// recursive propagation itself uses only cases S/T/M (diamondsAllowed=false):
// a nested diamond join inside the sub-DAG is evaluated as an ordinary
// independent-parents node instead of recursing into case D. Mathematically
// equivalent to enumerateFull but bounds per-term memory to O(sub_DAG)
// instead of requiring the full 2^|H| term set to be held at once.
func (eng *engine) enumeratePIE(
	ctx context.Context,
	nested *diamond.Entry,
	h []graphidx.NodeID,
	outerBelief map[graphidx.NodeID]prob.Value,
	priors map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
	tag prob.Tag,
) (prob.Value, error) {
	n := len(h)
	acc := prob.Degenerate(tag, false)

	for mask := 1; mask < (1 << uint(n)); mask++ {
		select {
		case <-ctx.Done():
			return nil, dagbelieterr.ErrCancelled
		default:
		}

		overrides := make(map[graphidx.NodeID]prob.Value, n)
		weight := prob.Degenerate(tag, true)
		popcount := 0
		for i, node := range h {
			active := mask&(1<<uint(i)) != 0
			if active {
				popcount++
			}
			overrides[node] = prob.Degenerate(tag, active)
			factor := outerBelief[node]
			if !active {
				factor = factor.Comp()
			}
			var err error
			weight, err = weight.Mul(factor)
			if err != nil {
				return nil, err
			}
		}

		subBelief, err := eng.evalSubDAG(ctx, nested, overrides, priors, edgeProbs, false, false)
		if err != nil {
			return nil, err
		}
		bIntersect := subBelief[nested.Descriptor.Join]

		term, err := weight.Mul(bIntersect)
		if err != nil {
			return nil, err
		}

		if popcount%2 == 1 {
			acc, err = acc.Add(term)
		} else {
			acc, err = acc.Sub(term)
		}
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
