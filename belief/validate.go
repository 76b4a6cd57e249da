package belief

import (
	"fmt"

	"github.com/dagbelief/dagbelief/dagbelieterr"
	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/prob"
)

// validateInputs checks the input-semantic invariants of spec.md §7: every
// node referenced by idx must have a prior, every edge must have an edge
// probability, and every Value involved must share one Tag.
func validateInputs(
	idx *graphidx.Index,
	priors map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
) error {
	var tag prob.Tag
	tagSet := false

	for _, v := range idx.Nodes() {
		pr, ok := priors[v]
		if !ok {
			return fmt.Errorf("%w: node %d", dagbelieterr.ErrMissingPrior, v)
		}
		if !tagSet {
			tag = pr.Tag()
			tagSet = true
		} else if pr.Tag() != tag {
			return fmt.Errorf("%w: node %d is %s, expected %s", dagbelieterr.ErrMixedProbabilityTags, v, pr.Tag(), tag)
		}
	}

	for _, e := range idx.Edges {
		ep, ok := edgeProbs[e]
		if !ok {
			return fmt.Errorf("%w: edge (%d,%d)", dagbelieterr.ErrMissingEdgeProb, e.From, e.To)
		}
		if !tagSet {
			tag = ep.Tag()
			tagSet = true
		} else if ep.Tag() != tag {
			return fmt.Errorf("%w: edge (%d,%d) is %s, expected %s", dagbelieterr.ErrMixedProbabilityTags, e.From, e.To, ep.Tag(), tag)
		}
	}

	return nil
}
