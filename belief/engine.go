package belief

import (
	"context"
	"fmt"

	"github.com/dagbelief/dagbelief/dagbelieterr"
	"github.com/dagbelief/dagbelief/diamond"
	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/prob"
	"github.com/dagbelief/dagbelief/topo"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"
	"golang.org/x/sync/semaphore"
)

// engine carries the shared, read-only context for one Compute call: the
// resolved options and a semaphore bounding how many top-level nodes
// (including their diamond conditioning) are evaluated concurrently; the
// recursive sub-DAG passes inside a diamond do not acquire it.
type engine struct {
	opts options
	sem  *semaphore.Weighted
}

// Compute is the single external entry point of the belief engine (spec.md
// §6): it builds the structural index, resolves every diamond, then runs one
// layer-synchronous pass computing belief[v] for every node.
func Compute(
	ctx context.Context,
	edges []graphidx.Edge,
	priors map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
	opts ...Option,
) (map[graphidx.NodeID]prob.Value, error) {
	resolved := defaultOptions()
	for _, opt := range opts {
		opt(&resolved)
	}
	logger, _ := resolved.logger.SpawnForComponent("belief").WithRun()

	idx, err := graphidx.Build(edges)
	if err != nil {
		return nil, err
	}
	if err := validateInputs(idx, priors, edgeProbs); err != nil {
		return nil, err
	}

	layers, closures, err := topo.Analyze(idx)
	if err != nil {
		return nil, err
	}
	forkJoin := topo.ForkJoinOf(idx)

	descriptors, err := diamond.IdentifyAll(idx, closures, forkJoin, priors)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("diamonds", len(descriptors)).Msg("diamonds identified")

	store := diamond.NewStore()
	nested, err := diamond.ResolveAll(ctx, store, priors, descriptors, resolved.parallelism)
	if err != nil {
		return nil, err
	}

	root := &diamond.Entry{
		SubIndex:    idx,
		SubLayers:   layers,
		SubClosures: closures,
		SubForkJoin: forkJoin,
		Nested:      nested,
	}

	eng := &engine{
		opts: resolved,
		sem:  semaphore.NewWeighted(resolved.parallelism),
	}

	belief, err := eng.evalSubDAG(ctx, root, nil, priors, edgeProbs, true, true)
	if err != nil {
		return nil, err
	}

	for v, val := range belief {
		if err := prob.CheckRange("belief", val, resolved.epsilon); err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", dagbelieterr.ErrNumericOutOfRange, v, err)
		}
	}

	logger.Debug().Int("nodes", len(belief)).Msg("belief computation complete")
	return belief, nil
}

// evalSubDAG runs cases S/T/M/D over every layer of entry.SubIndex, honoring
// overrides (the diamond-conditioning assignment forcing entry.Nested's
// highest_nodes to a fixed state; nil at the top level). gated is true only
// for the outermost call from Compute: only that layer pass acquires eng.sem
// per node, so a wide top-level join's recursive conditioning work (which
// calls back into evalSubDAG with gated=false) cannot deadlock by trying to
// re-acquire a semaphore unit its own call frame is still holding.
// diamondsAllowed is false for PIE's intersection-term recursion (spec.md
// §4.5: "the recursive propagation itself uses only cases S/T/M"); a nested
// diamond join is then evaluated as an ordinary case M node instead of
// recursing into case D.
func (eng *engine) evalSubDAG(
	ctx context.Context,
	entry *diamond.Entry,
	overrides map[graphidx.NodeID]prob.Value,
	priors map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
	gated bool,
	diamondsAllowed bool,
) (map[graphidx.NodeID]prob.Value, error) {
	belief := make(map[graphidx.NodeID]prob.Value, len(entry.SubIndex.Nodes()))

	for _, layer := range entry.SubLayers.Order {
		select {
		case <-ctx.Done():
			return nil, dagbelieterr.ErrCancelled
		default:
		}
		if err := eng.computeLayer(ctx, entry, layer, overrides, priors, edgeProbs, belief, gated, diamondsAllowed); err != nil {
			return nil, err
		}
	}
	return belief, nil
}

// computeLayer evaluates every node of one layer concurrently, each
// goroutine writing to a distinct slot of a pre-sized slice; the slice is
// only merged into belief (the shared map) after the whole layer's pool
// drains, so no goroutine ever writes belief concurrently with another.
func (eng *engine) computeLayer(
	ctx context.Context,
	entry *diamond.Entry,
	layer []graphidx.NodeID,
	overrides map[graphidx.NodeID]prob.Value,
	priors map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
	belief map[graphidx.NodeID]prob.Value,
	gated bool,
	diamondsAllowed bool,
) error {
	results := make([]prob.Value, len(layer))
	errs := make([]error, len(layer))

	p := pool.New().WithMaxGoroutines(maxGoroutines(eng.opts.parallelism, len(layer)))
	for i, v := range layer {
		i, v := i, v
		p.Go(func() {
			if gated {
				if err := eng.sem.Acquire(ctx, 1); err != nil {
					errs[i] = dagbelieterr.ErrCancelled
					return
				}
				defer eng.sem.Release(1)
			}

			val, err := eng.computeNode(ctx, entry, v, overrides, priors, edgeProbs, belief, diamondsAllowed)
			results[i] = val
			errs[i] = err
		})
	}
	p.Wait()

	var agg error
	for _, err := range errs {
		if err != nil {
			agg = multierr.Append(agg, err)
		}
	}
	if agg != nil {
		return agg
	}

	for i, v := range layer {
		belief[v] = results[i]
	}
	return nil
}

func maxGoroutines(parallelism int64, layerSize int) int {
	n := int(parallelism)
	if n <= 0 {
		n = 1
	}
	if layerSize > 0 && layerSize < n {
		n = layerSize
	}
	return n
}

// computeNode dispatches to cases S/T/M/D for a single node, or returns the
// forced override value when v is a diamond-conditioning root. When
// diamondsAllowed is false, a node with its own nested diamond descriptor is
// evaluated as an ordinary case M node instead (spec.md §4.5's "S/T/M only"
// restriction on PIE's recursive propagation).
func (eng *engine) computeNode(
	ctx context.Context,
	entry *diamond.Entry,
	v graphidx.NodeID,
	overrides map[graphidx.NodeID]prob.Value,
	priors map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
	belief map[graphidx.NodeID]prob.Value,
	diamondsAllowed bool,
) (prob.Value, error) {
	if ov, ok := overrides[v]; ok {
		return ov, nil
	}

	prior := priors[v]
	parents := entry.SubIndex.Incoming[v]

	switch {
	case len(parents) == 0:
		return prior, nil
	case len(parents) == 1:
		edge := graphidx.Edge{From: parents[0], To: v}
		return caseTree(prior, belief[parents[0]], edgeProbs[edge])
	default:
		if nested, ok := entry.Nested[v]; ok && diamondsAllowed {
			return eng.caseDiamond(ctx, nested, belief, priors, edgeProbs)
		}
		return caseIndependent(prior, parents, belief, edgeProbs, v)
	}
}

// caseDiamond handles a node that is itself a diamond join (spec.md §4.5
// Case D), combining the conditioned diamond contribution D(v) with the
// independent contribution N(v) of any non-diamond parents.
func (eng *engine) caseDiamond(
	ctx context.Context,
	nested *diamond.Entry,
	outerBelief map[graphidx.NodeID]prob.Value,
	priors map[graphidx.NodeID]prob.Value,
	edgeProbs map[graphidx.Edge]prob.Value,
) (prob.Value, error) {
	join := nested.Descriptor.Join
	prior := priors[join]
	tag := prior.Tag()
	h := nested.Descriptor.HighestNodes

	var d prob.Value
	var err error
	if len(h) <= eng.opts.maxEnumHighest {
		d, err = eng.enumerateFull(ctx, nested, h, outerBelief, priors, edgeProbs, tag)
	} else {
		d, err = eng.enumeratePIE(ctx, nested, h, outerBelief, priors, edgeProbs, tag)
	}
	if err != nil {
		return nil, err
	}

	n, err := combineParents(tag, nested.Descriptor.NonDiamondParents, outerBelief, edgeProbs, join)
	if err != nil {
		return nil, err
	}

	return combineDiamondAndResidual(prior, d, n)
}
