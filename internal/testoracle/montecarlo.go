package testoracle

import (
	"math"
	"math/rand"

	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/topo"
)

// MonteCarlo estimates the reached-probability of every node by sampling
// independent node/edge activations `trials` times (spec.md §8 property 8;
// the default trial count used by callers is 1e6).
func MonteCarlo(
	idx *graphidx.Index,
	layers *topo.Layers,
	priors map[graphidx.NodeID]float64,
	edgeProbs map[graphidx.Edge]float64,
	trials int,
	rng *rand.Rand,
) map[graphidx.NodeID]float64 {
	order := make([]graphidx.NodeID, 0, len(idx.Nodes()))
	for _, layer := range layers.Order {
		order = append(order, layer...)
	}

	counts := make(map[graphidx.NodeID]int, len(order))
	reached := make(map[graphidx.NodeID]bool, len(order))

	for t := 0; t < trials; t++ {
		for _, v := range order {
			nodeActive := rng.Float64() < priors[v]
			parents := idx.Incoming[v]
			if len(parents) == 0 {
				reached[v] = nodeActive
				continue
			}
			delivered := false
			for _, p := range parents {
				if reached[p] && rng.Float64() < edgeProbs[graphidx.Edge{From: p, To: v}] {
					delivered = true
					break
				}
			}
			reached[v] = nodeActive && delivered
		}
		for _, v := range order {
			if reached[v] {
				counts[v]++
			}
		}
	}

	belief := make(map[graphidx.NodeID]float64, len(order))
	for _, v := range order {
		belief[v] = float64(counts[v]) / float64(trials)
	}
	return belief
}

// ConfidenceInterval99 returns the Wald 99% confidence half-width for a
// Bernoulli proportion estimated from `trials` samples, used to check
// Monte-Carlo agreement against an exact belief value (spec.md §8 property 8).
func ConfidenceInterval99(estimate float64, trials int) float64 {
	if trials <= 0 {
		return 1
	}
	variance := estimate * (1 - estimate) / float64(trials)
	if variance < 0 {
		variance = 0
	}
	return 2.576 * math.Sqrt(variance)
}
