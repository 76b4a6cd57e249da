package testoracle

import (
	"fmt"

	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/topo"
)

// MaxBruteForceBits bounds how many independent Bernoulli variables
// BruteForce will enumerate over (node-activation plus edge-activation
// bits); spec.md §8 property 9 caps brute-force agreement checks at graphs
// with <= 20 edges.
const MaxBruteForceBits = 26

// BruteForce computes the exact reached-probability of every node by
// enumerating every joint activation of node priors and edge probabilities
// (scalar only) and summing the weight of every assignment under which the
// node is transitively reached from an active source.
func BruteForce(
	idx *graphidx.Index,
	layers *topo.Layers,
	priors map[graphidx.NodeID]float64,
	edgeProbs map[graphidx.Edge]float64,
) (map[graphidx.NodeID]float64, error) {
	order := make([]graphidx.NodeID, 0, len(idx.Nodes()))
	for _, layer := range layers.Order {
		order = append(order, layer...)
	}
	edges := idx.Edges

	totalBits := len(order) + len(edges)
	if totalBits > MaxBruteForceBits {
		return nil, fmt.Errorf("testoracle: %d bits exceeds MaxBruteForceBits=%d", totalBits, MaxBruteForceBits)
	}

	belief := make(map[graphidx.NodeID]float64, len(order))
	reached := make(map[graphidx.NodeID]bool, len(order))

	total := 1 << uint(totalBits)
	for mask := 0; mask < total; mask++ {
		weight := 1.0
		for i, v := range order {
			if mask&(1<<uint(i)) != 0 {
				weight *= priors[v]
			} else {
				weight *= 1 - priors[v]
			}
		}
		if weight == 0 {
			continue
		}
		for i, e := range edges {
			bit := len(order) + i
			if mask&(1<<uint(bit)) != 0 {
				weight *= edgeProbs[e]
			} else {
				weight *= 1 - edgeProbs[e]
			}
		}
		if weight == 0 {
			continue
		}

		for i, v := range order {
			nodeActive := mask&(1<<uint(i)) != 0
			parents := idx.Incoming[v]
			if len(parents) == 0 {
				reached[v] = nodeActive
				continue
			}
			delivered := false
			for _, p := range parents {
				bit := edgeBit(edges, graphidx.Edge{From: p, To: v}, len(order))
				if reached[p] && mask&(1<<uint(bit)) != 0 {
					delivered = true
					break
				}
			}
			reached[v] = nodeActive && delivered
		}

		for _, v := range order {
			if reached[v] {
				belief[v] += weight
			}
		}
	}

	return belief, nil
}

func edgeBit(edges []graphidx.Edge, target graphidx.Edge, offset int) int {
	for i, e := range edges {
		if e == target {
			return offset + i
		}
	}
	return -1
}
