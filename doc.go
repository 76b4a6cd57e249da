// Package dagbelief computes exact per-node reached probability over a DAG
// whose nodes carry prior activation probabilities and whose edges carry
// independent transmission probabilities, correctly accounting for
// re-convergent paths (diamonds) instead of double-counting them.
//
// The module is organized as a set of focused subpackages:
//
//	prob/      — polymorphic probability algebra: Scalar, Interval, Pbox
//	graphidx/  — immutable, validated adjacency index built from an edge list
//	topo/      — topological layering, ancestor/descendant closures, fork/join classification
//	diamond/   — per-join diamond identification and the recursive, content-addressed diamond store
//	belief/    — the layer-synchronous propagation engine (Compute is the sole entry point)
//	tracing/   — structured logging threaded through belief.Compute
//
// A typical caller only imports graphidx, prob, and belief:
//
//	out, err := belief.Compute(ctx, edges, priors, edgeProbs)
//
// Everything else is an internal collaborator reachable from that one call.
package dagbelief
