// Package belief implements the exact reachability / belief-propagation
// engine (C6): a single layer-synchronous pass that computes, for every node
// in a DAG, the probability that it is ultimately reached given per-node
// priors, per-edge transmission probabilities, and the diamond descriptors
// that account for re-convergent paths.
//
// Compute is the sole entry point; everything else in this package is an
// internal collaborator of that one pass.
package belief
