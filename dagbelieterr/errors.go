// Package dagbelieterr defines the sentinel error taxonomy returned by
// graphidx, topo, diamond and belief. prob reports range failures with its
// own prob.ErrOutOfRange, which belief wraps as ErrNumericOutOfRange.
//
// Error policy (mirrors the teacher's builder package):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Call sites attach context with fmt.Errorf("%w: ...", ErrX, ...).
package dagbelieterr

import "errors"

// Input-structural errors (fatal at graphidx.Build).
var (
	// ErrSelfLoop indicates an edge (v,v) was supplied; the data model forbids self-loops.
	ErrSelfLoop = errors.New("dagbelief: self-loop edge")

	// ErrDuplicateEdge indicates the same ordered pair (u,v) appeared twice in the edge list.
	ErrDuplicateEdge = errors.New("dagbelief: duplicate edge")

	// ErrUnknownNode indicates a node id was referenced (e.g. in priors or edge_probs)
	// that never appears in the edge list.
	ErrUnknownNode = errors.New("dagbelief: unknown node id")

	// ErrNotADAG indicates a cycle was detected during index construction or layering.
	ErrNotADAG = errors.New("dagbelief: graph is not a DAG")
)

// Input-semantic errors (fatal at belief.Compute entry).
var (
	// ErrMissingPrior indicates a node referenced by the edge list has no entry in priors.
	ErrMissingPrior = errors.New("dagbelief: missing prior")

	// ErrMissingEdgeProb indicates an edge present in the edge list has no entry in edge_probs.
	ErrMissingEdgeProb = errors.New("dagbelief: missing edge probability")

	// ErrMixedProbabilityTags indicates priors/edge_probs mix Scalar, Interval, and Pbox
	// tags within a single Compute call; the tag must be uniform per call.
	ErrMixedProbabilityTags = errors.New("dagbelief: mixed probability tags")
)

// Numeric error (the only runtime fatal that indicates an algebra/engine bug, not bad input).
var (
	// ErrNumericOutOfRange indicates a belief or algebra intermediate escaped [0,1]
	// by more than the configured epsilon.
	ErrNumericOutOfRange = errors.New("dagbelief: numeric value out of range")
)

// Cooperative error (benign).
var (
	// ErrCancelled indicates the caller's context was cancelled mid-computation.
	// A cancelled run surfaces this error and returns no partial output.
	ErrCancelled = errors.New("dagbelief: computation cancelled")
)
