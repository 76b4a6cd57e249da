// Package prob implements a polymorphic probability value P used uniformly
// throughout dagbelief: Scalar, Interval, and Pbox, closed under Mul (independent
// AND), Comp (complement), Add, Sub, and an IsZeroOrOne/InRange test.
//
// What:
//   - Scalar:   a single float64 in [0,1].
//   - Interval: a [Lo,Hi] dependency-free bound, 0<=Lo<=Hi<=1.
//   - Pbox:     a pair of bounding quantile staircases (Left, Right) over a
//     fixed probability grid, plus a mean/variance envelope, bounding an
//     unknown distribution on [0,1].
//
// Why:
//   - belief.Compute runs the same three propagation regimes regardless of
//     whether callers supply exact scalars, interval bounds, or full p-boxes;
//     Value lets the engine stay generic over the algebra (spec.md §4.1/§9:
//     "monomorphise the engine generically over the algebra trait").
//
// Mixing rule: within one belief.Compute call all inputs must share one tag
// (ErrMixedProbabilityTags); Promote exists only to let two Values of
// different tags be combined ad hoc (e.g. in tests), widening Scalar->Interval->Pbox.
//
// Complexity:
//   - Scalar:   O(1) per op.
//   - Interval: O(1) per op.
//   - Pbox:     O(N) per Comp, O(N^2) per Mul/Add/Sub (N = grid resolution),
//     using the Williamson-Downs discrete convolution algorithm.
package prob
