// Package belief extracts per-variable marginals or a MAP assignment
// from a converged (or iteration-limited) propagate.Engine.
//
// ExtractMarginals reads each variable's canonical cluster belief and
// sum-marginalizes it down to that one variable. ExtractMAP instead
// back-substitutes in reverse elimination order, conditioning each
// variable's incoming belief on the assignments already fixed for
// variables eliminated after it.
//
// Complexity: O(V·D) for ExtractMarginals and O(V^2·D) for ExtractMAP
// (V = variable count, D = cost of one Product/Marginal/Condition over
// the largest cluster touched) — the back-substitution's extra factor of
// V comes from conditioning on every previously-fixed variable still in
// scope at each step.
package belief
