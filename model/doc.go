// Package model defines the graphical model handle that the inference
// core treats as its read-only input: a fixed set of discrete variables
// and a fixed collection of non-negative factors over them.
//
// GraphicalModel exposes exactly the surface spec §6 requires of the
// "model" input (NVar, Var, NumFactors, Factor, FactorsWith, LogP) plus
// evidence assertion (Reduce), which spec §1 names as an external
// collaborator but a runnable binary still needs.
//
// Complexity:
//
//   - FactorsWith(v): O(1) after construction (precomputed index).
//   - LogP(assignment): O(F) where F is the number of original factors.
//   - Reduce(evidence): O(F) to condition every factor, O(V) to remap
//     the surviving variable indices.
package model
