// Package factor implements dense discrete factor tables: the point-wise
// product, sum-/max-elimination, marginalization, conditioning, and
// normalization operations that a graphical-model inference engine builds
// on top of.
//
// A Factor is a non-negative real-valued table over an ordered scope (a
// sorted, de-duplicated set of variable indices). Internally the table is a
// flat, row-major []float64 addressed through precomputed strides, the same
// layout github.com/katalvlaran/lvlath/matrix.Dense uses for two dimensions,
// generalized here to an arbitrary number of scope variables.
//
// Complexity:
//
//   - Product(f, g): O(|dom(scope(f) ∪ scope(g))|) time and space.
//   - Eliminate/Marginal: O(|dom(scope(f))|) time, O(|dom(result scope)|) space.
//   - Condition, Normalize, Max, Sum, ArgMax: O(|dom(scope(f))|).
//
// None of these operations are safe to call concurrently on the same
// Factor; callers needing parallelism should partition work so that each
// goroutine owns disjoint output factors (see propagate's single-threaded
// design note).
package factor
