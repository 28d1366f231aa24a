// Package propagate runs forward and backward message passing over a
// static join-graph schedule, accumulating logZ (or the MAP value) on the
// forward pass.
//
// Message passing is single-threaded and synchronous by design: a single
// Engine owns Forward/Backward and mutates them in schedule order within
// one call, so Forward and Backward must never be invoked concurrently on
// the same Engine. context.Context plumbing exists only for cooperative
// cancellation (checked once per scheduled edge), never for parallel edge
// execution — parallelizing across edges would race on shared cluster
// potentials and is explicitly out of scope.
//
// Complexity: O(E·D) per pass, where E is the schedule length and D the
// cost of a factor Product/Eliminate over the largest cluster touched.
package propagate
