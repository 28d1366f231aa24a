// Package joingraph builds the static mini-bucket join-graph that the
// message-passing engine propagates over: one cluster per surviving
// mini-bucket, an edge from each mini-bucket to the cluster that absorbs
// its message plus a chain of edges between mini-buckets sharing the same
// bucket variable, and the forward message schedule those edges imply.
//
// Build never looks at factor data beyond the original potentials it
// multiplies into each cluster; everything about which variables land in
// which cluster is scope arithmetic over the elimination order.
//
// Complexity: O(V·k^2 log k) where k is the largest per-variable factor
// count (the greedy mini-bucket merge), plus O(C^2) to derive separators
// from the final cluster scopes (C = number of clusters).
package joingraph
