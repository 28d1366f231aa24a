// Package order computes variable elimination orders, induced width, and
// pseudo-trees over a graphical model's primal graph (two variables are
// adjacent iff they co-occur in some factor's scope).
//
// MinFill and MinDegree are greedy simulated-elimination heuristics built
// around a container/heap priority queue with lazy invalidation: rather
// than maintain a reverse index from variable to every heap entry that
// mentions it, stale entries are simply left in the heap and skipped on
// pop when their recorded generation no longer matches the variable's
// current one, in place of a decrease-key operation.
//
// Complexity:
//
//   - Build (MinFill/MinDegree): O(V·(V+E) log V) in the worst case —
//     V pops, each potentially rescoring O(degree) neighbors.
//   - Build (Lexicographic/Random): O(V log V).
//   - InducedWidth, PseudoTree: O(V·(V+E)), one simulated-elimination pass.
package order
