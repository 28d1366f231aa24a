// Package solver drives the iterative join-graph propagation loop: it
// resolves an elimination order and pseudo-tree if the caller did not
// supply one, builds the static join-graph, runs repeated forward/
// backward passes through propagate.Engine, and extracts beliefs or a
// MAP assignment after each pass until an iteration cap, an objective
// tolerance, or a wall-clock budget stops it.
//
// Deterministic defaults mirror the property-string form this class of
// solver is configured with in the source literature:
// "iBound=4,Order=MinFill,Iter=10,Task=MAR,Debug=0".
//
// Complexity: O(NumIter · E · D) for Run, where E is the join-graph's
// schedule length and D the per-edge Product/Eliminate cost.
package solver
