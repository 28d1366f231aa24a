package joingraph

import "container/heap"

// mbPairItem is one candidate merge in a bucket's mini-bucket partition
// heap: the score of combining factor i into factor j, and the
// generation each side had when the score was computed (for lazy
// invalidation instead of a reverse-lookup index).
type mbPairItem struct {
	i, j     int
	score    float64
	seq      int
	genI     int
	genJ     int
}

// mbPairPQ is a max-heap of *mbPairItem ordered by score descending, ties
// broken toward the most recently pushed pair — reproducing the
// insertion-order tie-break an ordered multimap's reverse iterator gives
// for equal keys.
type mbPairPQ []*mbPairItem

func (pq mbPairPQ) Len() int { return len(pq) }
func (pq mbPairPQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score > pq[j].score
	}
	return pq[i].seq > pq[j].seq
}
func (pq mbPairPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *mbPairPQ) Push(x interface{}) { *pq = append(*pq, x.(*mbPairItem)) }
func (pq *mbPairPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// pairScore scores merging factors i and j within bucket variable vx's
// partition: -3 if the combined scope would exceed the effective i-bound
// (the configured bound, relaxed upward if either factor is already
// larger than it), otherwise 1/(|scope(i)|+|scope(j)|) so smaller
// combinations are preferred.
func pairScore(fin map[int][]int, iBound, i, j int) float64 {
	bound := iBound
	if b := len(fin[i]) - 1; b > bound {
		bound = b
	}
	if b := len(fin[j]) - 1; b > bound {
		bound = b
	}
	if len(unionScope(fin[i], fin[j])) > bound+1 {
		return -3
	}
	return 1.0 / float64(len(fin[i])+len(fin[j]))
}

// mergeMiniBuckets greedily merges the factors in ids (all currently
// assigned to bucket variable vx), always taking the highest-scoring
// feasible pair, so that every merged scope stays within iBound+1
// variables (see pairScore); the partition is not guaranteed to have the
// fewest mini-buckets. It updates fin (scope), orig (contributing
// original factor indices), and newIn (feeding message-cluster ids) for
// the surviving representative of each merge. Every merge also
// re-registers the survivor into vin[v] for each variable v (other than
// vx) the merged-away factor contributed, and drops the merged-away id
// from vin[v] — so the residual still participates in whichever later
// bucket eliminates v next, per the join-graph construction's
// requirement that a residual's remaining variables keep it live.
// Returns the surviving ids, in their original relative order.
func mergeMiniBuckets(fin map[int][]int, orig, newIn map[int][]int, vin map[int]map[int]struct{}, ids []int, vx, iBound int) []int {
	remaining := make(map[int]bool, len(ids))
	gen := make(map[int]int, len(ids))
	for _, id := range ids {
		remaining[id] = true
		gen[id] = 0
	}

	pq := &mbPairPQ{}
	seq := 0
	push := func(i, j int) {
		seq++
		heap.Push(pq, &mbPairItem{i: i, j: j, score: pairScore(fin, iBound, i, j), seq: seq, genI: gen[i], genJ: gen[j]})
	}
	for a := 0; a < len(ids); a++ {
		for b := a + 1; b < len(ids); b++ {
			push(ids[a], ids[b])
		}
	}

	for pq.Len() > 0 {
		top := heap.Pop(pq).(*mbPairItem)
		if !remaining[top.i] || !remaining[top.j] {
			continue
		}
		if top.genI != gen[top.i] || top.genJ != gen[top.j] {
			continue
		}
		if top.score < 0 {
			break
		}

		i, j := top.i, top.j
		for _, v := range fin[i] {
			if v == vx {
				continue
			}
			delete(vin[v], i)
			vin[v][j] = struct{}{}
		}
		fin[j] = unionScope(fin[j], fin[i])
		orig[j] = append(orig[j], orig[i]...)
		newIn[j] = append(newIn[j], newIn[i]...)
		gen[j]++
		delete(remaining, i)
		fin[i] = nil
		orig[i] = nil
		newIn[i] = nil

		for k := range remaining {
			if k != j {
				push(j, k)
			}
		}
	}

	out := make([]int, 0, len(remaining))
	for _, id := range ids {
		if remaining[id] {
			out = append(out, id)
		}
	}
	return out
}
