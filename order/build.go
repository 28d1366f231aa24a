package order

import (
	"container/heap"
	"math/rand"

	"github.com/probgraph/ijgp/model"
)

// Build computes an elimination order and its pseudo-tree parent vector
// for m using method, applying opts (meaningful only for Random).
// Complexity: see package doc.
func Build(m *model.GraphicalModel, method Method, opts ...Option) ([]int, []int, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var ord []int
	switch method {
	case MinFill:
		ord = greedyOrder(primalGraph(m), m.NVar(), fillInScore)
	case MinDegree:
		ord = greedyOrder(primalGraph(m), m.NVar(), degreeScore)
	case Lexicographic:
		ord = make([]int, m.NVar())
		for i := range ord {
			ord[i] = i
		}
	case Random:
		ord = make([]int, m.NVar())
		for i := range ord {
			ord[i] = i
		}
		rand.New(rand.NewSource(cfg.Seed)).Shuffle(len(ord), func(i, j int) {
			ord[i], ord[j] = ord[j], ord[i]
		})
	default:
		ord = greedyOrder(primalGraph(m), m.NVar(), fillInScore)
	}

	parents := PseudoTree(m, ord)
	return ord, parents, nil
}

// scoreFunc scores variable v for elimination priority: lower is eliminated
// sooner. fillInScore implements MinFill, degreeScore implements MinDegree.
type scoreFunc func(adj map[int]map[int]struct{}, v int) int

func fillInScore(adj map[int]map[int]struct{}, v int) int {
	nbrs := neighborsOf(adj, v)
	fill := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if _, ok := adj[nbrs[i]][nbrs[j]]; !ok {
				fill++
			}
		}
	}
	return fill
}

func degreeScore(adj map[int]map[int]struct{}, v int) int {
	return len(adj[v])
}

// greedyOrder repeatedly eliminates the lowest-scored remaining variable
// (ties broken by lowest index), rescoring affected neighbors after each
// elimination. Grounded on the lazy-decrease-key heap pattern: rather than
// maintaining a reverse index to invalidate stale entries on rescoring, a
// fresh entry is pushed with a bumped generation and stale pops are
// skipped.
func greedyOrder(adj map[int]map[int]struct{}, n int, score scoreFunc) []int {
	gen := make([]int, n)
	eliminated := make([]bool, n)
	pq := make(orderPQ, 0, n)
	for v := 0; v < n; v++ {
		pq = append(pq, &orderItem{v: v, score: score(adj, v), gen: 0})
	}
	heap.Init(&pq)

	order := make([]int, 0, n)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*orderItem)
		v := item.v
		if eliminated[v] || item.gen != gen[v] {
			continue
		}
		eliminated[v] = true
		order = append(order, v)

		affected := eliminateFrom(adj, v)
		for _, u := range affected {
			gen[u]++
			heap.Push(&pq, &orderItem{v: u, score: score(adj, u), gen: gen[u]})
		}
	}
	return order
}

// orderItem is one candidate variable in the greedy elimination heap.
type orderItem struct {
	v     int
	score int
	gen   int
}

// orderPQ is a min-heap of *orderItem ordered by score ascending, then by
// variable index ascending for deterministic tie-breaking.
type orderPQ []*orderItem

func (pq orderPQ) Len() int { return len(pq) }
func (pq orderPQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}
	return pq[i].v < pq[j].v
}
func (pq orderPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *orderPQ) Push(x interface{}) { *pq = append(*pq, x.(*orderItem)) }
func (pq *orderPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
