package uaiformat

import "sort"

// reindexToSortedScope permutes a UAI-order factor table (row-major,
// last-listed scope variable varies fastest, scope possibly unsorted)
// into the sorted-scope row-major layout factor.NewFactorFromData
// requires. Complexity: O(len(data) * len(scope)).
func reindexToSortedScope(scope, card []int, data []float64) ([]int, []int, []float64) {
	n := len(scope)
	sortedScope := append([]int(nil), scope...)
	sort.Ints(sortedScope)

	cardOf := make(map[int]int, n)
	posOf := make(map[int]int, n)
	for i, v := range scope {
		cardOf[v] = card[i]
		posOf[v] = i
	}
	sortedCard := make([]int, n)
	for i, v := range sortedScope {
		sortedCard[i] = cardOf[v]
	}

	origStrides := stridesOf(card)
	sortedStrides := stridesOf(sortedCard)

	out := make([]float64, len(data))
	assignment := make([]int, n)
	for idx := range out {
		rem := idx
		for i := 0; i < n; i++ {
			assignment[i] = rem / sortedStrides[i]
			rem %= sortedStrides[i]
		}
		origIdx := 0
		for i, v := range sortedScope {
			origIdx += assignment[i] * origStrides[posOf[v]]
		}
		out[idx] = data[origIdx]
	}
	return sortedScope, sortedCard, out
}

func stridesOf(card []int) []int {
	strides := make([]int, len(card))
	acc := 1
	for i := len(card) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= card[i]
	}
	return strides
}
