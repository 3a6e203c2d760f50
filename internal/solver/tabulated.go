package solver

// Tabulated evaluates one instance the way a GPU work-item does: a single DP
// row of maxCapacity+1 cells, zeroed, then updated item by item in descending
// capacity order so that no item is counted twice. row[c] ends up holding the
// best value for capacity c, and the instance's answer is row[capacity].
//
// capacity must not exceed maxCapacity.
func Tabulated(capacity, maxCapacity int, weights, values []int) int {
	row := make([]int, maxCapacity+1)
	for i := range weights {
		w, v := weights[i], values[i]
		for c := maxCapacity; c >= w; c-- {
			row[c] = max(row[c], row[c-w]+v)
		}
	}
	return row[capacity]
}
