// Package solver implements the sequential 0/1-knapsack algorithms shared by the
// CPU and GPU dispatchers.
//
// Memoized is the top-down evaluator used by CPU workers. Tabulated is the
// bottom-up single-row evaluator executed by each GPU work-item; the host
// version here is its reference and cross-check.
//
// Neither function validates its inputs: weights and values must hold at least
// n strictly positive entries and capacity must be non-negative.
package solver

import "github.com/born-ml/knapsack/internal/problem"

// unset marks a memo cell that has not been evaluated yet.
const unset = -1

// memo is a dense (item, capacity) table owned by a single solve.
type memo struct {
	weights []int
	values  []int
	stride  int // capacity+1
	cells   []int
}

func newMemo(capacity int, weights, values []int, n int) *memo {
	m := &memo{
		weights: weights,
		values:  values,
		stride:  capacity + 1,
		cells:   make([]int, n*(capacity+1)),
	}
	for i := range m.cells {
		m.cells[i] = unset
	}
	return m
}

// best returns the optimal value using items 0..index with remaining capacity w.
func (m *memo) best(w, index int) int {
	if index < 0 {
		return 0
	}
	cell := &m.cells[index*m.stride+w]
	if *cell != unset {
		return *cell
	}

	exclude := m.best(w, index-1)
	if m.weights[index] > w {
		*cell = exclude
		return exclude
	}
	include := m.values[index] + m.best(w-m.weights[index], index-1)
	*cell = max(include, exclude)
	return *cell
}

// Memoized returns the maximum value of any subset of the first n items whose
// total weight does not exceed capacity. Each item is used at most once.
//
// Every (item, capacity) pair is evaluated at most once, so time and memory are
// O(n * capacity). The table is released when the call returns.
func Memoized(capacity int, weights, values []int, n int) int {
	if n == 0 {
		return 0
	}
	return newMemo(capacity, weights, values, n).best(capacity, n-1)
}

// Solve evaluates one instance with Memoized.
func Solve(in problem.Instance) int {
	return Memoized(in.Capacity, in.Weights, in.Values, in.Len())
}

// Select solves the instance and back-tracks the memo table to recover one
// optimal subset. Items are returned in ascending index order.
func Select(in problem.Instance) (value int, items []int) {
	n := in.Len()
	if n == 0 {
		return 0, nil
	}
	m := newMemo(in.Capacity, in.Weights, in.Values, n)
	value = m.best(in.Capacity, n-1)

	w := in.Capacity
	for index := n - 1; index >= 0; index-- {
		// best(w, index-1) is always memoized along this path: the exclude
		// branch of every evaluated cell is evaluated too.
		if m.best(w, index) != m.best(w, index-1) {
			items = append(items, index)
			w -= in.Weights[index]
		}
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return value, items
}
