// Package problem provides the in-memory data model for batches of 0/1-knapsack instances.
package problem

import (
	"context"
	"errors"
	"fmt"
)

// ErrRaggedBatch is returned when instances in a batch have different item counts.
var ErrRaggedBatch = errors.New("knapsack/problem: instances have different item counts")

// Instance is one capacity-constrained value-maximization problem over a fixed item set.
//
// Weights and Values are index-aligned: item i weighs Weights[i] and is worth Values[i].
// Solvers treat the invariants checked by Validate as preconditions and never re-check them.
type Instance struct {
	Capacity int
	Weights  []int
	Values   []int
}

// Len returns the number of items in the instance.
func (in Instance) Len() int {
	return len(in.Weights)
}

// TotalValue returns the sum of all item values, an upper bound on any solution.
func (in Instance) TotalValue() int {
	total := 0
	for _, v := range in.Values {
		total += v
	}
	return total
}

// Validate checks the instance invariants.
func (in Instance) Validate() error {
	if in.Capacity < 0 {
		return fmt.Errorf("negative capacity %d", in.Capacity)
	}
	if len(in.Weights) != len(in.Values) {
		return fmt.Errorf("weights/values length mismatch: %d vs %d", len(in.Weights), len(in.Values))
	}
	for i := range in.Weights {
		if in.Weights[i] <= 0 {
			return fmt.Errorf("invalid weight at item %d: %d (must be > 0)", i, in.Weights[i])
		}
		if in.Values[i] <= 0 {
			return fmt.Errorf("invalid value at item %d: %d (must be > 0)", i, in.Values[i])
		}
	}
	return nil
}

// Batch is an ordered collection of independent instances.
// It is created once and treated as immutable while being solved.
type Batch []Instance

// Len returns the number of instances in the batch.
func (b Batch) Len() int {
	return len(b)
}

// MaxCapacity returns the largest capacity in the batch, or 0 for an empty batch.
func (b Batch) MaxCapacity() int {
	m := 0
	for i := range b {
		m = max(m, b[i].Capacity)
	}
	return m
}

// ItemCount returns the item count shared by every instance.
// An empty batch has an item count of 0.
func (b Batch) ItemCount() (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n := b[0].Len()
	for i := 1; i < len(b); i++ {
		if b[i].Len() != n {
			return 0, fmt.Errorf("%w: instance %d has %d items, instance 0 has %d", ErrRaggedBatch, i, b[i].Len(), n)
		}
	}
	return n, nil
}

// Validate checks every instance and reports the first violation with its index.
func (b Batch) Validate() error {
	for i := range b {
		if err := b[i].Validate(); err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}
	}
	return nil
}

// Results is the result vector: Results[i] is the optimal value of instance i.
type Results []int

// Solver solves a whole batch. Implementations are all-or-nothing: on error
// they return nil results.
type Solver interface {
	Name() string
	Solve(ctx context.Context, batch Batch) (Results, error)
}
