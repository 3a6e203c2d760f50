// Package generate produces knapsack problem batches.
//
// The solvers never depend on how a batch was produced; Generator isolates
// randomized production so that tests can supply literal instances instead.
package generate

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/knapsack/internal/problem"
)

// ErrInvalidParams is wrapped by every Params validation failure.
var ErrInvalidParams = errors.New("knapsack/generate: invalid parameters")

// Params describes the shape of a generated batch.
type Params struct {
	Problems    int // Number of instances.
	Items       int // Items per instance.
	MaxCapacity int // Capacities are drawn from [1, MaxCapacity].
	MaxWeight   int // Weights are drawn from [1, MaxWeight].
	MaxValue    int // Values are drawn from [1, MaxValue].
}

// DefaultParams returns the batch shape used by the runner when nothing is configured.
func DefaultParams() Params {
	return Params{
		Problems:    100,
		Items:       10,
		MaxCapacity: 100,
		MaxWeight:   40,
		MaxValue:    200,
	}
}

// Validate checks that counts are non-negative and bounds are positive.
func (p Params) Validate() error {
	if p.Problems < 0 || p.Items < 0 {
		return fmt.Errorf("%w: negative count (problems=%d, items=%d)", ErrInvalidParams, p.Problems, p.Items)
	}
	if p.MaxCapacity < 1 || p.MaxWeight < 1 || p.MaxValue < 1 {
		return fmt.Errorf("%w: bounds must be >= 1 (capacity=%d, weight=%d, value=%d)",
			ErrInvalidParams, p.MaxCapacity, p.MaxWeight, p.MaxValue)
	}
	return nil
}

// Generator produces a batch for the given parameters.
type Generator interface {
	Generate(p Params) (problem.Batch, error)
}

// Random draws every capacity, weight and value uniformly from its range.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random generator. Equal seeds produce equal batches;
// a zero seed selects a random one.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = rand.Uint64() //nolint:gosec // Test data, not a security context.
	}
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // Deterministic by design.
}

// Generate implements Generator.
func (g *Random) Generate(p Params) (problem.Batch, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	batch := make(problem.Batch, p.Problems)
	for i := range batch {
		batch[i].Capacity = g.between(p.MaxCapacity)
	}
	for i := range batch {
		weights := make([]int, p.Items)
		values := make([]int, p.Items)
		for j := 0; j < p.Items; j++ {
			weights[j] = g.between(p.MaxWeight)
			values[j] = g.between(p.MaxValue)
		}
		batch[i].Weights = weights
		batch[i].Values = values
	}
	return batch, nil
}

// between returns a uniform integer in [1, hi].
func (g *Random) between(hi int) int {
	return 1 + g.rng.IntN(hi)
}

// Fixed returns a copy of a literal batch regardless of Params.
type Fixed problem.Batch

// Generate implements Generator.
func (f Fixed) Generate(_ Params) (problem.Batch, error) {
	out := make(problem.Batch, len(f))
	copy(out, f)
	return out, nil
}
