package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/knapsack/internal/problem"
)

func TestMemoizedScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   problem.Instance
		want int
	}{
		{
			name: "single best item",
			in:   problem.Instance{Capacity: 10, Weights: []int{5, 4, 6}, Values: []int{10, 40, 30}},
			want: 70,
		},
		{
			name: "two heavier items",
			in:   problem.Instance{Capacity: 50, Weights: []int{10, 20, 30}, Values: []int{60, 100, 120}},
			want: 220,
		},
		{
			name: "zero capacity",
			in:   problem.Instance{Capacity: 0, Weights: []int{1, 2}, Values: []int{5, 6}},
			want: 0,
		},
		{
			name: "no items",
			in:   problem.Instance{Capacity: 25},
			want: 0,
		},
		{
			name: "nothing fits",
			in:   problem.Instance{Capacity: 3, Weights: []int{4, 5}, Values: []int{9, 9}},
			want: 0,
		},
		{
			name: "everything fits",
			in:   problem.Instance{Capacity: 100, Weights: []int{4, 5, 6}, Values: []int{1, 2, 3}},
			want: 6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Solve(tt.in))
			assert.Equal(t, tt.want, Tabulated(tt.in.Capacity, tt.in.Capacity, tt.in.Weights, tt.in.Values))
		})
	}
}

// Items 1 and 2 (weights 4 and 6) fill capacity 10 exactly for 40+30.
func TestSelectScenario(t *testing.T) {
	in := problem.Instance{Capacity: 10, Weights: []int{5, 4, 6}, Values: []int{10, 40, 30}}
	value, items := Select(in)
	assert.Equal(t, 70, value)
	assert.Equal(t, []int{1, 2}, items)
}

func TestMemoizedUsesFirstNItems(t *testing.T) {
	weights := []int{1, 1, 1}
	values := []int{5, 7, 100}
	assert.Equal(t, 12, Memoized(3, weights, values, 2))
}

func TestTabulatedRowBound(t *testing.T) {
	in := problem.Instance{Capacity: 50, Weights: []int{10, 20, 30}, Values: []int{60, 100, 120}}
	// A wider row than the instance needs must not change the answer.
	assert.Equal(t, 220, Tabulated(in.Capacity, 1024, in.Weights, in.Values))
	assert.Equal(t, 280, Tabulated(60, 1024, in.Weights, in.Values))
}

func randomInstance(r *rand.Rand, items, maxCapacity, maxWeight, maxValue int) problem.Instance {
	in := problem.Instance{
		Capacity: r.IntN(maxCapacity + 1),
		Weights:  make([]int, items),
		Values:   make([]int, items),
	}
	for i := 0; i < items; i++ {
		in.Weights[i] = 1 + r.IntN(maxWeight)
		in.Values[i] = 1 + r.IntN(maxValue)
	}
	return in
}

func TestMemoizedMatchesTabulated(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for k := 0; k < 500; k++ {
		in := randomInstance(r, r.IntN(15), 120, 40, 200)
		want := Tabulated(in.Capacity, 120, in.Weights, in.Values)
		require.Equal(t, want, Solve(in), "instance %d: %+v", k, in)
	}
}

func TestMonotonicInCapacity(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for k := 0; k < 50; k++ {
		in := randomInstance(r, 10, 0, 40, 200)
		prev := 0
		for w := 0; w <= 150; w++ {
			in.Capacity = w
			got := Solve(in)
			require.GreaterOrEqual(t, got, prev, "capacity %d", w)
			prev = got
		}
	}
}

func TestSelectIsFeasibleAndOptimal(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for k := 0; k < 300; k++ {
		in := randomInstance(r, 12, 100, 40, 200)
		value, items := Select(in)

		require.Equal(t, Solve(in), value)
		require.LessOrEqual(t, value, in.TotalValue())

		weight, sum := 0, 0
		seen := make(map[int]bool)
		for _, i := range items {
			require.False(t, seen[i], "item %d selected twice", i)
			seen[i] = true
			weight += in.Weights[i]
			sum += in.Values[i]
		}
		require.LessOrEqual(t, weight, in.Capacity)
		require.Equal(t, value, sum)
	}
}

func BenchmarkMemoized(b *testing.B) {
	r := rand.New(rand.NewPCG(7, 8))
	in := randomInstance(r, 10, 100, 40, 200)
	in.Capacity = 100
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Solve(in)
	}
}

func BenchmarkTabulated(b *testing.B) {
	r := rand.New(rand.NewPCG(7, 8))
	in := randomInstance(r, 10, 100, 40, 200)
	in.Capacity = 100
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tabulated(in.Capacity, 100, in.Weights, in.Values)
	}
}
