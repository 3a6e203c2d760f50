package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/knapsack/internal/problem"
)

func TestRandomRespectsBounds(t *testing.T) {
	p := Params{Problems: 200, Items: 10, MaxCapacity: 100, MaxWeight: 40, MaxValue: 200}
	batch, err := NewRandom(42).Generate(p)
	require.NoError(t, err)
	require.Len(t, batch, p.Problems)

	for i, in := range batch {
		require.NoError(t, in.Validate(), "instance %d", i)
		assert.Equal(t, p.Items, in.Len())
		assert.GreaterOrEqual(t, in.Capacity, 1)
		assert.LessOrEqual(t, in.Capacity, p.MaxCapacity)
		for j := range in.Weights {
			assert.LessOrEqual(t, in.Weights[j], p.MaxWeight)
			assert.LessOrEqual(t, in.Values[j], p.MaxValue)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	p := DefaultParams()
	a, err := NewRandom(7).Generate(p)
	require.NoError(t, err)
	b, err := NewRandom(7).Generate(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewRandom(8).Generate(p)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRandomZeroItems(t *testing.T) {
	batch, err := NewRandom(1).Generate(Params{Problems: 3, Items: 0, MaxCapacity: 5, MaxWeight: 1, MaxValue: 1})
	require.NoError(t, err)
	require.Len(t, batch, 3)
	for _, in := range batch {
		assert.Zero(t, in.Len())
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	for _, p := range []Params{
		{Problems: -1, Items: 1, MaxCapacity: 1, MaxWeight: 1, MaxValue: 1},
		{Problems: 1, Items: -1, MaxCapacity: 1, MaxWeight: 1, MaxValue: 1},
		{Problems: 1, Items: 1, MaxCapacity: 0, MaxWeight: 1, MaxValue: 1},
		{Problems: 1, Items: 1, MaxCapacity: 1, MaxWeight: 0, MaxValue: 1},
		{Problems: 1, Items: 1, MaxCapacity: 1, MaxWeight: 1, MaxValue: 0},
	} {
		assert.ErrorIs(t, p.Validate(), ErrInvalidParams, "%+v", p)
		_, err := NewRandom(1).Generate(p)
		assert.ErrorIs(t, err, ErrInvalidParams)
	}
}

func TestFixed(t *testing.T) {
	lit := Fixed{
		{Capacity: 10, Weights: []int{5, 4, 6}, Values: []int{10, 40, 30}},
	}
	var g Generator = lit
	batch, err := g.Generate(Params{})
	require.NoError(t, err)
	assert.Equal(t, problem.Batch(lit), batch)
}
