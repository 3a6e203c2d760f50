//go:build !windows

package webgpu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/knapsack/internal/backend/gpu"
)

func TestNewUnavailable(t *testing.T) {
	dev, err := New()
	assert.Nil(t, dev)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, IsAvailable())

	var d Device
	_, err = d.Run(context.Background(), &gpu.Launch{})
	assert.ErrorIs(t, err, ErrUnavailable)
}
