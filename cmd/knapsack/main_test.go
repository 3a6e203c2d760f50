package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/knapsack/internal/config"
	"github.com/born-ml/knapsack/internal/problem"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "knapsack "+version+"\n", out)
}

func TestSolveCPU(t *testing.T) {
	out, logs, err := execute(t, "solve", "--problems", "12", "--seed", "3", "--workers", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.True(t, strings.HasPrefix(lines[0], "Knapsack problem 1: Max value = "))
	assert.True(t, strings.HasPrefix(lines[11], "Knapsack problem 12: Max value = "))
	assert.Contains(t, logs, `"msg":"batch solved"`)
}

func TestSolveBackendsAgree(t *testing.T) {
	args := []string{"solve", "--problems", "40", "--seed", "17", "--max-capacity", "250"}

	cpuOut, _, err := execute(t, append(args, "--backend", "cpu")...)
	require.NoError(t, err)
	emuOut, _, err := execute(t, append(args, "--backend", "emulated")...)
	require.NoError(t, err)
	assert.Equal(t, cpuOut, emuOut)
}

func TestSolveShowItemsAndMetrics(t *testing.T) {
	out, _, err := execute(t, "solve", "--problems", "2", "--seed", "1", "--show-items", "--metrics", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Knapsack problem 2: Max value = ")
	assert.Contains(t, out, ", items = [")
	assert.Contains(t, out, `knapsack_problems_solved_total{backend="cpu"} 2`)
}

func TestSolveConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knapsack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("problems: 3\nbackend: emulated\nseed: 9\n"), 0o600))

	out, _, err := execute(t, "solve", "--config", path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestSolveInvalidBackend(t *testing.T) {
	_, _, err := execute(t, "solve", "--backend", "tpu")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestWriteResults(t *testing.T) {
	batch := problem.Batch{
		{Capacity: 10, Weights: []int{5, 4, 6}, Values: []int{10, 40, 30}},
		{Capacity: 50, Weights: []int{10, 20, 30}, Values: []int{60, 100, 120}},
	}
	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, batch, problem.Results{70, 220}, true))
	assert.Equal(t,
		"Knapsack problem 1: Max value = 70, items = [1 2]\n"+
			"Knapsack problem 2: Max value = 220, items = [1 2]\n",
		buf.String())
}
