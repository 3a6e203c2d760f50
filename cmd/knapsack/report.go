package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/born-ml/knapsack/internal/problem"
	"github.com/born-ml/knapsack/internal/solver"
)

// writeResults prints one line per problem, numbered from 1.
// With showItems the chosen items are recovered on the host and appended.
func writeResults(w io.Writer, batch problem.Batch, results problem.Results, showItems bool) error {
	for i, v := range results {
		var err error
		if showItems {
			_, items := solver.Select(batch[i])
			_, err = fmt.Fprintf(w, "Knapsack problem %d: Max value = %d, items = %v\n", i+1, v, items)
		} else {
			_, err = fmt.Fprintf(w, "Knapsack problem %d: Max value = %d\n", i+1, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeMetrics prints the registry in the Prometheus text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
