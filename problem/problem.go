// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package problem defines knapsack instances, batches and result vectors.
//
// Example:
//
//	batch := problem.Batch{
//	    {Capacity: 10, Weights: []int{5, 4, 6}, Values: []int{10, 40, 30}},
//	    {Capacity: 50, Weights: []int{10, 20, 30}, Values: []int{60, 100, 120}},
//	}
//	if err := batch.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package problem

import "github.com/born-ml/knapsack/internal/problem"

type (
	// Instance is one 0/1-knapsack problem.
	Instance = problem.Instance
	// Batch is an ordered collection of independent instances.
	Batch = problem.Batch
	// Results is the index-aligned result vector of a batch.
	Results = problem.Results
	// Solver solves a whole batch, all or nothing.
	Solver = problem.Solver
)

// ErrRaggedBatch is returned when instances have different item counts.
var ErrRaggedBatch = problem.ErrRaggedBatch
