// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU parallel dispatcher for knapsack batches.
//
// # Overview
//
// The backend forks a fixed pool of worker goroutines once per batch. Worker t
// solves instances t, t+T, t+2T, ... with the memoized sequential solver and
// writes only those result slots, so the pool needs no locks. The pool is
// joined before Solve returns.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/knapsack/backend/cpu"
//	    "github.com/born-ml/knapsack/problem"
//	)
//
//	func main() {
//	    backend, err := cpu.New(cpu.WithWorkers(8))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    results, err := backend.Solve(ctx, problem.Batch{
//	        {Capacity: 50, Weights: []int{10, 20, 30}, Values: []int{60, 100, 120}},
//	    })
//	}
//
// # Partitioning
//
// The striped partition is static: it assumes roughly uniform per-instance
// cost, which holds when every instance has the same item count.
//
// # Thread Safety
//
// A Backend is safe for concurrent use. Each Solve owns its result vector and
// only reads the batch.
package cpu
