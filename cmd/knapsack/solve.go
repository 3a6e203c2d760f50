package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/knapsack/internal/backend/cpu"
	"github.com/born-ml/knapsack/internal/backend/emulated"
	"github.com/born-ml/knapsack/internal/backend/gpu"
	"github.com/born-ml/knapsack/internal/backend/webgpu"
	"github.com/born-ml/knapsack/internal/config"
	"github.com/born-ml/knapsack/internal/generate"
	"github.com/born-ml/knapsack/internal/logger"
	"github.com/born-ml/knapsack/internal/metrics"
	"github.com/born-ml/knapsack/internal/parallel"
	"github.com/born-ml/knapsack/internal/problem"
)

func newSolveCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a random batch and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(*cfgFile)
			if err != nil {
				return err
			}
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runSolve(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	def := generate.DefaultParams()
	f := cmd.Flags()
	f.String(config.KeyBackend, config.BackendCPU, "compute backend: cpu, gpu or emulated")
	f.Int(config.KeyProblems, def.Problems, "number of problems in the batch")
	f.Int(config.KeyItems, def.Items, "items per problem")
	f.Int(config.KeyMaxCapacity, def.MaxCapacity, "capacities are drawn from [1, max-capacity]")
	f.Int(config.KeyMaxWeight, def.MaxWeight, "weights are drawn from [1, max-weight]")
	f.Int(config.KeyMaxValue, def.MaxValue, "values are drawn from [1, max-value]")
	f.Int(config.KeyWorkers, 0, "worker goroutines (0 = number of CPUs)")
	f.Uint64(config.KeySeed, 0, "generator seed (0 = random)")
	f.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error")
	f.Bool(config.KeyShowItems, false, "print the chosen items of every problem")
	f.Bool(config.KeyMetrics, false, "print Prometheus metrics after solving")
	return cmd
}

func runSolve(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	log := logger.NewWithWriter(errOut, logger.LevelFromString(cfg.LogLevel))
	defer func() { _ = log.Sync() }()

	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)

	params := generate.Params{
		Problems:    cfg.Problems,
		Items:       cfg.Items,
		MaxCapacity: cfg.MaxCapacity,
		MaxWeight:   cfg.MaxWeight,
		MaxValue:    cfg.MaxValue,
	}
	batch, err := generate.NewRandom(cfg.Seed).Generate(params)
	if err != nil {
		return err
	}

	backend, release, err := newSolver(cfg, log, recorder)
	if err != nil {
		log.Error("backend initialization failed", zap.String("backend", cfg.Backend), zap.Error(err))
		return err
	}
	defer release()

	log.Info("solving batch", zap.String("solver", backend.Name()), zap.Int("problems", batch.Len()))
	results, err := backend.Solve(ctx, batch)
	if err != nil {
		return err
	}

	if err := writeResults(out, batch, results, cfg.ShowItems); err != nil {
		return err
	}
	if cfg.Metrics {
		return writeMetrics(out, registry)
	}
	return nil
}

// newSolver builds the configured backend and a func releasing its resources.
func newSolver(cfg config.Config, log *zap.Logger, recorder *metrics.Recorder) (problem.Solver, func(), error) {
	pcfg := parallel.DefaultConfig()
	if cfg.Workers > 0 {
		pcfg.Enabled = true
		pcfg.NumWorkers = cfg.Workers
	}

	switch cfg.Backend {
	case config.BackendCPU:
		b, err := cpu.New(cpu.WithConfig(pcfg), cpu.WithLogger(log), cpu.WithRecorder(recorder))
		if err != nil {
			return nil, nil, err
		}
		return b, func() {}, nil
	case config.BackendGPU:
		dev, err := webgpu.New()
		if err != nil {
			return nil, nil, err
		}
		return gpu.New(dev, gpu.WithLogger(log), gpu.WithRecorder(recorder)), dev.Release, nil
	case config.BackendEmulated:
		dev := emulated.NewWithConfig(pcfg)
		return gpu.New(dev, gpu.WithLogger(log), gpu.WithRecorder(recorder)), dev.Release, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalid, cfg.Backend)
	}
}
