package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/turing/internal/adapters/file"
	"github.com/aretw0/turing/internal/metrics"
	"github.com/aretw0/turing/pkg/runner"
)

// RunSession executes one batch of machines and returns the per-input outcomes.
func RunSession(opts RunOptions) ([]runner.Outcome, error) {
	opts.setDefaults()
	logger := createLogger(opts.Debug, opts.Stderr)

	sm := runner.NewSignalManager(context.Background())
	defer sm.Stop()
	ctx := sm.Context()

	store, closeStore, err := openStore(ctx, opts, logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("failed to close result store", "err", err)
		}
	}()

	m := metrics.New()
	if opts.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, opts.MetricsAddr, logger); err != nil {
				logger.Error("metrics server failed", "err", err)
			}
		}()
	}

	rows := len(opts.Paths)
	out := newDisplay(opts.Stdout)

	// Any line on stdin ends the process immediately; running machines are abandoned.
	go runner.WatchQuit(opts.Stdin, func() {
		out.closed(rows)
		opts.Exit(0)
	})

	r := runner.NewRunner(
		runner.WithEngine(createEngine(opts, out, m, logger)),
		runner.WithLoader(file.NewLoader(nil)),
		runner.WithSink(out),
		runner.WithStore(store),
		runner.WithLogger(logger),
		runner.WithWorkers(opts.Workers),
	)

	outcomes := r.Run(ctx, opts.Paths)
	out.finish(rows)

	for _, o := range outcomes {
		if o.Err != nil {
			logger.Debug("input failed", "path", o.Path, "err", o.Err)
		}
	}
	if ctx.Err() != nil {
		logger.Info("interrupted", "err", fmt.Errorf("batch cancelled: %w", ctx.Err()))
	}
	return outcomes, nil
}
