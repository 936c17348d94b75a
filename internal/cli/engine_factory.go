package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/turing/internal/adapters/file"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/metrics"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// createEngine initializes an engine with standard CLI conventions.
func createEngine(opts RunOptions, sink ports.RenderSink, m *metrics.Metrics, logger *slog.Logger) *runtime.Engine {
	hooks := m.Hooks()
	if opts.Debug {
		hooks = hooks.Merge(logging.Hooks(logger))
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	return runtime.NewEngine(sink,
		runtime.WithMaxSteps(opts.MaxSteps),
		runtime.WithLogger(logger),
		runtime.WithLifecycleHooks(hooks),
	)
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("step", "machine", e.Name, "step", e.Step, "head", e.Head, "state", e.State)
		},
	}
}

// openStore selects where final results go: redis when an address is given,
// a results directory when one is given, memory otherwise.
// The returned close function is never nil.
func openStore(ctx context.Context, opts RunOptions, logger *slog.Logger) (ports.ResultStore, func() error, error) {
	noop := func() error { return nil }

	switch {
	case opts.RedisAddr != "":
		var ropts []redis.Option
		if opts.RedisTTL > 0 {
			ropts = append(ropts, redis.WithTTL(opts.RedisTTL))
		}
		store := redis.New(opts.RedisAddr, "", 0, ropts...)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("failed to connect to redis at %s: %w", opts.RedisAddr, err)
		}
		logger.Debug("results stored in redis", "addr", opts.RedisAddr)
		return store, store.Close, nil
	case opts.ResultsDir != "":
		logger.Debug("results stored on disk", "dir", opts.ResultsDir)
		return file.NewStore(opts.ResultsDir), noop, nil
	default:
		return memory.NewStore(), noop, nil
	}
}
