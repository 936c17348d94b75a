package runner

import (
	"log/slog"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithEngine sets the execution engine.
func WithEngine(engine *runtime.Engine) Option {
	return func(r *Runner) {
		r.Engine = engine
	}
}

// WithLoader sets the machine loader.
func WithLoader(loader ports.MachineLoader) Option {
	return func(r *Runner) {
		r.Loader = loader
	}
}

// WithSink sets the sink used for error rows (and for the default engine).
func WithSink(sink ports.RenderSink) Option {
	return func(r *Runner) {
		r.Sink = sink
	}
}

// WithStore configures where final results are saved.
func WithStore(store ports.ResultStore) Option {
	return func(r *Runner) {
		r.Store = store
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.Logger = logger
		}
	}
}

// WithWorkers bounds the number of concurrently executing machines.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.Workers = n
	}
}
