package runner

import (
	"context"
	"io"
	"log/slog"
	goruntime "runtime"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// ErrorRenderer is implemented by sinks that style error rows differently.
type ErrorRenderer interface {
	RenderError(line int, text string)
}

// Outcome is the per-input result of a batch. Exactly one of Err or Result is meaningful.
type Outcome struct {
	Path   string
	Line   int
	Result domain.Result
	Err    error
}

// Runner fans machine inputs out to a bounded pool of workers.
// Input i is loaded, executed and rendered on row i; inputs share no mutable state.
type Runner struct {
	// Engine executes machines. Required unless Sink is set, in which case a
	// default engine rendering to Sink is created.
	Engine *runtime.Engine

	// Loader resolves input paths to machine definitions.
	Loader ports.MachineLoader

	// Sink receives error rows. Tape rows are rendered by the Engine.
	Sink ports.RenderSink

	// Store receives the final configuration of every finished run.
	// If nil, results are only returned.
	Store ports.ResultStore

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Workers bounds the number of machines executing at once.
	// Zero means runtime.NumCPU().
	Workers int
}

// NewRunner creates a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Engine == nil {
		r.Engine = runtime.NewEngine(r.Sink, runtime.WithLogger(r.Logger))
	}
	return r
}

// Run executes every input and blocks until all of them have halted.
// Load failures are rendered on the input's row and reported in its Outcome;
// they never stop sibling runs.
//
// Note: with fewer workers than inputs, a machine that never halts keeps its
// worker forever and queued inputs never start.
func (r *Runner) Run(ctx context.Context, paths []string) []Outcome {
	workers := r.Workers
	if workers <= 0 {
		workers = goruntime.NumCPU()
	}

	outcomes := make([]Outcome, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			outcomes[i] = r.runOne(ctx, i, path)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (r *Runner) runOne(ctx context.Context, line int, path string) Outcome {
	out := Outcome{Path: path, Line: line}

	m, err := r.Loader.Load(path)
	if err != nil {
		r.Logger.Debug("input rejected", "path", path, "line", line, "err", err)
		r.renderError(line, err)
		out.Err = err
		return out
	}

	out.Result = r.Engine.Run(ctx, m, line)
	if out.Result.Steps == 0 && r.Sink != nil {
		// The engine renders only after applied rules; show the untouched tape instead of a blank row.
		r.Sink.Render(line, out.Result.Tape)
	}

	if r.Store != nil {
		if err := r.Store.Save(ctx, path, out.Result); err != nil {
			r.Logger.Warn("failed to save result", "path", path, "err", err)
		}
	}
	return out
}

func (r *Runner) renderError(line int, err error) {
	if r.Sink == nil {
		return
	}
	text := "Error: " + err.Error()
	if er, ok := r.Sink.(ErrorRenderer); ok {
		er.RenderError(line, text)
		return
	}
	r.Sink.Render(line, text)
}
