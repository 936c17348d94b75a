package runtime

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// Engine drives machines from their initial configuration to a halt.
// A single Engine is safe to share between goroutines: all mutable state lives
// in the per-call Run.
type Engine struct {
	sink     ports.RenderSink
	maxSteps int
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMaxSteps caps the number of rule applications per run.
// Zero (the default) means no limit; a machine that never halts runs forever.
func WithMaxSteps(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine that renders every step to sink.
// A nil sink discards output.
func NewEngine(sink ports.RenderSink, opts ...EngineOption) *Engine {
	if sink == nil {
		sink = ports.RenderFunc(func(int, string) {})
	}
	e := &Engine{
		sink:   sink,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes m until no rule applies or the head leaves the tape, rendering
// the whole tape to line after each applied rule.
//
// Cancellation of ctx is observed between steps; a cancelled run halts with
// domain.HaltCancelled and keeps the tape it had reached.
func (e *Engine) Run(ctx context.Context, m domain.Machine, line int) domain.Result {
	run := NewRun(m)
	log := e.logger.With("machine", m.Name, "line", line)
	log.Debug("run started", "head", run.Head, "tape_len", len(run.Tape), "rules", len(m.Rules))

	if e.hooks.OnStart != nil {
		e.hooks.OnStart(ctx, m, line)
	}

	done := ctx.Done()
	var reason domain.HaltReason
	for {
		select {
		case <-done:
			reason = domain.HaltCancelled
		default:
		}
		if reason != "" {
			break
		}

		if e.maxSteps > 0 && run.Steps >= e.maxSteps {
			reason = domain.HaltStepLimit
			break
		}

		why, applied := run.Step(m.Rules)
		if !applied {
			reason = why
			break
		}

		text := run.String()
		e.sink.Render(line, text)

		if e.hooks.OnStep != nil {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				Name:  m.Name,
				Line:  line,
				Step:  run.Steps,
				Head:  run.Head,
				State: run.State,
				Tape:  text,
			})
		}
	}

	result := run.Result(m.Name, line, reason)
	log.Debug("run halted", "reason", reason, "steps", result.Steps, "state", result.State, "head", result.Head)

	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(ctx, &domain.HaltEvent{Result: result})
	}
	return result
}
