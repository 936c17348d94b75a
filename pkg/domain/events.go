package domain

import (
	"context"
)

// StepEvent is emitted after a rule has been applied.
type StepEvent struct {
	Name  string
	Line  int
	Step  int
	Head  int
	State string
	Tape  string
}

// HaltEvent is emitted once per run when it stops.
type HaltEvent struct {
	Result Result
}

// LifecycleHooks defines callbacks for engine observability.
// OnStep runs synchronously inside the step loop and must be cheap.
type LifecycleHooks struct {
	OnStart func(context.Context, Machine, int)
	OnStep  func(context.Context, *StepEvent)
	OnHalt  func(context.Context, *HaltEvent)
}

// Merge returns hooks that call h first and then other for every event.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStart: chain3(h.OnStart, other.OnStart),
		OnStep:  chain2(h.OnStep, other.OnStep),
		OnHalt:  chain2(h.OnHalt, other.OnHalt),
	}
}

func chain2[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chain3(a, b func(context.Context, Machine, int)) func(context.Context, Machine, int) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, m Machine, line int) {
		a(ctx, m, line)
		b(ctx, m, line)
	}
}
