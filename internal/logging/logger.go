package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// New creates a configured application logger writing text records to w.
// The CLI passes Stderr so logs stay off the rows rewritten on Stdout.
// It standardizes common keys (e.g., "error" -> "err").
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Hooks logs run start and halt at Info level. Steps are not logged.
func Hooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStart: func(ctx context.Context, m domain.Machine, line int) {
			logger.InfoContext(ctx, "machine started", "machine", m.Name, "line", line, "rules", len(m.Rules))
		},
		OnHalt: func(ctx context.Context, ev *domain.HaltEvent) {
			r := ev.Result
			logger.InfoContext(ctx, "machine halted",
				"machine", r.Name,
				"line", r.Line,
				"reason", r.Reason,
				"steps", r.Steps,
				"state", r.State,
			)
		},
	}
}
