package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/ports"
	"golang.org/x/term"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the rows on Stdout).
func createLogger(debug bool, stderr io.Writer) *slog.Logger {
	if debug {
		return logging.New(stderr, slog.LevelDebug)
	}
	return logging.NewNop()
}

// display is the render target of a session: a live terminal or a buffered plain writer.
type display interface {
	ports.RenderSink
	// finish leaves the output in its final form once rows 0..rows-1 are done.
	finish(rows int)
	// closed reports an early exit requested by the user.
	closed(rows int)
}

type liveDisplay struct {
	*tui.Sink
}

func (d liveDisplay) finish(rows int) {
	d.Park(rows)
}

func (d liveDisplay) closed(rows int) {
	d.Park(rows)
	d.Println("App closed")
}

type plainDisplay struct {
	*tui.PlainSink
}

func (d plainDisplay) finish(int) {
	_ = d.Flush()
}

func (d plainDisplay) closed(int) {
	_ = d.Flush()
	d.Println("App closed")
}

// newDisplay picks the live terminal sink when w is a terminal, the plain sink otherwise.
func newDisplay(w io.Writer) display {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s := tui.NewSink(w)
		s.Clear()
		return liveDisplay{Sink: s}
	}
	return plainDisplay{PlainSink: tui.NewPlainSink(w)}
}
