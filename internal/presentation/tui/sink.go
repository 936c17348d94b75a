package tui

import (
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Sink renders machine tapes onto fixed terminal rows using cursor positioning.
// Each Render moves to the row, clears it and writes the text, so a row always
// shows the latest tape only. Calls are serialized; callers own distinct rows.
type Sink struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewSink creates a Sink writing to w.
func NewSink(w io.Writer, opts ...termenv.OutputOption) *Sink {
	return &Sink{out: termenv.NewOutput(w, opts...)}
}

// Clear erases the whole screen and homes the cursor.
func (s *Sink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.ClearScreen()
}

// Render rewrites 0-based row line with text.
func (s *Sink) Render(line int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(line, text)
}

// RenderError rewrites row line with text in red, when the terminal supports colour.
func (s *Sink) RenderError(line int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	styled := s.out.String(text).Foreground(s.out.Color("#f87171")).String()
	s.write(line, styled)
}

// Park moves the cursor to the start of row line, below the machine rows,
// so that later output does not overwrite them.
func (s *Sink) Park(line int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.MoveCursor(line+1, 1)
}

// Println writes msg at the cursor followed by a newline.
func (s *Sink) Println(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, msg+"\n")
}

func (s *Sink) write(line int, text string) {
	// termenv rows and columns are 1-based.
	s.out.MoveCursor(line+1, 1)
	s.out.ClearLine()
	_, _ = io.WriteString(s.out, text)
}
