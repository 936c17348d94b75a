package testutils

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// RenderCall is a single captured RenderSink call.
type RenderCall struct {
	Line int
	Text string
}

// Recorder is a RenderSink test double that captures calls instead of touching a terminal.
// Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []RenderCall
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Render records the call.
func (r *Recorder) Render(line int, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, RenderCall{Line: line, Text: text})
}

// Calls returns a copy of every captured call in arrival order.
func (r *Recorder) Calls() []RenderCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RenderCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// Lines returns the texts rendered to line, in order.
func (r *Recorder) Lines(line int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.calls {
		if c.Line == line {
			out = append(out, c.Text)
		}
	}
	return out
}

// Last returns the most recent text rendered to line.
func (r *Recorder) Last(line int) (string, bool) {
	texts := r.Lines(line)
	if len(texts) == 0 {
		return "", false
	}
	return texts[len(texts)-1], true
}

// WriteFile creates name inside a fresh temp dir with content and returns its path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}
