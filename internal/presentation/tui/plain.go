package tui

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// PlainSink is used when output is not a terminal. It keeps the last text of
// every row and prints all rows in order on Flush, one per line.
type PlainSink struct {
	mu    sync.Mutex
	w     io.Writer
	lines map[int]string
}

// NewPlainSink creates a PlainSink that flushes to w.
func NewPlainSink(w io.Writer) *PlainSink {
	return &PlainSink{w: w, lines: make(map[int]string)}
}

// Render records text as the latest content of line.
func (p *PlainSink) Render(line int, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines[line] = text
}

// Flush writes every recorded row in line order. Gaps are written as empty lines.
func (p *PlainSink) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.lines) == 0 {
		return nil
	}
	idx := make([]int, 0, len(p.lines))
	for i := range p.lines {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	for i := 0; i <= idx[len(idx)-1]; i++ {
		if _, err := fmt.Fprintln(p.w, p.lines[i]); err != nil {
			return err
		}
	}
	return nil
}

// Println writes msg followed by a newline.
func (p *PlainSink) Println(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, msg)
}
