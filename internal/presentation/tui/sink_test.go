package tui_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.RenderSink = (*tui.Sink)(nil)
var _ ports.RenderSink = (*tui.PlainSink)(nil)

func TestSink_Render(t *testing.T) {
	var buf bytes.Buffer
	sink := tui.NewSink(&buf, termenv.WithProfile(termenv.Ascii))

	sink.Render(2, "010")

	assert.Equal(t, "\x1b[3;1H\x1b[2K010", buf.String())
}

func TestSink_ClearAndPark(t *testing.T) {
	var buf bytes.Buffer
	sink := tui.NewSink(&buf, termenv.WithProfile(termenv.Ascii))

	sink.Clear()
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[2J"), "ClearScreen should erase the display first")

	buf.Reset()
	sink.Park(4)
	sink.Println("App closed")
	assert.Equal(t, "\x1b[5;1HApp closed\n", buf.String())
}

func TestSink_RenderError_NoColorProfile(t *testing.T) {
	var buf bytes.Buffer
	sink := tui.NewSink(&buf, termenv.WithProfile(termenv.Ascii))

	sink.RenderError(0, "Error: boom")

	assert.Equal(t, "\x1b[1;1H\x1b[2KError: boom", buf.String())
}

func TestSink_ConcurrentWritesAreAtomic(t *testing.T) {
	var buf bytes.Buffer
	sink := tui.NewSink(&buf, termenv.WithProfile(termenv.Ascii))

	var wg sync.WaitGroup
	for line := 0; line < 8; line++ {
		wg.Add(1)
		go func(line int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				sink.Render(line, "abc")
			}
		}(line)
	}
	wg.Wait()

	// Every write is "<move><clear>abc"; interleaving inside a write would break the pattern.
	chunks := strings.Split(buf.String(), "\x1b[")
	require.NotEmpty(t, chunks)
	count := strings.Count(buf.String(), "\x1b[2Kabc")
	assert.Equal(t, 8*50, count)
}

func TestPlainSink_Flush(t *testing.T) {
	var buf bytes.Buffer
	sink := tui.NewPlainSink(&buf)

	sink.Render(0, "000")
	sink.Render(2, "Error: bad")
	sink.Render(0, "110")

	require.NoError(t, sink.Flush())
	assert.Equal(t, "110\n\nError: bad\n", buf.String())
}

func TestPlainSink_FlushEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tui.NewPlainSink(&buf).Flush())
	assert.Empty(t, buf.String())
}
