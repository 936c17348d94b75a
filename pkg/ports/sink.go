package ports

// RenderSink receives the textual tape of a running machine.
// Render rewrites row line in place with text. Implementations must accept
// concurrent calls as long as each caller owns a distinct line.
type RenderSink interface {
	Render(line int, text string)
}

// RenderFunc adapts a plain function to RenderSink.
type RenderFunc func(line int, text string)

// Render calls f(line, text).
func (f RenderFunc) Render(line int, text string) {
	f(line, text)
}
