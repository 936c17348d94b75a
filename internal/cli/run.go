package cli

import (
	"io"
	"os"
	"time"
)

// RunOptions contains all the configuration for the root command.
type RunOptions struct {
	Paths       []string
	MaxSteps    int
	Workers     int
	Debug       bool
	MetricsAddr string
	RedisAddr   string
	RedisTTL    time.Duration
	ResultsDir  string

	// Process plumbing. Zero values mean the real os streams and os.Exit.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(code int)
}

func (o *RunOptions) setDefaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Exit == nil {
		o.Exit = os.Exit
	}
}

// Execute runs every input concurrently and returns once all of them halted.
// Per-input failures are shown on their own row and never produce an error here;
// only setup failures (e.g. an unreachable result store) do.
func Execute(opts RunOptions) error {
	opts.setDefaults()
	_, err := RunSession(opts)
	return err
}
