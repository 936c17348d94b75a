/*
Package runner executes a batch of machine inputs concurrently.

Every input path is assigned the output row matching its position in the batch.
Inputs are loaded and run on a bounded worker pool; a failing input only
affects its own row.

# Usage

	sink := tui.NewSink(os.Stdout)
	r := runner.NewRunner(
		runner.WithLoader(file.NewLoader(nil)),
		runner.WithSink(sink),
	)
	outcomes := r.Run(ctx, paths)

# Quitting

WatchQuit reads one line from an input stream and invokes a callback, which
the CLI uses to exit the process immediately. This is an abrupt stop: machines
that are still running are abandoned mid-step.
*/
package runner
