/*
Package turing runs deterministic single-tape Turing machines concurrently and
redraws each machine's tape on its own terminal row after every step.

Machine files are plain text (.txt) or structured (.json, .yaml) definitions of
an initial tape, a head position and an ordered rule list. Every input runs in
its own goroutine against a private copy of the tape; rules are shared
read-only. A machine halts when its head leaves the tape or no rule matches.

# Architecture

  - pkg/domain: machine, rule, result and lifecycle hook types.
  - internal/compiler and pkg/registry: parsers keyed by file extension.
  - internal/runtime: the step loop (Engine) and its per-run state (Run).
  - pkg/runner: bounded fan-out of inputs to workers, one row per input.
  - internal/presentation/tui: the termenv render sink.
  - pkg/adapters and internal/adapters/file: loaders and result stores.
  - internal/metrics: Prometheus collectors fed by lifecycle hooks.

# Usage

	turing examples/flip.txt examples/increment.json examples/unary-double.yaml

Press Enter to quit before every machine has halted. See cmd/turing for flags.
*/
package turing
