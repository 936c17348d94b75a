package turing_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
)

// Example runs two machines side by side and prints the final tape of each row.
func Example() {
	loader := memory.NewLoader(map[string]domain.Machine{
		"flip": {
			Tape: "100",
			Rules: []domain.Rule{
				{State: "0", Read: '1', Write: '0', Move: domain.MoveRight, NextState: "0"},
				{State: "0", Read: '0', Write: '1', Move: domain.MoveLeft, NextState: "0"},
			},
		},
		"fill": {
			Tape: "___",
			Rules: []domain.Rule{
				{State: "0", Read: '_', Write: '#', Move: domain.MoveRight, NextState: "0"},
			},
		},
	})

	var rows bytes.Buffer
	sink := tui.NewPlainSink(&rows)

	r := runner.NewRunner(
		runner.WithLoader(loader),
		runner.WithSink(sink),
	)
	for _, out := range r.Run(context.Background(), []string{"flip", "fill", "missing"}) {
		if out.Err != nil {
			continue
		}
		fmt.Printf("%s: %d steps, %s\n", out.Path, out.Result.Steps, out.Result.Reason)
	}
	_ = sink.Flush()
	fmt.Print(rows.String())

	// Output:
	// flip: 3 steps, out_of_bounds
	// fill: 3 steps, out_of_bounds
	// 110
	// ###
	// Error: failed to read machine file: file does not exist
}
