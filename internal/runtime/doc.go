// Package runtime implements the execution engine: it applies transition rules
// to a private tape until no rule matches or the head leaves the tape, and
// renders the tape after every applied rule.
package runtime
