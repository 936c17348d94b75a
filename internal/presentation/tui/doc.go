// Package tui holds the terminal presentation: the row-rewriting render sink
// used while machines run, a plain fallback for non-terminal output, and the banner.
package tui
