// Package metrics exposes Prometheus collectors for machine runs, fed through
// domain.LifecycleHooks, and an HTTP handler to scrape them.
package metrics
