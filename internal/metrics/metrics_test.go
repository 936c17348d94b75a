package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/metrics"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	m := metrics.New()
	engine := runtime.NewEngine(nil, runtime.WithLifecycleHooks(m.Hooks()))

	flip := domain.Machine{
		Name: "flip.txt",
		Tape: "100",
		Rules: []domain.Rule{
			{State: "0", Read: '1', Write: '0', Move: domain.MoveRight, NextState: "0"},
			{State: "0", Read: '0', Write: '1', Move: domain.MoveLeft, NextState: "0"},
		},
	}
	idle := domain.Machine{Name: "idle.json", Tape: "A"}

	engine.Run(context.Background(), flip, 0)
	engine.Run(context.Background(), idle, 1)

	expected := `
# HELP turing_halts_total Total number of halted runs, by reason
# TYPE turing_halts_total counter
turing_halts_total{reason="no_rule"} 1
turing_halts_total{reason="out_of_bounds"} 1
# HELP turing_machines_running Number of machines currently executing
# TYPE turing_machines_running gauge
turing_machines_running 0
# HELP turing_steps_total Total number of rule applications, by machine
# TYPE turing_steps_total counter
turing_steps_total{machine="flip.txt"} 3
turing_steps_total{machine="idle.json"} 0
`
	err := testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"turing_halts_total", "turing_machines_running", "turing_steps_total")
	assert.NoError(t, err)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.Hooks().OnStart(context.Background(), domain.Machine{}, 0)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "turing_machines_running 1")

	health, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}
