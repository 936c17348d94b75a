package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/turing/internal/adapters/file"
	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/testutils"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flipTabular = "100\n0\n0 1 0 R 0\n0 0 1 L 0\n"

const onesJSON = `{
  "tape": "000",
  "initialTapePosition": "0",
  "rules": [
    {"state": "0", "read": "0", "write": "1", "move": "R", "nextState": "0"}
  ]
}`

const loopYAML = `tape: ab
initialTapePosition: 0
rules:
  - {state: 0, read: a, write: a, move: R, nextState: 1}
  - {state: 1, read: b, write: b, move: L, nextState: 0}
`

func quietOptions(paths ...string) (cli.RunOptions, *bytes.Buffer) {
	var out bytes.Buffer
	return cli.RunOptions{
		Paths:  paths,
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &bytes.Buffer{},
		Exit:   func(int) { panic("unexpected exit") },
	}, &out
}

func TestRunSession_PlainOutput(t *testing.T) {
	flip := testutils.WriteFile(t, "flip.txt", flipTabular)
	ones := testutils.WriteFile(t, "ones.json", onesJSON)
	bad := testutils.WriteFile(t, "machine.xml", "<machine/>")

	opts, out := quietOptions(flip, bad, ones)
	outcomes, err := cli.RunSession(opts)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, "110\nError: unsupported file extension\n111\n", out.String())
	assert.ErrorIs(t, outcomes[1].Err, domain.ErrUnsupportedFormat)
	assert.Equal(t, domain.HaltOutOfBounds, outcomes[2].Result.Reason)
}

func TestRunSession_MissingFileDoesNotFail(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.txt")
	flip := testutils.WriteFile(t, "flip.txt", flipTabular)

	opts, out := quietOptions(missing, flip)
	outcomes, err := cli.RunSession(opts)
	require.NoError(t, err)

	assert.Error(t, outcomes[0].Err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Error: failed to read machine file"))
	assert.Equal(t, "110", lines[1])
}

func TestRunSession_MaxSteps(t *testing.T) {
	loop := testutils.WriteFile(t, "loop.yaml", loopYAML)

	opts, out := quietOptions(loop)
	opts.MaxSteps = 100
	outcomes, err := cli.RunSession(opts)
	require.NoError(t, err)

	assert.Equal(t, domain.HaltStepLimit, outcomes[0].Result.Reason)
	assert.Equal(t, 100, outcomes[0].Result.Steps)
	assert.Equal(t, "ab\n", out.String())
}

func TestRunSession_ResultsDir(t *testing.T) {
	flip := testutils.WriteFile(t, "flip.txt", flipTabular)
	dir := t.TempDir()

	opts, _ := quietOptions(flip)
	opts.ResultsDir = dir
	_, err := cli.RunSession(opts)
	require.NoError(t, err)

	res, err := file.NewStore(dir).Load(context.Background(), flip)
	require.NoError(t, err)
	assert.Equal(t, "110", res.Tape)
	assert.Equal(t, -1, res.Head)
}

func TestRunSession_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	flip := testutils.WriteFile(t, "flip.txt", flipTabular)

	opts, _ := quietOptions(flip)
	opts.RedisAddr = mr.Addr()
	_, err := cli.RunSession(opts)
	require.NoError(t, err)

	assert.True(t, mr.Exists("turing:result:"+flip))
}

func TestRunSession_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	opts, _ := quietOptions()
	opts.RedisAddr = addr
	_, err := cli.RunSession(opts)
	assert.Error(t, err)
}

func TestRunSession_QuitLine(t *testing.T) {
	flip := testutils.WriteFile(t, "flip.txt", flipTabular)

	opts, _ := quietOptions(flip)
	opts.Stdin = strings.NewReader("\n")
	exited := make(chan int, 1)
	opts.Exit = func(code int) { exited <- code }

	_, err := cli.RunSession(opts)
	require.NoError(t, err)
	assert.Equal(t, 0, <-exited)
}

func TestRunSession_ZeroStepMachineShowsTape(t *testing.T) {
	idle := testutils.WriteFile(t, "idle.json", `{"tape": "A"}`)
	flip := testutils.WriteFile(t, "flip.txt", flipTabular)

	opts, out := quietOptions(idle, flip)
	outcomes, err := cli.RunSession(opts)
	require.NoError(t, err)

	assert.Equal(t, 0, outcomes[0].Result.Steps)
	assert.Equal(t, "A\n110\n", out.String())
}
