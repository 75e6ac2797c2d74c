package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_SampleQuery(t *testing.T) {
	for _, strategy := range []string{"heap", "linear"} {
		t.Run(strategy, func(t *testing.T) {
			code, out, _ := runCLI(t, "--strategy", strategy, "S1", "S21")
			assert.Equal(t, exitFound, code)
			assert.Equal(t, "Shortest path from S1 to S21: S1 -> S2 -> S3 -> S7 -> S6 -> S20 -> S21 (12 km)\n", out)
		})
	}
}

func TestRun_UnknownStation(t *testing.T) {
	code, out, errOut := runCLI(t, "-s", "S1", "-t", "S99")
	assert.Equal(t, exitError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `Unknown station "S99"`)
}

func TestRun_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "split.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: split
unit: min
edges:
  - {from: A, to: B, weight: 1}
  - {from: C, to: D, weight: 1}
`), 0o600))

	code, out, _ := runCLI(t, "--network", path, "A", "D")
	assert.Equal(t, exitNotFound, code)
	assert.Equal(t, "No path from A to D\n", out)
}

func TestRun_AllPairs(t *testing.T) {
	code, out, _ := runCLI(t, "--all-pairs", "--network", filepath.Join("..", "..", "metro", "testdata", "triangle.yaml"))
	require.Equal(t, exitFound, code)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{"A", "B", "C", "D"}, strings.Fields(lines[0]))
	assert.Len(t, lines, 5)
}

func TestRun_DOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.dot")
	code, _, _ := runCLI(t, "--dot", path, "S1", "S21")
	require.Equal(t, exitFound, code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"S20" -- "S21" [label="2", color=red, penwidth=2];`)
}

func TestRun_JSONLogs(t *testing.T) {
	code, _, errOut := runCLI(t, "--log-level", "info", "--log-format", "json", "S1", "S5")
	require.Equal(t, exitFound, code)
	assert.Contains(t, errOut, `"query_id":`)
	assert.Contains(t, errOut, `"message":"query done"`)
}

func TestRun_BadFlags(t *testing.T) {
	code, _, errOut := runCLI(t, "--strategy", "bfs", "S1", "S2")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "metroroute:")

	code, _, _ = runCLI(t, "--help")
	assert.Equal(t, exitFound, code)
}
