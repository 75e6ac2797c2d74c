package report_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/metro"
	"github.com/katalvlaran/metro/report"
)

func TestFormatter_Text(t *testing.T) {
	f := report.NewFormatter("km")

	found := &dijkstra.Result{
		Source: "S1", Target: "S21",
		Path:     []string{"S1", "S2", "S3", "S7", "S6", "S20", "S21"},
		Distance: 12, Found: true,
	}
	assert.Equal(t, "Shortest path from S1 to S21: S1 -> S2 -> S3 -> S7 -> S6 -> S20 -> S21 (12 km)", f.Text(found))

	missing := &dijkstra.Result{Source: "A", Target: "D", Distance: math.Inf(1)}
	assert.Equal(t, "No path from A to D", f.Text(missing))
	assert.Equal(t, "", f.Text(nil))
}

func TestFormatter_Distance(t *testing.T) {
	assert.Equal(t, "12 km", report.NewFormatter("km").Distance(12))
	assert.Equal(t, "0.75", report.NewFormatter("").Distance(0.75))
	assert.Equal(t, "1,234 m", report.NewFormatter("m").Distance(1234))
}

func TestFormatter_Error(t *testing.T) {
	f := report.NewFormatter("km")

	assert.Equal(t, `Unknown station "S99"`, f.Error(&dijkstra.UnknownNodeError{Node: "S99"}))
	assert.Equal(t, "No path from A to B", f.Error(&dijkstra.NotFoundError{Source: "A", Target: "B"}))
	assert.Equal(t, "boom", f.Error(errors.New("boom")))
	assert.Equal(t, "", f.Error(nil))
}

func TestFormatter_Table(t *testing.T) {
	g, err := builder.FromTriples([]builder.EdgeSpec{
		{From: "A", To: "B", Weight: 1},
	}, builder.WithVertices("C"))
	require.NoError(t, err)
	m, err := dijkstra.AllPairs(context.Background(), g)
	require.NoError(t, err)

	out := report.NewFormatter("").Table(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"A", "B", "C"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"A", "0", "1", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"C", "-", "-", "0"}, strings.Fields(lines[3]))
}

func TestDOT(t *testing.T) {
	net := metro.Sample()
	g, err := net.Graph()
	require.NoError(t, err)
	res, err := dijkstra.ShortestPath(context.Background(), g, "S1", "S21")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.DOT(&buf, g, net, res))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `graph "Guangzhou Metro" {`))
	assert.Contains(t, out, `"S1" [fillcolor="#FFB3BA"];`)
	assert.Contains(t, out, `"S1" -- "S2" [label="2", color=red, penwidth=2];`)
	assert.Contains(t, out, `"S7" -- "S6" [label="2", color=red, penwidth=2];`)
	assert.Contains(t, out, `"S1" -- "S8" [label="2"];`)
	assert.Contains(t, out, `legend_4 [label="Line 8", shape=box, fillcolor="#FFD9BA"];`)
	assert.Equal(t, 6, strings.Count(out, "color=red"))
}

func TestDOT_NoNetworkNoPath(t *testing.T) {
	g, err := builder.FromTriples([]builder.EdgeSpec{{From: "A", To: "B", Weight: 1.5}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.DOT(&buf, g, nil, nil))
	out := buf.String()

	assert.Contains(t, out, `graph "network" {`)
	assert.Contains(t, out, `"A" [fillcolor="#CCCCCC"];`)
	assert.Contains(t, out, `"A" -- "B" [label="1.5"];`)
	assert.NotContains(t, out, "cluster_legend")
}
