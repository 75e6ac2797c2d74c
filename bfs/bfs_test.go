package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/metro"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g, err := metro.Sample().Graph()
	require.NoError(t, err)
	return g
}

func TestBFS_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := bfs.BFS(ctx, nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := sample(t)
	_, err = bfs.BFS(ctx, g, "S99")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(ctx, g, "S1", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthAndOrder(t *testing.T) {
	res, err := bfs.BFS(context.Background(), sample(t), "S1")
	require.NoError(t, err)

	assert.Len(t, res.Order, 23)
	assert.Equal(t, []string{"S1", "S2", "S8", "S3", "S9"}, res.Order[:5])
	assert.Equal(t, 0, res.Depth["S1"])
	assert.Equal(t, 1, res.Depth["S8"])
	assert.Equal(t, 2, res.Depth["S9"])

	path, err := res.PathTo("S23")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S8", "S9", "S23"}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(context.Background(), sample(t), "S1", bfs.WithMaxDepth(1))
	require.NoError(t, err)

	assert.Equal(t, []string{"S1", "S2", "S8"}, res.Order)
	assert.False(t, res.Reached("S3"))
	_, err = res.PathTo("S3")
	assert.Error(t, err)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(ctx, sample(t), "S1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	ctx := context.Background()

	comps, err := bfs.Components(ctx, sample(t))
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 23)

	g, err := builder.FromTriples([]builder.EdgeSpec{
		{From: "D", To: "C", Weight: 1},
		{From: "A", To: "B", Weight: 1},
	}, builder.WithVertices("Z"))
	require.NoError(t, err)

	comps, err = bfs.Components(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}, {"Z"}}, comps)

	_, err = bfs.Components(ctx, nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
