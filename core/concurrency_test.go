package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/metro/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on distinct
// pairs do not race and all edges end up stored.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			if _, err := g.AddEdge("hub", fmt.Sprintf("v%d", i), float64(i)); err != nil {
				t.Errorf("AddEdge(hub, v%d): %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	if got := g.EdgeCount(); got != n {
		t.Fatalf("EdgeCount = %d; want %d", got, n)
	}
	ids, err := g.NeighborIDs("hub")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != n {
		t.Fatalf("len(NeighborIDs(hub)) = %d; want %d", len(ids), n)
	}
}

// TestConcurrentReadsAndWeightUpdates mixes Neighbors readers with
// SetEdgeWeight writers; run with -race.
func TestConcurrentReadsAndWeightUpdates(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if err := g.SetEdgeWeight("A", "B", float64(i)); err != nil {
				t.Errorf("SetEdgeWeight: %v", err)
			}
		}(i)
		go func() {
			defer wg.Done()
			edges, err := g.Neighbors("B")
			if err != nil {
				t.Errorf("Neighbors: %v", err)
				return
			}
			if len(edges) != 2 {
				t.Errorf("len(Neighbors(B)) = %d; want 2", len(edges))
			}
		}()
	}
	wg.Wait()
}
