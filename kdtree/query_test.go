package kdtree

import (
	"math"
	"testing"
)

func gridPositions() []float64 {
	// A 3x3 grid in the xy plane, z unused.
	var positions []float64
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			positions = append(positions, float64(x), float64(y), 0)
		}
	}
	return positions
}

func TestNearestExcludesFocal(t *testing.T) {
	tr := Build(BuildInput{Positions: gridPositions(), N: 9, Dims: 2})
	focus := [3]float64{1, 1, 0} // center of grid, index 4
	idx, distSq, found := Nearest(tr, focus, 4, true)
	if !found {
		t.Fatalf("expected a result")
	}
	if idx == 4 {
		t.Fatalf("excluded index returned")
	}
	if math.Abs(distSq-1) > 1e-9 {
		t.Fatalf("got distSq %v, want 1", distSq)
	}
}

func TestAllWithinRadiusCountsExpectedNeighbors(t *testing.T) {
	tr := Build(BuildInput{Positions: gridPositions(), N: 9, Dims: 2})
	focus := [3]float64{1, 1, 0}
	var count int
	AllWithinRadius(tr, focus, 4, true, 1.0+1e-9, func(index int, distSq float64) {
		count++
	})
	// The 4 orthogonal neighbors are at distSq=1; diagonals are at distSq=2.
	if count != 4 {
		t.Fatalf("got %d neighbors within radius 1, want 4", count)
	}
}

func TestTopKWithinRadius(t *testing.T) {
	tr := Build(BuildInput{Positions: gridPositions(), N: 9, Dims: 2})
	focus := [3]float64{1, 1, 0}
	got := TopKWithinRadius(tr, focus, 4, true, 4, 1.0+1e-9)
	if len(got) != 4 {
		t.Fatalf("got %d candidates, want 4", len(got))
	}
	for _, c := range got {
		if math.Abs(c.DistSq-1) > 1e-9 {
			t.Fatalf("candidate %+v not at distSq=1", c)
		}
	}
}

func TestTopKWithinRadiusSmallerThanPool(t *testing.T) {
	tr := Build(BuildInput{Positions: gridPositions(), N: 9, Dims: 2})
	focus := [3]float64{1, 1, 0}
	got := TopKWithinRadius(tr, focus, 4, true, 2, 100)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
}

func TestNearestOnEmptyTree(t *testing.T) {
	tr := Build(BuildInput{N: 0, Dims: 2})
	_, _, found := Nearest(tr, [3]float64{}, 0, false)
	if found {
		t.Fatalf("expected not found on empty tree")
	}
}
