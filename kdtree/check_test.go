package kdtree

import "testing"

func TestCheckInvariantEmptyTree(t *testing.T) {
	tr := &Tree{Root: noChild, Dims: 2}
	if err := CheckInvariant(tr); err != nil {
		t.Fatalf("empty tree should have no invariant violation, got %v", err)
	}
}

func TestCheckInvariantDetectsViolation(t *testing.T) {
	// Hand-build a tree where the right child violates the split.
	tr := &Tree{
		Dims: 1,
		Root: 0,
		Nodes: []Node{
			{Coord: [3]float64{5}, Index: 0, Left: 1, Right: 2},
			{Coord: [3]float64{1}, Index: 1, Left: noChild, Right: noChild},
			{Coord: [3]float64{4}, Index: 2, Left: noChild, Right: noChild}, // should be >= 5
		},
	}
	if err := CheckInvariant(tr); err == nil {
		t.Fatalf("expected invariant violation to be detected")
	}
}
