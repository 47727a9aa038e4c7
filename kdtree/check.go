package kdtree

import "fmt"

// CheckInvariant walks the tree and verifies the k-d tree splitting
// invariant: for every internal node splitting on some axis, every
// descendant in its left subtree has coord[axis] <= the split value and
// every descendant in its right subtree has coord[axis] >= it. It also
// verifies that the walk reaches exactly len(t.Nodes) distinct nodes,
// i.e. no node is unreachable from the root; a node linked from more
// than one parent is walked once and is not reported. This is a debugging
// aid (section 4.5's "correctness invariant (self-check)"), not
// exercised on the hot path.
func CheckInvariant(t *Tree) error {
	if t.Empty() {
		return nil
	}
	visited := make([]bool, len(t.Nodes))
	count, err := checkRange(t, t.Root, 0, visited)
	if err != nil {
		return err
	}
	if count != len(t.Nodes) {
		return fmt.Errorf("kdtree: walk visited %d nodes, expected %d", count, len(t.Nodes))
	}
	return nil
}

func checkRange(t *Tree, idx int32, axis int, visited []bool) (int, error) {
	if idx == noChild || visited[idx] {
		return 0, nil
	}
	visited[idx] = true

	n := &t.Nodes[idx]
	split := n.Coord[axis]
	nextAxis := axis + 1
	if nextAxis >= t.Dims {
		nextAxis = 0
	}

	if err := checkSide(t, n.Left, axis, split, true); err != nil {
		return 0, err
	}
	if err := checkSide(t, n.Right, axis, split, false); err != nil {
		return 0, err
	}

	left, err := checkRange(t, n.Left, nextAxis, visited)
	if err != nil {
		return 0, err
	}
	right, err := checkRange(t, n.Right, nextAxis, visited)
	if err != nil {
		return 0, err
	}
	return 1 + left + right, nil
}

// checkSide verifies every node in the subtree rooted at idx respects
// the split on axis, walking the whole subtree whatever axis its own
// nodes split on.
func checkSide(t *Tree, idx int32, axis int, split float64, isLeft bool) error {
	if idx == noChild {
		return nil
	}
	n := &t.Nodes[idx]
	x := n.Coord[axis]
	if isLeft && x > split {
		return fmt.Errorf("kdtree: left descendant coord[%d]=%v exceeds split %v", axis, x, split)
	}
	if !isLeft && x < split {
		return fmt.Errorf("kdtree: right descendant coord[%d]=%v is below split %v", axis, x, split)
	}
	if err := checkSide(t, n.Left, axis, split, isLeft); err != nil {
		return err
	}
	return checkSide(t, n.Right, axis, split, isLeft)
}
