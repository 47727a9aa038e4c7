package kdtree

// noChild marks the absence of a child in a Node.
const noChild = int32(-1)

// Node is one k-d tree node: its coordinates (only the first Dims of
// the 3 slots are meaningful, mirroring InteractionsData's stride-3
// position layout), the original individual index it was built from
// (stable across periodic replicates, several nodes may share an
// index), and left/right child indices into the owning Tree's Nodes
// slice.
type Node struct {
	Coord       [3]float64
	Index       int
	Left, Right int32
}

// Tree is a balanced k-d tree over a flat array of Node. Root is the
// index of the root node, or noChild if the tree is empty.
type Tree struct {
	Nodes []Node
	Root  int32
	Dims  int
}

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool { return t == nil || len(t.Nodes) == 0 || t.Root == noChild }
