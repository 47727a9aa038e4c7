package kdtree

// BuildInput describes the position data a tree is built from. Position
// data is stride-3 (matching InteractionsData's packed layout); only the
// first Dims components of each individual's position are read.
// PeriodicAxis and AxisBound are indexed the same way, in packed-slot
// order, not x/y/z order: the caller is responsible for translating
// from axis identity to packed slot before calling Build, so this
// package never needs to know which of x/y/z a given slot came from
// (see the specification's note that downstream code only sees packed
// coordinates and branches on the integer spatiality).
type BuildInput struct {
	Positions    []float64 // stride 3, length 3*N
	N            int
	Dims         int
	PeriodicAxis [3]bool
	AxisBound    [3]float64
}

// Build constructs a balanced k-d tree over in. When one or more axes
// are periodic, the node set is first replicated 3^p times (p = number
// of periodic axes), once for every offset combination in {-B,0,+B}^p,
// so that a single tree can answer queries across a periodic wrap
// without special-casing the descent (section 4.5 of the
// specification). Replicated nodes all carry the same Index as the
// individual they were copied from.
func Build(in BuildInput) *Tree {
	if in.N == 0 || in.Dims == 0 {
		return &Tree{Root: noChild, Dims: in.Dims}
	}

	offsetSets := make([][3]float64, 0, 1)
	offsetSets = append(offsetSets, [3]float64{})
	for axis := 0; axis < in.Dims; axis++ {
		if !in.PeriodicAxis[axis] {
			continue
		}
		bound := in.AxisBound[axis]
		next := make([][3]float64, 0, len(offsetSets)*3)
		for _, base := range offsetSets {
			for _, delta := range [3]float64{-1, 0, 1} {
				o := base
				o[axis] = delta * bound
				next = append(next, o)
			}
		}
		offsetSets = next
	}

	replicas := len(offsetSets)
	nodes := make([]Node, replicas*in.N)
	for r, offset := range offsetSets {
		base := r * in.N
		for i := 0; i < in.N; i++ {
			n := &nodes[base+i]
			n.Index = i
			n.Left, n.Right = noChild, noChild
			for axis := 0; axis < in.Dims; axis++ {
				n.Coord[axis] = in.Positions[i*3+axis] + offset[axis]
			}
		}
	}

	root := buildRange(nodes, in.Dims, 0, len(nodes), 0)
	return &Tree{Nodes: nodes, Root: root, Dims: in.Dims}
}

// buildRange recursively partitions nodes[lo:hi] around the median
// along axis, cycling the axis with tree depth, and returns the index
// of the subtree root.
func buildRange(nodes []Node, dims, lo, hi, axis int) int32 {
	if hi-lo == 1 {
		return int32(lo)
	}

	median := lo + (hi-lo)/2
	quickselect(nodes, lo, hi, median, axis)

	nextAxis := axis + 1
	if nextAxis >= dims {
		nextAxis = 0
	}

	n := &nodes[median]
	if median > lo {
		n.Left = buildRange(nodes, dims, lo, median, nextAxis)
	} else {
		n.Left = noChild
	}
	if median+1 < hi {
		n.Right = buildRange(nodes, dims, median+1, hi, nextAxis)
	} else {
		n.Right = noChild
	}
	return int32(median)
}

// quickselect partitions nodes[lo:hi] in place so that the element at
// index k is the one that would occupy that slot were the range fully
// sorted by Coord[axis], using the midpoint of the current range as the
// pivot at each iteration (the same discipline the specification
// describes for the k-d tree builder).
func quickselect(nodes []Node, lo, hi, k, axis int) {
	for {
		if hi-lo <= 1 {
			return
		}

		pivotIdx := lo + (hi-lo)/2
		pivot := nodes[pivotIdx].Coord[axis]
		nodes[pivotIdx], nodes[hi-1] = nodes[hi-1], nodes[pivotIdx]

		store := lo
		for p := lo; p < hi-1; p++ {
			if nodes[p].Coord[axis] < pivot {
				nodes[p], nodes[store] = nodes[store], nodes[p]
				store++
			}
		}
		nodes[store], nodes[hi-1] = nodes[hi-1], nodes[store]

		switch {
		case store == k:
			return
		case store > k:
			hi = store
		default:
			lo = store + 1
		}
	}
}
