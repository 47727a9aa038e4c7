package kdtree

// Candidate is one neighbor found by a radius query: the original
// individual index and its squared distance from the query point.
type Candidate struct {
	Index  int
	DistSq float64
}

func nodeDistSq(n *Node, focus [3]float64, dims int) float64 {
	var sum float64
	for a := 0; a < dims; a++ {
		d := n.Coord[a] - focus[a]
		sum += d * d
	}
	return sum
}

// Nearest returns the single nearest node to focus, excluding the node
// whose Index equals exclude when hasExclude is true. No max-distance
// filter is applied during the descent; callers that need one compare
// the returned distSq against their own cutoff. found is false if the
// tree is empty or every node was excluded.
func Nearest(t *Tree, focus [3]float64, exclude int, hasExclude bool) (index int, distSq float64, found bool) {
	if t.Empty() {
		return 0, 0, false
	}

	bestIdx := noChild
	var bestDist float64

	var descend func(idx int32, axis int)
	descend = func(idx int32, axis int) {
		if idx == noChild {
			return
		}
		n := &t.Nodes[idx]
		d := nodeDistSq(n, focus, t.Dims)
		if (bestIdx == noChild || d < bestDist) && !(hasExclude && n.Index == exclude) {
			bestDist = d
			bestIdx = idx
		}

		dx := n.Coord[axis] - focus[axis]
		nextAxis := axis + 1
		if nextAxis >= t.Dims {
			nextAxis = 0
		}

		if dx > 0 {
			descend(n.Left, nextAxis)
			if bestIdx != noChild && dx*dx >= bestDist {
				return
			}
			descend(n.Right, nextAxis)
		} else {
			descend(n.Right, nextAxis)
			if bestIdx != noChild && dx*dx >= bestDist {
				return
			}
			descend(n.Left, nextAxis)
		}
	}
	descend(t.Root, 0)

	if bestIdx == noChild {
		return 0, 0, false
	}
	return t.Nodes[bestIdx].Index, bestDist, true
}

// AllWithinRadius calls visit for every node within maxDistSq of focus,
// excluding the node whose Index equals exclude when hasExclude is
// true. The same individual index may be visited more than once if the
// tree holds periodic replicates; callers that need uniqueness (the
// strength aggregator) de-duplicate themselves.
func AllWithinRadius(t *Tree, focus [3]float64, exclude int, hasExclude bool, maxDistSq float64, visit func(index int, distSq float64)) {
	if t.Empty() {
		return
	}

	var descend func(idx int32, axis int)
	descend = func(idx int32, axis int) {
		if idx == noChild {
			return
		}
		n := &t.Nodes[idx]
		d := nodeDistSq(n, focus, t.Dims)
		if d <= maxDistSq && !(hasExclude && n.Index == exclude) {
			visit(n.Index, d)
		}

		dx := n.Coord[axis] - focus[axis]
		nextAxis := axis + 1
		if nextAxis >= t.Dims {
			nextAxis = 0
		}

		if dx > 0 {
			descend(n.Left, nextAxis)
			if dx*dx > maxDistSq {
				return
			}
			descend(n.Right, nextAxis)
		} else {
			descend(n.Right, nextAxis)
			if dx*dx > maxDistSq {
				return
			}
			descend(n.Left, nextAxis)
		}
	}
	descend(t.Root, 0)
}

// TopKWithinRadius returns up to k nodes within maxDistSq of focus,
// ranked by distance (the farthest roster member is replaced as better
// candidates are found, but the returned slice is not itself sorted).
// While the roster has room, the pruning threshold is maxDistSq; once
// it fills, the threshold tightens to the current worst-of-best,
// following the specification's top-k descent discipline.
func TopKWithinRadius(t *Tree, focus [3]float64, exclude int, hasExclude bool, k int, maxDistSq float64) []Candidate {
	if t.Empty() || k <= 0 {
		return nil
	}

	best := make([]Candidate, 0, k)
	threshold := maxDistSq

	var descend func(idx int32, axis int)
	descend = func(idx int32, axis int) {
		if idx == noChild {
			return
		}
		n := &t.Nodes[idx]
		d := nodeDistSq(n, focus, t.Dims)
		if d <= threshold && !(hasExclude && n.Index == exclude) {
			if len(best) < k {
				best = append(best, Candidate{Index: n.Index, DistSq: d})
				if len(best) == k {
					threshold = worstOf(best)
				}
			} else if wi := worstIndexOf(best); d < best[wi].DistSq {
				best[wi] = Candidate{Index: n.Index, DistSq: d}
				threshold = worstOf(best)
			}
		}

		dx := n.Coord[axis] - focus[axis]
		nextAxis := axis + 1
		if nextAxis >= t.Dims {
			nextAxis = 0
		}

		if dx > 0 {
			descend(n.Left, nextAxis)
			if dx*dx >= threshold {
				return
			}
			descend(n.Right, nextAxis)
		} else {
			descend(n.Right, nextAxis)
			if dx*dx >= threshold {
				return
			}
			descend(n.Left, nextAxis)
		}
	}
	descend(t.Root, 0)

	return best
}

func worstOf(best []Candidate) float64 {
	return best[worstIndexOf(best)].DistSq
}

func worstIndexOf(best []Candidate) int {
	wi := 0
	for i := 1; i < len(best); i++ {
		if best[i].DistSq > best[wi].DistSq {
			wi = i
		}
	}
	return wi
}
