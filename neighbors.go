package interaction

import "github.com/jgallowa07/SLiM/kdtree"

// NearestNeighbors returns up to k individuals nearest to receiver,
// excluding receiver itself, within max_distance, ordered arbitrarily
// (callers that need ranked order should sort on the returned DistSq).
func (it *InteractionType) NearestNeighbors(subpop Subpopulation, receiver int, k int) ([]kdtree.Candidate, error) {
	if it.spatiality == 0 {
		return nil, newError(ErrNotSpatial, "NearestNeighbors requires a spatial interaction")
	}
	d, err := it.dataFor(subpop.ID())
	if err != nil {
		return nil, err
	}
	focus := focusOf(d, receiver)
	return kdtree.TopKWithinRadius(d.tree, focus, receiver, true, k, it.maxDistanceSq), nil
}

// NearestNeighborsOfPoint returns up to k individuals nearest to an
// arbitrary point, within max_distance, supplementing the
// per-individual NearestNeighbors with the point-based query the
// original engine also exposes (section 9).
func (it *InteractionType) NearestNeighborsOfPoint(subpop Subpopulation, point []float64, k int) ([]kdtree.Candidate, error) {
	if it.spatiality == 0 {
		return nil, newError(ErrNotSpatial, "NearestNeighborsOfPoint requires a spatial interaction")
	}
	if len(point) != it.spatiality {
		return nil, newErrorf(ErrShapeMismatch, "point has %d components, expected %d", len(point), it.spatiality)
	}
	d, err := it.dataFor(subpop.ID())
	if err != nil {
		return nil, err
	}
	var focus [3]float64
	copy(focus[:], point)
	return kdtree.TopKWithinRadius(d.tree, focus, 0, false, k, it.maxDistanceSq), nil
}
