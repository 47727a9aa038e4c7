package interaction

// Distance returns the distance between two individuals of the same
// evaluated subpopulation. It fails with NotSpatial if this interaction
// type has spatiality 0, and with NotEvaluated if the subpopulation has
// not been evaluated.
func (it *InteractionType) Distance(subpopID int, i, j int) (float64, error) {
	if it.spatiality == 0 {
		return 0, newError(ErrNotSpatial, "Distance requires a spatial interaction")
	}
	d, err := it.dataFor(subpopID)
	if err != nil {
		return 0, err
	}
	if i == j {
		return 0, nil
	}
	return it.distanceBetween(d, i, j)
}

// DistanceToPoint returns the distance from an individual to an
// arbitrary point in the same number of dimensions as this
// interaction's spatiality (section 9's point-based duality of
// distance/neighbor queries).
func (it *InteractionType) DistanceToPoint(subpopID int, i int, point []float64) (float64, error) {
	if it.spatiality == 0 {
		return 0, newError(ErrNotSpatial, "DistanceToPoint requires a spatial interaction")
	}
	if len(point) != it.spatiality {
		return 0, newErrorf(ErrShapeMismatch, "point has %d components, expected %d", len(point), it.spatiality)
	}
	d, err := it.dataFor(subpopID)
	if err != nil {
		return 0, err
	}

	a := d.positions[i*3 : i*3+3]
	b := [3]float64{}
	copy(b[:], point)

	if it.periodicDims() > 0 {
		return it.distancePeriodic(a, b[:], d)
	}
	return it.distance(a, b[:])
}

// Strength returns the strength exerted by exerter on receiver, both
// subpopulation-local indices into the same evaluated subpopulation.
func (it *InteractionType) Strength(subpop Subpopulation, receiver, exerter int) (float64, error) {
	d, err := it.dataFor(subpop.ID())
	if err != nil {
		return 0, err
	}
	if receiver == exerter {
		return 0, nil
	}
	return it.strengthBetween(d, subpop, receiver, exerter)
}

// TotalOfNeighborStrengths returns the sum of strengths exerted on
// receiver by every other candidate individual: every individual
// within max_distance for a spatial interaction (using the k-d tree to
// avoid an O(N) scan), or every other individual in the subpopulation
// for a non-spatial one (section 4.7, scenario 1).
func (it *InteractionType) TotalOfNeighborStrengths(subpop Subpopulation, receiver int) (float64, error) {
	d, err := it.dataFor(subpop.ID())
	if err != nil {
		return 0, err
	}
	if it.spatiality == 0 {
		candidates, err := it.fillAllStrengths(d, subpop, receiver, nil)
		if err != nil {
			return 0, err
		}
		var total float64
		for _, c := range candidates {
			total += c.Strength
		}
		return total, nil
	}
	return it.totalNeighborStrength(d, subpop, receiver)
}

// NeighborStrengths returns, for every candidate individual, its index
// and the strength it exerts on receiver: every individual within
// max_distance for a spatial interaction, or every other individual in
// the subpopulation for a non-spatial one. The returned slice is newly
// allocated on every call.
func (it *InteractionType) NeighborStrengths(subpop Subpopulation, receiver int) ([]NeighborStrength, error) {
	d, err := it.dataFor(subpop.ID())
	if err != nil {
		return nil, err
	}
	if it.spatiality == 0 {
		return it.fillAllStrengths(d, subpop, receiver, nil)
	}
	return it.fillNeighborStrengths(d, subpop, receiver, nil)
}
