package interaction

import "math"

// sexOf reports the sex of the individual at subpopulation-local index
// idx, as recorded by snapshotPositions at the start of the current
// evaluation.
func sexOf(d *InteractionsData, idx int) Sex {
	return d.sexes[idx]
}

func sexMatches(want, actual Sex) bool {
	return want == SexAny || want == actual
}

// matrixAllowed reports whether receiver i may receive a strength from
// exerter j at all: an individual never interacts with itself, and
// receiver_sex/exerter_sex restrict which sexes may occupy each role.
// Pairs excluded here carry a strength of exactly 0, never computed.
func matrixAllowed(it *InteractionType, d *InteractionsData, i, j int) bool {
	if i == j {
		return false
	}
	if !sexMatches(it.receiverSex, sexOf(d, i)) {
		return false
	}
	if !sexMatches(it.exerterSex, sexOf(d, j)) {
		return false
	}
	return true
}

// resetMatrices marks every pairwise slot as not-yet-computed (NaN),
// except the diagonal (always 0 in both matrices) and, in the strength
// matrix only, every pair excluded by matrixAllowed (sex-forbidden
// pairs are pinned to 0, never left NaN, since they are never computed
// lazily: strengthBetween's own matrixAllowed check would otherwise be
// the only thing standing between a forbidden pair and a stale NaN
// surfacing through ExportState). The distance matrix has no such
// notion: distance is independent of the sex mask. Called once per
// Evaluate, after the backing arrays have been sized, so that stale
// values from a prior generation are never read as if current
// (section 5).
func (it *InteractionType) resetMatrices(d *InteractionsData) {
	for i := range d.distances {
		d.distances[i] = math.NaN()
	}
	for i := range d.strengths {
		d.strengths[i] = math.NaN()
	}
	n := d.individualCount
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				idx := at(i, i, n)
				d.distances[idx] = 0
				d.strengths[idx] = 0
				continue
			}
			if !matrixAllowed(it, d, i, j) {
				d.strengths[at(i, j, n)] = 0
			}
		}
	}
}

// distanceBetween returns the distance between individuals i and j,
// computing and memoizing it (and, when reciprocal, its mirror) on
// first access. It is independent of the receiver/exerter sex mask:
// distance is a geometric fact, not a strength.
func (it *InteractionType) distanceBetween(d *InteractionsData, i, j int) (float64, error) {
	n := d.individualCount
	idx := at(i, j, n)
	if !math.IsNaN(d.distances[idx]) {
		return d.distances[idx], nil
	}

	ai := d.positions[i*3 : i*3+3]
	aj := d.positions[j*3 : j*3+3]

	var dist float64
	var err error
	if it.periodicDims() > 0 {
		dist, err = it.distancePeriodic(ai, aj, d)
	} else {
		dist, err = it.distance(ai, aj)
	}
	if err != nil {
		return 0, err
	}

	d.distances[idx] = dist
	if it.reciprocal {
		d.distances[at(j, i, n)] = dist
	}
	return dist, nil
}

// strengthBetween returns the strength exerted by j on i, computing and
// memoizing it (and its mirror, when reciprocal) on first access. Pairs
// excluded by matrixAllowed or beyond max_distance are memoized as 0
// without ever invoking a callback.
func (it *InteractionType) strengthBetween(d *InteractionsData, subpop Subpopulation, i, j int) (float64, error) {
	n := d.individualCount
	idx := at(i, j, n)
	if !math.IsNaN(d.strengths[idx]) {
		return d.strengths[idx], nil
	}

	if !matrixAllowed(it, d, i, j) {
		d.strengths[idx] = 0
		return 0, nil
	}

	dist := math.NaN()
	if it.spatiality > 0 {
		var err error
		dist, err = it.distanceBetween(d, i, j)
		if err != nil {
			return 0, err
		}
		if dist > it.maxDistance {
			d.strengths[idx] = 0
			if it.reciprocal {
				d.strengths[at(j, i, n)] = 0
			}
			return 0, nil
		}
	}

	receiver := Individual{SubpopID: subpop.ID(), Index: i}
	exerter := Individual{SubpopID: subpop.ID(), Index: j}
	strength, err := it.strengthAt(d, dist, receiver, exerter, subpop)
	if err != nil {
		return 0, err
	}

	d.strengths[idx] = strength
	if it.reciprocal {
		d.strengths[at(j, i, n)] = strength
	}
	return strength, nil
}

// fillMatricesEager computes every pair's distance and strength up
// front, skipping the mirrored half of reciprocal pairs (they were
// already filled as a side effect of distanceBetween/strengthBetween).
func (it *InteractionType) fillMatricesEager(d *InteractionsData, subpop Subpopulation) error {
	n := d.individualCount
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if it.reciprocal && j < i {
				continue
			}
			if it.spatiality > 0 {
				if _, err := it.distanceBetween(d, i, j); err != nil {
					return err
				}
			}
			if _, err := it.strengthBetween(d, subpop, i, j); err != nil {
				return err
			}
		}
	}
	return nil
}
