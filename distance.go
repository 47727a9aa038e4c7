package interaction

import "math"

// distance computes the Euclidean distance between two packed position
// slots, ignoring periodicity. Used where the caller already knows
// periodicity does not apply (no periodic axis configured).
func (it *InteractionType) distance(a, b []float64) (float64, error) {
	if it.spatiality == 0 {
		return 0, newError(ErrNotSpatial, "distance requires a spatial interaction")
	}
	var sum float64
	for k := 0; k < it.spatiality; k++ {
		d := a[k] - b[k]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// distancePeriodic computes the Euclidean distance between two packed
// position slots, taking configured periodicity into account: for each
// periodic axis the per-axis displacement is the minimum of the direct
// and wrapped distance (section 4.2). It can always be used in place of
// distance; it is just marginally slower when nothing is periodic.
func (it *InteractionType) distancePeriodic(a, b []float64, d *InteractionsData) (float64, error) {
	if it.spatiality == 0 {
		return 0, newError(ErrNotSpatial, "distance requires a spatial interaction")
	}

	periodic, bound := it.packedAxisPeriodicity(d)

	var sum float64
	for k := 0; k < it.spatiality; k++ {
		var dk float64
		if periodic[k] {
			dk = periodicAxisDistance(a[k], b[k], bound[k])
		} else {
			dk = a[k] - b[k]
		}
		sum += dk * dk
	}
	return math.Sqrt(sum), nil
}

// periodicAxisDistance returns min(|a-b|, bound-|a-b|), the minimum-image
// displacement along one periodic axis of extent [0, bound].
func periodicAxisDistance(a, b, bound float64) float64 {
	var lo, hi float64
	if a < b {
		lo, hi = a, b
	} else {
		lo, hi = b, a
	}
	direct := hi - lo
	wrapped := bound - direct
	if direct < wrapped {
		return direct
	}
	return wrapped
}
