package interaction

import "github.com/jgallowa07/SLiM/kdtree"

// focusOf returns the packed position of individual idx as a fixed-size
// array suitable for kdtree queries.
func focusOf(d *InteractionsData, idx int) [3]float64 {
	var f [3]float64
	copy(f[:], d.positions[idx*3:idx*3+3])
	return f
}

// totalNeighborStrength sums the strength exerted on receiver by every
// other individual within max_distance, walking the k-d tree once and
// de-duplicating periodic replicates of the same individual with a
// generation-stamped visited buffer rather than a fresh allocation per
// call.
func (it *InteractionType) totalNeighborStrength(d *InteractionsData, subpop Subpopulation, receiver int) (float64, error) {
	if d.tree.Empty() {
		return 0, nil
	}

	focus := focusOf(d, receiver)
	seen := d.ensureVisitBuf(d.individualCount)

	var total float64
	var callbackErr error
	kdtree.AllWithinRadius(d.tree, focus, receiver, true, it.maxDistanceSq, func(index int, _ float64) {
		if callbackErr != nil || seen(index) {
			return
		}
		s, err := it.strengthBetween(d, subpop, receiver, index)
		if err != nil {
			callbackErr = err
			return
		}
		total += s
	})
	if callbackErr != nil {
		return 0, callbackErr
	}
	return total, nil
}

// fillNeighborStrengths appends (exerter index, strength) for every
// neighbor of receiver within max_distance to out, returning the
// extended slice. It shares the dedupe discipline of
// totalNeighborStrength but preserves per-neighbor strengths instead of
// collapsing them into a sum.
func (it *InteractionType) fillNeighborStrengths(d *InteractionsData, subpop Subpopulation, receiver int, out []NeighborStrength) ([]NeighborStrength, error) {
	if d.tree.Empty() {
		return out, nil
	}

	focus := focusOf(d, receiver)
	seen := d.ensureVisitBuf(d.individualCount)

	var callbackErr error
	kdtree.AllWithinRadius(d.tree, focus, receiver, true, it.maxDistanceSq, func(index int, _ float64) {
		if callbackErr != nil || seen(index) {
			return
		}
		s, err := it.strengthBetween(d, subpop, receiver, index)
		if err != nil {
			callbackErr = err
			return
		}
		out = append(out, NeighborStrength{Exerter: index, Strength: s})
	})
	if callbackErr != nil {
		return nil, callbackErr
	}
	return out, nil
}

// fillAllStrengths appends (exerter index, strength) for every other
// individual in the subpopulation to out, for a non-spatial
// (spatiality 0) interaction type, which has no k-d tree to walk: the
// entire subpopulation is the candidate pool (section 4.7's draw-by-
// strength candidate gathering for non-spatial interactions).
func (it *InteractionType) fillAllStrengths(d *InteractionsData, subpop Subpopulation, receiver int, out []NeighborStrength) ([]NeighborStrength, error) {
	for j := 0; j < d.individualCount; j++ {
		if j == receiver {
			continue
		}
		s, err := it.strengthBetween(d, subpop, receiver, j)
		if err != nil {
			return nil, err
		}
		out = append(out, NeighborStrength{Exerter: j, Strength: s})
	}
	return out, nil
}

// NeighborStrength pairs a neighboring individual's local index with
// the strength it exerts on the receiver a query was issued for.
type NeighborStrength struct {
	Exerter  int
	Strength float64
}
