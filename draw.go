package interaction

import "math/rand"

// DrawByStrength draws k individuals with replacement from receiver's
// candidate pool, with probability proportional to the strength each
// candidate exerts on receiver (section 4.7). The candidate pool is
// every other individual within max_distance for a spatial interaction,
// or every other individual in the subpopulation for a non-spatial one
// (spatiality 0). The returned slice has length k, or is empty if the
// candidate pool carries no positive total strength. For k >
// aliasMethodThreshold the candidate strengths are preprocessed once
// into an alias table and sampled k times in O(1) each; for smaller k
// a cumulative linear scan is redone per draw, which is cheaper than
// building the table for a handful of samples.
func (it *InteractionType) DrawByStrength(subpop Subpopulation, receiver int, k int, rng *rand.Rand) ([]int, error) {
	if k <= 0 {
		return nil, nil
	}
	d, err := it.dataFor(subpop.ID())
	if err != nil {
		return nil, err
	}

	var candidates []NeighborStrength
	if it.spatiality == 0 {
		candidates, err = it.fillAllStrengths(d, subpop, receiver, nil)
	} else {
		candidates, err = it.fillNeighborStrengths(d, subpop, receiver, nil)
	}
	if err != nil {
		return nil, err
	}

	var total float64
	for _, c := range candidates {
		total += c.Strength
	}
	if total <= 0 {
		return nil, nil
	}

	draws := make([]int, k)
	if k > aliasMethodThreshold {
		table := buildAliasTable(candidates, total)
		for i := 0; i < k; i++ {
			draws[i] = table.draw(candidates, rng)
		}
	} else {
		for i := 0; i < k; i++ {
			draws[i] = drawLinear(candidates, total, rng)
		}
	}
	return draws, nil
}

// aliasMethodThreshold is the draw count above which preprocessing
// candidates into an alias table pays for itself over redoing a
// cumulative linear scan on every draw.
const aliasMethodThreshold = 50

// drawLinear performs one weighted draw by cumulative linear scan.
// total must be the (positive) sum of every candidate's strength.
func drawLinear(candidates []NeighborStrength, total float64, rng *rand.Rand) int {
	target := rng.Float64() * total
	var cumulative float64
	for _, c := range candidates {
		cumulative += c.Strength
		if target < cumulative {
			return c.Exerter
		}
	}
	// Floating point rounding may leave target fractionally beyond the
	// last cumulative sum; fall back to the last positive-strength entry.
	for i := len(candidates) - 1; i >= 0; i-- {
		if candidates[i].Strength > 0 {
			return candidates[i].Exerter
		}
	}
	return candidates[len(candidates)-1].Exerter
}

// aliasTable is Vose's alias method preprocessing for weighted sampling
// in O(1) per draw after an O(n) build, used once a request calls for
// enough draws to amortize the setup cost.
type aliasTable struct {
	prob  []float64
	alias []int
}

func buildAliasTable(candidates []NeighborStrength, total float64) aliasTable {
	n := len(candidates)
	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)

	for i, c := range candidates {
		scaled[i] = c.Strength * float64(n) / total
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	t := aliasTable{
		prob:  make([]float64, n),
		alias: make([]int, n),
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		t.prob[s] = scaled[s]
		t.alias[s] = l

		scaled[l] = scaled[l] + scaled[s] - 1
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	for _, l := range large {
		t.prob[l] = 1
	}
	for _, s := range small {
		t.prob[s] = 1
	}

	return t
}

func (t aliasTable) draw(candidates []NeighborStrength, rng *rand.Rand) int {
	slot := rng.Intn(len(candidates))
	if rng.Float64() < t.prob[slot] {
		return candidates[slot].Exerter
	}
	return candidates[t.alias[slot]].Exerter
}
