package interaction

import "github.com/jgallowa07/SLiM/kdtree"

// packedAxisPeriodicity remaps it's x/y/z periodicity flags and d's
// per-axis bounds into packed-slot order: slot k is whichever of
// x/y/z is the k-th axis selected by it.axes, matching the packed
// position layout snapshotPositions builds (section 4.1). Every
// consumer of per-slot periodicity (the k-d tree, unindexed distance
// calculations) must index through this, not through x/y/z order
// directly.
func (it *InteractionType) packedAxisPeriodicity(d *InteractionsData) (periodic [3]bool, bound [3]float64) {
	slot := 0
	if it.axes.useX {
		periodic[slot] = it.periodicX
		bound[slot] = d.boundsX1
		slot++
	}
	if it.axes.useY {
		periodic[slot] = it.periodicY
		bound[slot] = d.boundsY1
		slot++
	}
	if it.axes.useZ {
		periodic[slot] = it.periodicZ
		bound[slot] = d.boundsZ1
		slot++
	}
	return periodic, bound
}

// buildTree constructs the k-d tree over d's position snapshot,
// replicating it across periodic images on every periodic axis
// selected by it (section 4.5). Only called when it.spatiality > 0.
func buildTree(it *InteractionType, d *InteractionsData) *kdtree.Tree {
	periodicAxis, axisBound := it.packedAxisPeriodicity(d)

	return kdtree.Build(kdtree.BuildInput{
		Positions:    d.positions,
		N:            d.individualCount,
		Dims:         it.spatiality,
		PeriodicAxis: periodicAxis,
		AxisBound:    axisBound,
	})
}
