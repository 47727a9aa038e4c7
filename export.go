package interaction

// ExportState returns a read-only view of a subpopulation's current
// evaluation cache — its position snapshot and the distance/strength
// matrices as they currently stand (which may contain NaN for
// not-yet-computed entries if the evaluation was lazy) — for use by
// external diagnostics tooling. The returned slices alias the engine's
// own buffers and must not be retained past the next call that mutates
// this subpopulation's cache.
func (it *InteractionType) ExportState(subpopID int) (positions, distances, strengths []float64, individualCount, firstMaleIndex int, err error) {
	d, err := it.dataFor(subpopID)
	if err != nil {
		return nil, nil, nil, 0, 0, err
	}
	return d.positions, d.distances, d.strengths, d.individualCount, d.firstMaleIndex, nil
}
