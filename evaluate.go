package interaction

// Evaluate snapshots positions and (re)builds the evaluation cache for
// every subpopulation in subpops. If immediate is true the full
// pairwise distance and strength matrices are filled before Evaluate
// returns; otherwise entries are computed lazily, the first time a
// query touches them. Evaluate may be called again for a subpopulation
// already evaluated: the cache is rebuilt from scratch, not merged.
func (it *InteractionType) Evaluate(subpops []Subpopulation, immediate bool) error {
	for _, subpop := range subpops {
		d := newInteractionsData()

		if err := it.snapshotPositions(d, subpop); err != nil {
			return err
		}

		if len(it.callbacks) > 0 {
			d.activeCallbacks = append([]ActiveCallback(nil), it.callbacks...)
		}

		n := d.individualCount
		d.ensureMatrixCapacity(n)
		it.resetMatrices(d)

		if it.spatiality > 0 {
			d.tree = buildTree(it, d)
		}

		d.evaluated = true
		it.data[subpop.ID()] = d

		if immediate {
			if err := it.fillMatricesEager(d, subpop); err != nil {
				return err
			}
		}
	}
	return nil
}

// Unevaluate discards every subpopulation's cached evaluation. Queries
// issued afterward fail with NotEvaluated until Evaluate is called
// again.
func (it *InteractionType) Unevaluate() error {
	it.data = make(map[int]*InteractionsData)
	return nil
}

// AnyEvaluated reports whether at least one subpopulation currently has
// a live evaluation cache. SetMaxDistance and SetInteractionFunction
// refuse to run while this is true.
func (it *InteractionType) AnyEvaluated() bool {
	for _, d := range it.data {
		if d.evaluated {
			return true
		}
	}
	return false
}

// dataFor returns the evaluation cache for a subpopulation id, or
// NotEvaluated if Evaluate has not been called for it (or it has since
// been Unevaluate'd).
func (it *InteractionType) dataFor(subpopID int) (*InteractionsData, error) {
	d, ok := it.data[subpopID]
	if !ok || !d.evaluated {
		return nil, newErrorf(ErrNotEvaluated, "subpopulation %d has not been evaluated", subpopID)
	}
	return d, nil
}
