package interaction

// snapshotPositions fills d.positions from subpop, enforcing periodic
// bounds on every periodic axis, and records the subpopulation's
// spatial extents and individual/male counts. It is the sole place the
// original x/y/z axis identity matters; every slot downstream is keyed
// only by the packed spatiality index (section 4.1).
func (it *InteractionType) snapshotPositions(d *InteractionsData, subpop Subpopulation) error {
	n := subpop.Size()
	x1, y1, z1 := subpop.Bounds()

	d.individualCount = n
	d.firstMaleIndex = subpop.FirstMaleIndex()
	d.boundsX1, d.boundsY1, d.boundsZ1 = x1, y1, z1

	if cap(d.sexes) < n {
		d.sexes = make([]Sex, n)
	} else {
		d.sexes = d.sexes[:n]
	}
	for i := 0; i < n; i++ {
		d.sexes[i] = subpop.SexOf(i)
	}

	if cap(d.positions) < n*3 {
		d.positions = make([]float64, n*3)
	} else {
		d.positions = d.positions[:n*3]
	}

	if it.spatiality == 0 {
		return nil
	}

	for i := 0; i < n; i++ {
		x, y, z := subpop.Position(i)

		if it.periodicX {
			if err := checkPeriodicBound(x, x1, "x", i); err != nil {
				return err
			}
		}
		if it.periodicY {
			if err := checkPeriodicBound(y, y1, "y", i); err != nil {
				return err
			}
		}
		if it.periodicZ {
			if err := checkPeriodicBound(z, z1, "z", i); err != nil {
				return err
			}
		}

		slot := 0
		if it.axes.useX {
			d.positions[i*3+slot] = x
			slot++
		}
		if it.axes.useY {
			d.positions[i*3+slot] = y
			slot++
		}
		if it.axes.useZ {
			d.positions[i*3+slot] = z
			slot++
		}
	}

	if it.periodicX {
		if err := checkBoundHalf(it.maxDistance, x1, "x"); err != nil {
			return err
		}
	}
	if it.periodicY {
		if err := checkBoundHalf(it.maxDistance, y1, "y"); err != nil {
			return err
		}
	}
	if it.periodicZ {
		if err := checkBoundHalf(it.maxDistance, z1, "z"); err != nil {
			return err
		}
	}
	return nil
}

func checkPeriodicBound(coord, bound float64, axis string, index int) error {
	if coord < 0 || coord > bound {
		return newErrorf(ErrOutOfPeriodicBounds, "individual %d has %s=%v outside [0, %v]", index, axis, coord, bound)
	}
	return nil
}

// checkBoundHalf verifies max_distance < bound/2 for one periodic axis,
// the invariant that keeps a pair from interacting through more than
// one periodic image.
func checkBoundHalf(maxDistance, bound float64, axis string) error {
	if maxDistance >= bound/2 {
		return newErrorf(ErrOutOfPeriodicBounds, "max_distance (%v) must be less than half the %s bound (%v)", maxDistance, axis, bound)
	}
	return nil
}
