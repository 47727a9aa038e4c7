package main

import (
	"time"

	interaction "github.com/jgallowa07/SLiM"
	"github.com/jgallowa07/SLiM/diagnostics"
)

func exportHDF5(it *interaction.InteractionType, subpop *demoSubpop, path string, runID string) error {
	positions, distances, strengths, n, _, err := it.ExportState(subpop.ID())
	if err != nil {
		return err
	}
	return diagnostics.ExportHDF5(path, diagnostics.HDF5Export{
		RunID:           runID,
		SubpopID:        subpop.ID(),
		Spatiality:      it.Spatiality(),
		IndividualCount: n,
		Positions:       positions,
		Distances:       distances,
		Strengths:       strengths,
	})
}

func exportSnapshot(it *interaction.InteractionType, subpop *demoSubpop, path string, runID string) error {
	positions, distances, strengths, n, firstMale, err := it.ExportState(subpop.ID())
	if err != nil {
		return err
	}
	return diagnostics.WriteSnapshot(path, diagnostics.Snapshot{
		Header: diagnostics.Header{
			Version:      1,
			RunID:        runID,
			SubpopID:     subpop.ID(),
			Spatiality:   it.SpatialityString(),
			ExportedTime: time.Now(),
		},
		IndividualCount: n,
		FirstMaleIndex:  firstMale,
		Positions:       positions,
		Distances:       distances,
		Strengths:       strengths,
	})
}

