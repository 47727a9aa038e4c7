// Package diagnostics provides one-way export of an evaluated
// InteractionType's state for offline inspection. Nothing here is read
// back into the engine: the interaction engine itself has no file
// format for its own state (it is reconstructed from host data on every
// Evaluate), and these exports exist purely for debugging and analysis
// tooling outside the simulation process.
package diagnostics

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Header identifies one exported snapshot. RunID correlates exports
// (e.g. an HDF5 export and a snapshot export) taken from the same
// evaluation run, since a caller may produce more than one export file
// per Evaluate and has no other shared key to join them on.
type Header struct {
	Version      int       `json:"version"`
	RunID        string    `json:"run_id"`
	SubpopID     int       `json:"subpop_id"`
	Spatiality   string    `json:"spatiality"`
	ExportedTime time.Time `json:"exported_time"`
}

// Snapshot is the full one-way export of one subpopulation's evaluated
// interaction state: its position snapshot plus the distance and
// strength matrices as they stood at export time (NaN entries are
// exported as-is; a consumer that cares should treat them as
// not-yet-computed, matching the engine's own convention).
type Snapshot struct {
	Header Header `json:"header"`

	IndividualCount int       `json:"individual_count"`
	FirstMaleIndex  int       `json:"first_male_index"`
	Positions       []float64 `json:"positions"` // stride 3

	Distances []float64 `json:"-"` // row-major N*N, gob only (too large for JSON header)
	Strengths []float64 `json:"-"`
}

// WriteSnapshot writes snap to path as a zstd-compressed gob stream,
// preceded by a JSON header line for quick inspection with standard
// tools (e.g. `zstd -dc | head -1 | jq`), mirroring the split
// header/body layout used elsewhere in this codebase's ecosystem for
// large periodic exports.
func WriteSnapshot(path string, snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 256*1024)
	defer bw.Flush()

	hb, err := json.Marshal(snap.Header)
	if err != nil {
		return err
	}
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		return fmt.Errorf("diagnostics: gob encode: %w", err)
	}
	return nil
}
