package diagnostics

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sbinet/go-hdf5"
)

// HDF5Export is what ExportHDF5 needs from an evaluated subpopulation:
// its packed position snapshot and the current distance/strength
// matrices, all row-major as the engine itself lays them out.
type HDF5Export struct {
	RunID           string
	SubpopID        int
	Spatiality      int
	IndividualCount int
	Positions       []float64 // stride 3
	Distances       []float64 // N*N
	Strengths       []float64 // N*N
}

// ExportHDF5 writes one subpopulation's evaluated state to an HDF5
// file as three datasets ("positions", "distances", "strengths") plus
// a "config" dataset carrying descriptive attributes, following the
// attribute-on-a-null-dataspace convention this codebase's HDF5
// exporters use for run metadata.
func ExportHDF5(path string, e HDF5Export) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return err
	}
	defer checkClose(&err, file)

	if err := saveConfig(file, e); err != nil {
		return err
	}

	if err := writeFlatDataset(file, "positions", e.Positions, []int{e.IndividualCount, 3}); err != nil {
		return err
	}
	n := e.IndividualCount
	if err := writeFlatDataset(file, "distances", e.Distances, []int{n, n}); err != nil {
		return err
	}
	if err := writeFlatDataset(file, "strengths", e.Strengths, []int{n, n}); err != nil {
		return err
	}
	return nil
}

// saveConfig creates a "config" dataset with a null dataspace whose
// attributes describe the export's provenance.
func saveConfig(file *hdf5.File, e HDF5Export) (err error) {
	null, err := hdf5.CreateDataspace(hdf5.S_NULL)
	if err != nil {
		return err
	}
	defer checkClose(&err, null)

	anytype, err := hdf5.NewDatatypeFromValue(0)
	if err != nil {
		return err
	}
	defer checkClose(&err, anytype)

	dset, err := file.CreateDataset("config", anytype, null)
	if err != nil {
		return err
	}
	defer checkClose(&err, dset)

	if err := writeStringAttr(dset, "ExportedTime", time.Now().String()); err != nil {
		return err
	}
	if err := writeStringAttr(dset, "RunID", e.RunID); err != nil {
		return err
	}
	return writeIntAttr(dset, "SubpopID", e.SubpopID)
}

func writeStringAttr(dset *hdf5.Dataset, name, value string) (err error) {
	dtype, err := hdf5.NewDatatypeFromValue("")
	if err != nil {
		return err
	}
	defer checkClose(&err, dtype)

	scalar, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return err
	}
	defer checkClose(&err, scalar)

	attr, err := dset.CreateAttribute(name, dtype, scalar)
	if err != nil {
		return err
	}
	defer checkClose(&err, attr)

	return attr.Write(&value, dtype)
}

func writeIntAttr(dset *hdf5.Dataset, name string, value int) (err error) {
	dtype, err := hdf5.NewDatatypeFromValue(0)
	if err != nil {
		return err
	}
	defer checkClose(&err, dtype)

	scalar, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return err
	}
	defer checkClose(&err, scalar)

	attr, err := dset.CreateAttribute(name, dtype, scalar)
	if err != nil {
		return err
	}
	defer checkClose(&err, attr)

	return attr.Write(&value, dtype)
}

// writeFlatDataset writes a flat row-major []float64 as one dataset
// with the given logical dimensions.
func writeFlatDataset(file *hdf5.File, name string, data []float64, dims []int) (err error) {
	dtype, err := hdf5.NewDatatypeFromValue(float64(0))
	if err != nil {
		return err
	}
	defer checkClose(&err, dtype)

	udims := make([]uint, len(dims))
	for i, n := range dims {
		udims[i] = uint(n)
	}

	space, err := hdf5.CreateSimpleDataspace(udims, nil)
	if err != nil {
		return err
	}
	defer checkClose(&err, space)

	dset, err := file.CreateDataset(name, dtype, space)
	if err != nil {
		return err
	}
	defer checkClose(&err, dset)

	return dset.Write(&data)
}

func checkClose(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}
