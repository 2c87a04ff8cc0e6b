package dataset

import (
	"errors"
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/kshedden/gonpy"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/unrelated/kinship"
)

// ErrShape indicates a kinship matrix that is not square or does not match its ID list.
var ErrShape = errors.New("dataset: kinship matrix shape mismatch")

// ReadNumpyMatrix loads a 2-D float64 .npy file (as written by PCAngsd and
// similar tools) into a dense matrix, honouring Fortran order.
func ReadNumpyMatrix(path string) (*mat.Dense, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(r.Shape) != 2 || r.Shape[0] != r.Shape[1] || r.Shape[0] == 0 {
		return nil, pfx.Err(fmt.Errorf("%s: %w: shape %v is not a non-empty square matrix", path, ErrShape, r.Shape))
	}
	data, err := r.GetFloat64()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	rows, cols := r.Shape[0], r.Shape[1]
	if r.ColumnMajor {
		return mat.DenseCopyOf(mat.NewDense(cols, rows, data).T()), nil
	}

	return mat.NewDense(rows, cols, data), nil
}

// MatrixPairs turns the upper triangle of a square kinship matrix into pairs.
// ids[i] names row and column i.
func MatrixPairs(ids []string, m mat.Matrix) ([]kinship.Pair, error) {
	rows, cols := m.Dims()
	if rows != cols || rows != len(ids) {
		return nil, fmt.Errorf("%w: %dx%d matrix for %d IDs", ErrShape, rows, cols, len(ids))
	}

	pairs := make([]kinship.Pair, 0, rows*(rows-1)/2)
	for i := 0; i < rows; i++ {
		for j := i + 1; j < cols; j++ {
			pairs = append(pairs, kinship.Pair{ID1: ids[i], ID2: ids[j], Kinship: m.At(i, j)})
		}
	}

	return pairs, nil
}

// ReadKinshipMatrix reads a .npy kinship matrix and the ID list naming its
// rows (one IID per line, or a .fam file) and returns its pairs.
func ReadKinshipMatrix(npyPath, idsPath string) ([]kinship.Pair, error) {
	m, err := ReadNumpyMatrix(npyPath)
	if err != nil {
		return nil, err
	}
	ids, err := ReadSamples(idsPath)
	if err != nil {
		return nil, err
	}
	pairs, err := MatrixPairs(ids, m)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s + %s: %w", npyPath, idsPath, err))
	}

	return pairs, nil
}
