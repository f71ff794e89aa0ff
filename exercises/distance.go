package exercises

import (
	"fmt"

	"github.com/expki/go-dataminer/compute"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// EuclideanDistances returns the L2 distance from every row of m to v.
func EuclideanDistances(m [][]float64, v []float64) ([]float64, error) {
	if err := checkRows(m, v); err != nil {
		return nil, err
	}
	distances := make([]float64, len(m))
	for i, row := range m {
		distances[i] = floats.Distance(row, v, 2)
	}
	return distances, nil
}

// CosineToRows returns the cosine similarity between every row of m and v:
// rows and v are scaled to unit length and then multiplied. Zero vectors give NaN.
func CosineToRows(m [][]float64, v []float64) ([]float64, error) {
	if err := checkRows(m, v); err != nil {
		return nil, err
	}
	rows, cols := len(m), len(v)

	normalized := mat.NewDense(rows, cols, nil)
	for i, row := range m {
		normalized.SetRow(i, row)
		scaled := normalized.RawRowView(i)
		floats.Scale(1/floats.Norm(row, 2), scaled)
	}

	unit := make([]float64, cols)
	copy(unit, v)
	floats.Scale(1/floats.Norm(v, 2), unit)

	var out mat.VecDense
	out.MulVec(normalized, mat.NewVecDense(cols, unit))
	return mat.Col(nil, 0, &out), nil
}

func checkRows(m [][]float64, v []float64) error {
	if len(m) == 0 || len(v) == 0 {
		return compute.ErrEmptyMatrix
	}
	for i, row := range m {
		if len(row) != len(v) {
			return fmt.Errorf("row %d has %d columns, vector has %d: %w", i, len(row), len(v), compute.ErrShapeMismatch)
		}
	}
	return nil
}
