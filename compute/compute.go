package compute

import (
	"fmt"
)

// Matrix is a dense row-major matrix of float64 values.
// The zero value is not usable; build one with NewMatrix or NewDense.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// NewMatrix copies a slice of equally sized rows into a dense matrix.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, ErrEmptyMatrix
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("row %d has %d columns, expected %d: %w", i, len(row), cols, ErrShapeMismatch)
		}
		data = append(data, row...)
	}
	return Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// NewDense wraps data as a rows×cols matrix. A nil data slice allocates zeros.
// The matrix takes ownership of data.
func NewDense(rows, cols int, data []float64) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, ErrEmptyMatrix
	}
	if data == nil {
		data = make([]float64, rows*cols)
	}
	if len(data) != rows*cols {
		return Matrix{}, fmt.Errorf("backing length %d does not fit %dx%d: %w", len(data), rows, cols, ErrShapeMismatch)
	}
	return Matrix{rows: rows, cols: cols, data: data}, nil
}

// zeros allocates a rows×cols matrix without validation, for internal use on known shapes.
func zeros(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Dims returns the number of rows and columns.
func (m Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j. It panics when out of range, like slice indexing.
func (m Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns the element at row i, column j.
func (m Matrix) Set(i, j int, value float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = value
}

// Row returns row i as a slice sharing the matrix storage.
func (m Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("compute: row %d out of range [0,%d)", i, m.rows))
	}
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Slices copies the matrix out as a slice of rows.
func (m Matrix) Slices() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.Row(i))
	}
	return out
}

// Raw exposes the row-major backing slice.
func (m Matrix) Raw() []float64 {
	return m.data
}

func (m Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("compute: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}
