package compute

import "fmt"

// MatrixMultiply returns x·y for x of shape (N, M) and y of shape (M, K).
// It is the plain triple loop so results are bit-for-bit reproducible.
func MatrixMultiply(x, y Matrix) (Matrix, error) {
	if x.cols != y.rows {
		return Matrix{}, fmt.Errorf("multiply %dx%d by %dx%d: %w", x.rows, x.cols, y.rows, y.cols, ErrShapeMismatch)
	}
	res := zeros(x.rows, y.cols)
	for i := 0; i < x.rows; i++ {
		for j := 0; j < y.cols; j++ {
			var sum float64
			for k := 0; k < x.cols; k++ {
				sum += x.data[i*x.cols+k] * y.data[k*y.cols+j]
			}
			res.data[i*res.cols+j] = sum
		}
	}
	return res, nil
}
