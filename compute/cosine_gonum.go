//go:build gonum
// +build gonum

package compute

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// CosineSimilarity computes the pairwise cosine similarity between the rows of x.
//
// The dot products come from a single Dgemm of X·Xᵗ and are divided by the outer product of
// the row norms. The lower triangle is mirrored into the upper one so the result is exactly
// symmetric, and the diagonal is assigned 1.0. Zero-norm rows yield NaN or ±Inf.
func CosineSimilarity(x Matrix) Matrix {
	n, dim := x.rows, x.cols
	A := x.data

	impl := blas64.Implementation()

	// Row norms
	norms := make([]float64, n)
	for i := 0; i < n; i++ {
		norms[i] = impl.Dnrm2(dim, A[i*dim:(i+1)*dim], 1)
	}

	// C = A * Aᵗ
	sims := zeros(n, n)
	C := sims.data
	impl.Dgemm(
		blas.NoTrans, blas.Trans,
		n,   // rows of A
		n,   // cols of Aᵗ
		dim, // shared dimension
		1.0, A, dim,
		A, dim,
		0.0, C, n,
	)

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			sim := C[i*n+j] / norms[i] / norms[j]
			C[i*n+j] = sim
			C[j*n+i] = sim
		}
		C[i*n+i] = 1
	}

	return sims
}
