//go:build !gonum && !gorgonia
// +build !gonum,!gorgonia

package compute

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CosineSimilarity computes the pairwise cosine similarity between the rows of x.
//
// The result S is N×N with S[i][j] = dot(x_i, x_j) / (|x_i|·|x_j|). Each pair is computed once
// and written to both halves, and the diagonal is assigned 1.0. Rows with a zero norm are not
// guarded: similarities against them are NaN or ±Inf.
func CosineSimilarity(x Matrix) Matrix {
	n, dim := x.rows, x.cols
	A := x.data

	// Row norms
	norms := make([]float64, n)
	for i := 0; i < n; i++ {
		row := A[i*dim : (i+1)*dim]
		var sum float64
		for _, v := range row {
			sum += v * v
		}
		norms[i] = math.Sqrt(sum)
	}

	sims := zeros(n, n)
	S := sims.data

	// Row i owns the cells (i, j<i) and their mirrors, so no two goroutines share a cell.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			Arow := A[i*dim : (i+1)*dim]
			for j := 0; j < i; j++ {
				Brow := A[j*dim : (j+1)*dim]

				// Dot product
				var dot float64
				for k := 0; k < dim; k++ {
					dot += Arow[k] * Brow[k]
				}

				sim := dot / norms[i] / norms[j]
				S[i*n+j] = sim
				S[j*n+i] = sim
			}
			S[i*n+i] = 1
			return nil
		})
	}
	g.Wait()

	return sims
}
