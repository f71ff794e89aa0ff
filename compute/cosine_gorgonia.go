//go:build gorgonia
// +build gorgonia

package compute

import (
	_ "github.com/expki/go-dataminer/env"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// CosineSimilarity computes the pairwise cosine similarity between the rows of x with a
// gorgonia graph: X·Xᵗ divided by the outer product of the row norms.
// The lower triangle is mirrored afterwards so the result is exactly symmetric, and the
// diagonal is assigned 1.0. Zero-norm rows yield NaN or ±Inf.
func CosineSimilarity(x Matrix) Matrix {
	n := x.rows
	g := gorgonia.NewGraph()

	// Input matrix, copied so the graph never aliases the caller's storage
	dense := tensor.New(tensor.WithBacking(x.Clone().data), tensor.WithShape(x.rows, x.cols))
	X := gorgonia.NewMatrix(g, tensor.Float64, gorgonia.WithValue(dense), gorgonia.WithName("x"))

	// Compute norms
	squared := gorgonia.Must(gorgonia.Square(X))
	sumSquares := gorgonia.Must(gorgonia.Sum(squared, 1))
	norms := gorgonia.Must(gorgonia.Sqrt(sumSquares))

	// Matrix multiplication
	XT := gorgonia.Must(gorgonia.Transpose(X, 1, 0))
	dot := gorgonia.Must(gorgonia.Mul(X, XT))

	// Calculate denominator
	denominator := gorgonia.Must(gorgonia.OuterProd(norms, norms))

	// Compute cosine similarity
	cosineSim := gorgonia.Must(gorgonia.HadamardDiv(dot, denominator))

	// Execute the graph
	machine := gorgonia.NewTapeMachine(g)
	err := machine.RunAll()
	if err != nil {
		panic(err)
	}
	machine.Close()

	values := cosineSim.Value().Data().([]float64)
	sims := zeros(n, n)
	S := sims.data
	copy(S, values)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			S[j*n+i] = S[i*n+j]
		}
		S[i*n+i] = 1
	}

	return sims
}
