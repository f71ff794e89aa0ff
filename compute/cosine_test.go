package compute_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/expki/go-dataminer/compute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomMatrix fills a rows×cols matrix from a fixed seed.
func randomMatrix(t testing.TB, rows, cols int, seed uint64) compute.Matrix {
	t.Helper()
	random := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = random.NormFloat64()
	}
	m, err := compute.NewDense(rows, cols, data)
	require.NoError(t, err)
	return m
}

func TestCosineSimilarity_KnownValues(t *testing.T) {
	x := mustMatrix(t, [][]float64{{1, 0}, {0, 2}, {3, 3}, {-1, 0}})
	S := compute.CosineSimilarity(x)

	rows, cols := S.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 4, cols)
	assert.InDelta(t, 0.0, S.At(0, 1), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, S.At(0, 2), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, S.At(1, 2), 1e-12)
	assert.InDelta(t, -1.0, S.At(0, 3), 1e-12)
}

func TestCosineSimilarity_SymmetricUnitDiagonal(t *testing.T) {
	x := randomMatrix(t, 37, 11, 7)
	S := compute.CosineSimilarity(x)
	for i := 0; i < 37; i++ {
		assert.Equal(t, 1.0, S.At(i, i))
		for j := 0; j < i; j++ {
			assert.Equal(t, S.At(i, j), S.At(j, i))
			assert.LessOrEqual(t, math.Abs(S.At(i, j)), 1+1e-12)
		}
	}
}

func TestCosineSimilarity_MatchesVectorisedForm(t *testing.T) {
	x := randomMatrix(t, 12, 5, 3)
	S := compute.CosineSimilarity(x)

	// X·Xᵗ divided by the outer product of the row norms
	xt, err := compute.NewDense(5, 12, nil)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		for j := 0; j < 5; j++ {
			xt.Set(j, i, x.At(i, j))
		}
	}
	gram, err := compute.MatrixMultiply(x, xt)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			want := gram.At(i, j) / math.Sqrt(gram.At(i, i)*gram.At(j, j))
			assert.InDelta(t, want, S.At(i, j), 1e-9)
		}
	}
}

func TestCosineSimilarity_ZeroNormRowPropagatesNaN(t *testing.T) {
	S := compute.CosineSimilarity(mustMatrix(t, [][]float64{{0, 0}, {1, 1}}))
	assert.True(t, math.IsNaN(S.At(0, 1)))
	assert.True(t, math.IsNaN(S.At(1, 0)))
	assert.Equal(t, 1.0, S.At(0, 0), "diagonal is assigned, not computed")
}

func TestCosineSimilarity_SingleRow(t *testing.T) {
	S := compute.CosineSimilarity(mustMatrix(t, [][]float64{{4, 5, 6}}))
	assert.Equal(t, [][]float64{{1}}, S.Slices())
}
