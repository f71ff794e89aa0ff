package compute_test

import (
	"math"
	"testing"

	"github.com/expki/go-dataminer/compute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowMean_Weighted(t *testing.T) {
	x := mustMatrix(t, [][]float64{{1, 2, 3}})

	plain, err := compute.RowMean(x, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, plain)

	weighted, err := compute.RowMean(x, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.6667, weighted[0], 1e-3)
}

func TestRowMean_ZeroWeightsAreUniform(t *testing.T) {
	x := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 8, 0}})

	means, err := compute.RowMean(x, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, means)
}

func TestRowMean_WeightLengthMismatch(t *testing.T) {
	x := mustMatrix(t, [][]float64{{1, 2, 3}})

	_, err := compute.RowMean(x, []float64{1, 1})
	assert.ErrorIs(t, err, compute.ErrShapeMismatch)

	_, err = compute.SubtractRowMean(x, []float64{0, 0, 0, 0})
	assert.ErrorIs(t, err, compute.ErrShapeMismatch, "length is checked before the all-zero fallback")
}

func TestSubtractRowMean_UniformWeightsMatchUnweighted(t *testing.T) {
	x := mustMatrix(t, [][]float64{{0.3, -1.7, 2.2, 9.1}, {5, 5, 5, 6}, {-3, 0.001, 12, 4}})

	plain, err := compute.SubtractRowMean(x, nil)
	require.NoError(t, err)
	uniform, err := compute.SubtractRowMean(x, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	raw, want := uniform.Raw(), plain.Raw()
	for i := range want {
		assert.InDelta(t, want[i], raw[i], 1e-12)
	}
	assert.Equal(t, 0.3, x.At(0, 0), "input must not be modified")
}

func TestNormalizeRowStd(t *testing.T) {
	centered, err := compute.SubtractRowMean(mustMatrix(t, [][]float64{{1, 2}, {4, 3}}), nil)
	require.NoError(t, err)

	got := compute.NormalizeRowStd(centered, true)
	assert.Equal(t, [][]float64{{-1, 1}, {1, -1}}, got.Slices())

	// without the zero-mean shortcut the row mean is removed inside the root
	x := mustMatrix(t, [][]float64{{2, 4, 4, 4, 5, 5, 7, 9}})
	got = compute.NormalizeRowStd(x, false)
	assert.InDelta(t, 1.0, got.At(0, 0), 1e-12, "std of the row is 2")
	assert.InDelta(t, 4.5, got.At(0, 7), 1e-12)
}

func TestNormalizeRowStd_ZeroDeviationPropagates(t *testing.T) {
	got := compute.NormalizeRowStd(mustMatrix(t, [][]float64{{2, 2}, {0, 0}}), false)
	assert.True(t, math.IsInf(got.At(0, 0), 1), "constant row divides by zero")

	got = compute.NormalizeRowStd(mustMatrix(t, [][]float64{{0, 0}}), true)
	assert.True(t, math.IsNaN(got.At(0, 1)), "zero row yields 0/0")
}
