package compute_test

import (
	"testing"

	"github.com/expki/go-dataminer/compute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepTopNPerRow(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		topN int
		want [][]float64
	}{
		{
			name: "keeps largest by value",
			rows: [][]float64{{0.5, -2, 3, 1}},
			topN: 2,
			want: [][]float64{{0, 0, 3, 1}},
		},
		{
			name: "ranks raw values not magnitude",
			rows: [][]float64{{-5, -1, -3}},
			topN: 1,
			want: [][]float64{{0, -1, 0}},
		},
		{
			name: "ties at the threshold survive",
			rows: [][]float64{{3, 1, 3, 2}},
			topN: 1,
			want: [][]float64{{3, 0, 3, 0}},
		},
		{
			name: "zero keeps the row",
			rows: [][]float64{{4, -1, 2}},
			topN: 0,
			want: [][]float64{{4, -1, 2}},
		},
		{
			name: "rows are independent",
			rows: [][]float64{{1, 2, 3}, {9, 8, 7}},
			topN: 1,
			want: [][]float64{{0, 0, 3}, {9, 0, 0}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := compute.KeepTopNPerRow(mustMatrix(t, tc.rows), tc.topN)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Slices())
		})
	}
}

func TestKeepTopNPerRow_WideTopNUnchanged(t *testing.T) {
	square := mustMatrix(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	for _, topN := range []int{3, 4, 100} {
		got, err := compute.KeepTopNPerRow(square, topN)
		require.NoError(t, err)
		assert.Equal(t, square.Slices(), got.Slices())
	}

	x := mustMatrix(t, [][]float64{{-1, 5, 2}, {7, -7, 0.25}})
	got, err := compute.KeepTopNPerRow(x, 3)
	require.NoError(t, err)
	assert.Equal(t, x.Slices(), got.Slices())
}

func TestKeepExactTopNPerRow(t *testing.T) {
	x := mustMatrix(t, [][]float64{{3, 1, 3, 2}, {1, 1, 1, 1}})

	got, err := compute.KeepExactTopNPerRow(x, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 0, 0, 0}, {1, 0, 0, 0}}, got.Slices(), "lower column wins ties")

	got, err = compute.KeepExactTopNPerRow(x, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 0, 3, 2}, {1, 1, 1, 0}}, got.Slices())

	got, err = compute.KeepExactTopNPerRow(x, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}}, got.Slices())
}

func TestKeepTopN_Negative(t *testing.T) {
	x := mustMatrix(t, [][]float64{{1}})
	_, err := compute.KeepTopNPerRow(x, -1)
	assert.ErrorIs(t, err, compute.ErrInvalidTopN)
	_, err = compute.KeepExactTopNPerRow(x, -1)
	assert.ErrorIs(t, err, compute.ErrInvalidTopN)
}
