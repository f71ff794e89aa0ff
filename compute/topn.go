package compute

import (
	"fmt"
	"slices"
	"sort"
)

// KeepTopNPerRow returns a copy of x where, in every row, entries strictly below the
// topN-th largest value are set to zero.
//
// Ranking is by raw value, not magnitude. Every entry equal to the threshold survives, so a
// row may keep more than topN non-zero entries when the threshold value is repeated.
// When topN >= M the row is left unchanged. topN == 0 selects the row minimum as the
// threshold and also leaves the row unchanged.
func KeepTopNPerRow(x Matrix, topN int) (Matrix, error) {
	if topN < 0 {
		return Matrix{}, fmt.Errorf("top-n %d: %w", topN, ErrInvalidTopN)
	}
	out := x.Clone()
	keepTopNPerRow(out, topN)
	return out, nil
}

// KeepExactTopNPerRow returns a copy of x keeping exactly min(topN, M) entries per row: the
// largest values, with ties broken in favour of the lower column index. All other entries
// are set to zero.
func KeepExactTopNPerRow(x Matrix, topN int) (Matrix, error) {
	if topN < 0 {
		return Matrix{}, fmt.Errorf("top-n %d: %w", topN, ErrInvalidTopN)
	}
	out := x.Clone()
	keepExactTopNPerRow(out, topN)
	return out, nil
}

func keepTopNPerRow(x Matrix, topN int) {
	if topN >= x.cols {
		return
	}
	sorted := make([]float64, x.cols)
	for i := 0; i < x.rows; i++ {
		row := x.Row(i)
		copy(sorted, row)
		slices.Sort(sorted)
		// topN == 0 maps to index 0, the row minimum.
		threshold := sorted[(x.cols-topN)%x.cols]
		for j, v := range row {
			if v < threshold {
				row[j] = 0
			}
		}
	}
}

func keepExactTopNPerRow(x Matrix, topN int) {
	if topN >= x.cols {
		return
	}
	order := make([]int, x.cols)
	for i := 0; i < x.rows; i++ {
		row := x.Row(i)
		for j := range order {
			order[j] = j
		}
		sort.SliceStable(order, func(a, b int) bool {
			return row[order[a]] > row[order[b]]
		})
		for _, j := range order[topN:] {
			row[j] = 0
		}
	}
}
