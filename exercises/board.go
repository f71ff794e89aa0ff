// Package exercises holds the warm-up array puzzles: board and range layouts, outlier
// zeroing and distances from matrix rows to a vector.
package exercises

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

var (
	// ErrInvalidSize is returned for negative board, grid or vector sizes.
	ErrInvalidSize = errors.New("exercises: size must not be negative")
	// ErrInvalidRange is returned when a random range [lo, hi) is empty.
	ErrInvalidRange = errors.New("exercises: empty value range")
)

func checkSize(n int) error {
	if n < 0 {
		return fmt.Errorf("size %d: %w", n, ErrInvalidSize)
	}
	return nil
}

// Checkerboard returns an n×n board with 1 where row+column is even and 0 elsewhere.
func Checkerboard(n int) ([][]int16, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	board := make([][]int16, n)
	for i := range board {
		board[i] = make([]int16, n)
		for j := range board[i] {
			if (i+j)%2 == 0 {
				board[i][j] = 1
			}
		}
	}
	return board, nil
}

// TransposedRange returns 1..n² laid out row by row in an n×n grid and then transposed, so
// the numbers run down the columns.
func TransposedRange(n int) ([][]int, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	grid := make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
		for j := range grid[i] {
			grid[i][j] = j*n + i + 1
		}
	}
	return grid, nil
}

// RandomVector draws n integers uniformly from [lo, hi).
func RandomVector(random *rand.Rand, n, lo, hi int) ([]int, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	if hi <= lo {
		return nil, fmt.Errorf("[%d, %d): %w", lo, hi, ErrInvalidRange)
	}
	vector := make([]int, n)
	for i := range vector {
		vector[i] = lo + random.IntN(hi-lo)
	}
	return vector, nil
}

// ZeroLargestMagnitude returns a copy of v with its k largest absolute values set to zero.
// Among equal magnitudes the later positions go first.
func ZeroLargestMagnitude(v []int, k int) []int {
	out := make([]int, len(v))
	copy(out, v)
	k = min(max(k, 0), len(v))

	order := make([]int, len(v))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(float64(v[order[a]])) < math.Abs(float64(v[order[b]]))
	})
	for _, i := range order[len(order)-k:] {
		out[i] = 0
	}
	return out
}
