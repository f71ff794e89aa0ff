package compute

import (
	"fmt"
	"math"
)

// RowMean returns the mean of every row of x.
//
// With weights the mean is Σ x[i,j]·w[j] / Σ w[j]; the weights need not be normalised.
// An empty or all-zero weight vector means uniform weights. A non-empty weight vector
// whose length differs from the column count fails with ErrShapeMismatch.
//
// For [[1, 2, 3]] and weights [0, 1, 2] the weighted mean is 2.6667 while the plain mean is 2.
func RowMean(x Matrix, weights []float64) ([]float64, error) {
	if len(weights) != 0 && len(weights) != x.cols {
		return nil, fmt.Errorf("weights of length %d for %d columns: %w", len(weights), x.cols, ErrShapeMismatch)
	}
	if !anyNonZero(weights) {
		weights = nil
	}

	var total float64
	if weights == nil {
		total = float64(x.cols)
	} else {
		for _, w := range weights {
			total += w
		}
	}

	means := make([]float64, x.rows)
	for i := 0; i < x.rows; i++ {
		row := x.Row(i)
		var sum float64
		if weights == nil {
			for _, v := range row {
				sum += v
			}
		} else {
			for j, v := range row {
				sum += v * weights[j]
			}
		}
		means[i] = sum / total
	}
	return means, nil
}

// SubtractRowMean returns a copy of x with every row centred on its (optionally weighted) mean.
func SubtractRowMean(x Matrix, weights []float64) (Matrix, error) {
	out := x.Clone()
	if err := subtractRowMean(out, weights); err != nil {
		return Matrix{}, err
	}
	return out, nil
}

// NormalizeRowStd returns a copy of x with every row divided by its standard deviation.
//
// When zeroMean is set the rows are taken as already centred and the deviation is the root
// mean square sqrt(Σx²/M). Otherwise it is sqrt(E[x²] - E[x]²). A row whose deviation is zero
// is divided by zero and yields NaN or ±Inf entries; no guard is applied.
func NormalizeRowStd(x Matrix, zeroMean bool) Matrix {
	out := x.Clone()
	normalizeRowStd(out, zeroMean)
	return out
}

func subtractRowMean(x Matrix, weights []float64) error {
	means, err := RowMean(x, weights)
	if err != nil {
		return err
	}
	for i, mean := range means {
		row := x.Row(i)
		for j := range row {
			row[j] -= mean
		}
	}
	return nil
}

func normalizeRowStd(x Matrix, zeroMean bool) {
	n := float64(x.cols)
	for i := 0; i < x.rows; i++ {
		row := x.Row(i)
		var squares, sum float64
		for _, v := range row {
			squares += v * v
			sum += v
		}
		var std float64
		if zeroMean {
			std = math.Sqrt(squares / n)
		} else {
			mean := sum / n
			std = math.Sqrt(squares/n - mean*mean)
		}
		for j := range row {
			row[j] /= std
		}
	}
}

func anyNonZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return true
		}
	}
	return false
}
