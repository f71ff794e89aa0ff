package compute

// Options toggles the stages of CosineSimilarityPipeline.
type Options struct {
	// TopN is the number of largest values kept per row before comparison.
	TopN int
	// WithMean subtracts each row's mean.
	WithMean bool
	// WithStd divides each row by its standard deviation. When WithMean is also set the rows
	// are treated as centred.
	WithStd bool
	// ExactTopN keeps exactly TopN entries per row instead of keeping every tie at the threshold.
	ExactTopN bool
}

// DefaultOptions returns TopN 10 with mean and std normalisation enabled.
func DefaultOptions() Options {
	return Options{
		TopN:     10,
		WithMean: true,
		WithStd:  true,
	}
}

// Transform applies the row stages of the pipeline (mean, std, top-N) to a copy of x and
// returns the transformed matrix.
func Transform(x Matrix, opts Options) (Matrix, error) {
	if opts.TopN < 0 {
		return Matrix{}, ErrInvalidTopN
	}
	if x.rows == 0 || x.cols == 0 {
		return Matrix{}, ErrEmptyMatrix
	}
	X := x.Clone()
	if opts.WithMean {
		if err := subtractRowMean(X, nil); err != nil {
			return Matrix{}, err
		}
	}
	if opts.WithStd {
		normalizeRowStd(X, opts.WithMean)
	}
	if opts.ExactTopN {
		keepExactTopNPerRow(X, opts.TopN)
	} else {
		keepTopNPerRow(X, opts.TopN)
	}
	return X, nil
}

// CosineSimilarityPipeline calculates the cosine similarity between each pair of rows of x:
//  1. with WithMean, subtract each row's mean;
//  2. with WithStd, divide each row by its std;
//  3. keep the TopN largest values of each row and zero the rest;
//  4. compute the pairwise cosine similarity of the rows.
//
// The result is N×N, exactly symmetric, with 1.0 on the diagonal. x is not modified.
//
// For x = [[1, 2], [4, 3]] with TopN 1 the rows become [[-1, 1], [1, -1]] after steps 1-2,
// [[0, 1], [1, 0]] after step 3, and the similarity is the 2×2 identity.
func CosineSimilarityPipeline(x Matrix, opts Options) (Matrix, error) {
	X, err := Transform(x, opts)
	if err != nil {
		return Matrix{}, err
	}
	return CosineSimilarity(X), nil
}
