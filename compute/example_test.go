package compute_test

import (
	"fmt"

	"github.com/expki/go-dataminer/compute"
)

// ExampleCosineSimilarityPipeline centres and scales two rows, keeps the single largest value
// of each and compares them.
func ExampleCosineSimilarityPipeline() {
	x, err := compute.NewMatrix([][]float64{{1, 2}, {4, 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	S, err := compute.CosineSimilarityPipeline(x, compute.Options{TopN: 1, WithMean: true, WithStd: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(S.Slices())
	// Output:
	// [[1 0] [0 1]]
}

func ExampleRowMean() {
	x, _ := compute.NewMatrix([][]float64{{1, 2, 3}})
	plain, _ := compute.RowMean(x, nil)
	weighted, _ := compute.RowMean(x, []float64{0, 1, 2})
	fmt.Printf("%.4f %.4f\n", plain[0], weighted[0])
	// Output:
	// 2.0000 2.6667
}
