package compute_test

import (
	"testing"

	"github.com/expki/go-dataminer/compute"
)

func benchmarkPipeline(b *testing.B, rows, cols int) {
	x := randomMatrix(b, rows, cols, 1)
	opts := compute.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := compute.CosineSimilarityPipeline(x, opts); err != nil {
			b.Fatalf("pipeline failed: %v", err)
		}
	}
}

func BenchmarkPipeline_100x50(b *testing.B)  { benchmarkPipeline(b, 100, 50) }
func BenchmarkPipeline_500x200(b *testing.B) { benchmarkPipeline(b, 500, 200) }

func BenchmarkMatrixMultiply_100(b *testing.B) {
	x := randomMatrix(b, 100, 100, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := compute.MatrixMultiply(x, x); err != nil {
			b.Fatal(err)
		}
	}
}
