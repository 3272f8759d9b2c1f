package quickhull_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/latvex/lattice"
	"github.com/katalvlaran/latvex/quickhull"
)

// randomCloud returns n pseudo-random lattice points in [0,span)^d with a
// fixed seed, so successive benchmark runs see the same input.
func randomCloud(n, d int, span int64) []lattice.Point {
	rng := rand.New(rand.NewSource(42))
	pts := make([]lattice.Point, n)
	for i := range pts {
		p := make(lattice.Point, d)
		for j := range p {
			p[j] = rng.Int63n(span)
		}
		pts[i] = p
	}
	return pts
}

func benchmarkHull(b *testing.B, kernel quickhull.Kernel, n, d int) {
	pts := randomCloud(n, d, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := quickhull.New(kernel)
		if err := h.SetInput(pts, true); err != nil {
			b.Fatal(err)
		}
		if err := h.Compute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvex2D_1000(b *testing.B) {
	benchmarkHull(b, quickhull.ConvexIntegralKernel, 1000, 2)
}

func BenchmarkConvex3D_1000(b *testing.B) {
	benchmarkHull(b, quickhull.ConvexIntegralKernel, 1000, 3)
}

func BenchmarkDelaunay2D_200(b *testing.B) {
	benchmarkHull(b, quickhull.DelaunayIntegralKernel, 200, 2)
}
