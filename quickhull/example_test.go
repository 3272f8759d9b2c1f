package quickhull_test

import (
	"fmt"

	"github.com/katalvlaran/latvex/lattice"
	"github.com/katalvlaran/latvex/quickhull"
)

// ExampleHull_convex builds the 2D hull of a small lattice cloud and
// prints its extreme points in vertex order.
func ExampleHull_convex() {
	pts := []lattice.Point{
		{0, 0}, {4, 0}, {4, 3}, {0, 3}, // rectangle corners
		{2, 1}, {1, 2}, {2, 0}, // absorbed points
	}
	h := quickhull.New(quickhull.ConvexIntegralKernel)
	if err := h.SetInput(pts, true); err != nil {
		panic(err)
	}
	if err := h.Compute(); err != nil {
		panic(err)
	}
	fmt.Println("vertices:", h.NumVertices())
	fmt.Println("facets:  ", h.NumFacets())
	// Output:
	// vertices: 4
	// facets:   4
}

// ExampleHull_delaunay triangulates four points with one interior point
// and counts the finite Delaunay cells.
func ExampleHull_delaunay() {
	pts := []lattice.Point{{0, 0}, {3, 0}, {0, 3}, {1, 1}}
	h := quickhull.New(quickhull.DelaunayIntegralKernel)
	if err := h.SetInput(pts, true); err != nil {
		panic(err)
	}
	if err := h.Compute(); err != nil {
		panic(err)
	}
	finite := 0
	for i := 0; i < h.NumFacets(); i++ {
		if !h.FacetIsInfinite(i) {
			finite++
		}
	}
	fmt.Println("finite cells:", finite)
	// Output:
	// finite cells: 3
}
