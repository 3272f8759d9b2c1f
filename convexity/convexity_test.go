package convexity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latvex/convexity"
	"github.com/katalvlaran/latvex/lattice"
	"github.com/katalvlaran/latvex/quickhull"
)

func cube() []lattice.Point {
	var pts []lattice.Point
	for x := int64(0); x <= 1; x++ {
		for y := int64(0); y <= 1; y++ {
			for z := int64(0); z <= 1; z++ {
				pts = append(pts, lattice.Point{x, y, z})
			}
		}
	}
	return pts
}

// TestFacetRidgeVertices checks the ridge→face bijection on the cube:
// every ridge gets its own face index, covering all faces.
func TestFacetRidgeVertices(t *testing.T) {
	h := quickhull.New(quickhull.ConvexIntegralKernel)
	require.NoError(t, h.SetInput(cube(), true))
	require.NoError(t, h.Compute())

	faces := convexity.FacetRidgeVertices(h)
	require.Len(t, faces.CellVertices, 6)
	require.Len(t, faces.RidgeFace, 12)
	require.Len(t, faces.FaceVertices, 12)

	seen := make(map[int]bool)
	for _, fi := range faces.RidgeFace {
		require.False(t, seen[fi], "face index assigned to two ridges")
		seen[fi] = true
		require.Len(t, faces.FaceVertices[fi], 2, "cube ridge faces are edges")
	}
	require.Len(t, seen, 12, "every face index is the image of a ridge")
}

// TestFacetRidgeVerticesRequiresCompletion asserts the loud-failure
// contract on an unfinished run.
func TestFacetRidgeVerticesRequiresCompletion(t *testing.T) {
	h := quickhull.New(quickhull.ConvexIntegralKernel)
	require.NoError(t, h.SetInput(cube(), true))
	require.Panics(t, func() { convexity.FacetRidgeVertices(h) })
}

// TestComputeLatticePolytope verifies the feasibility invariant and the
// degenerate-input sentinel.
func TestComputeLatticePolytope(t *testing.T) {
	pts := []lattice.Point{{0, 0}, {4, 0}, {0, 4}, {1, 1}, {2, 0}}
	p := convexity.ComputeLatticePolytope(pts, true, false)
	require.False(t, p.IsEmpty())
	require.Equal(t, 2, p.Dimension())
	require.Equal(t, 3, p.NumHalfSpaces(), "triangle hull has three facets")
	for _, q := range pts {
		require.True(t, p.Inside(q), "input point %v must be feasible", q)
	}
	require.False(t, p.Inside(lattice.Point{4, 4}))

	// Interior lattice points of the triangle (0,0)-(4,0)-(0,4): by Pick,
	// area 8 = i + 12/2 - 1, so 15 lattice points in total.
	require.Equal(t, 15, p.CountLatticePoints())

	empty := convexity.ComputeLatticePolytope([]lattice.Point{{0, 0}, {2, 2}, {5, 5}}, true, false)
	require.True(t, empty.IsEmpty())
	require.Equal(t, 0, empty.CountLatticePoints())
	require.False(t, empty.Inside(lattice.Point{0, 0}))
}

// TestMinkowskiSummablePolytope checks that the axis-aligned hardening
// adds exactly 2·dimension inequalities and keeps feasibility.
func TestMinkowskiSummablePolytope(t *testing.T) {
	pts := []lattice.Point{{0, 0}, {3, 0}, {0, 3}}
	plain := convexity.ComputeLatticePolytope(pts, true, false)
	hard := convexity.ComputeLatticePolytope(pts, true, true)
	require.Equal(t, plain.NumHalfSpaces()+4, hard.NumHalfSpaces())
	for _, q := range pts {
		require.True(t, hard.Inside(q))
	}
	require.Equal(t, plain.CountLatticePoints(), hard.CountLatticePoints(),
		"bounding inequalities must not cut lattice points of the hull")
}

// TestConvexHullSurfaceCube checks the boundary mesh of the cube and its
// Euler characteristic.
func TestConvexHullSurfaceCube(t *testing.T) {
	var s convexity.PolygonalSurface
	require.True(t, convexity.ComputeConvexHullSurface(&s, cube(), true))
	require.Equal(t, 8, s.NumVertices())
	require.Equal(t, 6, s.NumFaces())
	require.Equal(t, 12, s.NumEdges())
	require.Equal(t, 2, s.EulerCharacteristic())
	for _, f := range s.Faces {
		require.Len(t, f, 4, "cube boundary faces are quads")
	}
}

// TestConvexHullBoundaryDegenerate leaves the sink untouched on flat
// input.
func TestConvexHullBoundaryDegenerate(t *testing.T) {
	var s convexity.PolygonalSurface
	flat := []lattice.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	require.False(t, convexity.ComputeConvexHullSurface(&s, flat, true))
	require.Zero(t, s.NumVertices())
	require.Zero(t, s.NumFaces())
}

// TestConvexHullCellComplex checks the one-top-cell flavor on a square.
func TestConvexHullCellComplex(t *testing.T) {
	var cc convexity.ConvexCellComplex
	pts := []lattice.Point{{0, 0}, {2, 0}, {0, 2}, {2, 2}, {1, 1}}
	require.True(t, convexity.ComputeConvexHullCellComplex(&cc, pts, true))
	require.Len(t, cc.Vertices, 4)
	require.Len(t, cc.Cells, 1)
	require.Len(t, cc.Cells[0], 4, "top cell spans every hull vertex")
	require.Len(t, cc.Faces, 4, "one face per hull edge")

	require.False(t, convexity.ComputeConvexHullCellComplex(&cc,
		[]lattice.Point{{0, 0}, {1, 1}, {2, 2}}, true))
	require.Empty(t, cc.Cells)
}

// TestDelaunayCellComplexSquare covers the cospherical case: the unit
// square yields one non-simplicial quad cell and no interior faces.
func TestDelaunayCellComplexSquare(t *testing.T) {
	var cc convexity.ConvexCellComplex
	pts := []lattice.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	require.True(t, convexity.ComputeDelaunayCellComplex(&cc, pts, true))
	require.Len(t, cc.Cells, 1)
	require.Len(t, cc.Cells[0], 4)
	require.Empty(t, cc.Faces)
	require.Len(t, cc.Vertices, 4)
	for _, v := range cc.Vertices {
		require.Equal(t, 2, v.Dim(), "lifted coordinate must be dropped")
	}
}

// TestDelaunayCellComplexTriangulation covers the generic case: an
// interior point splits a triangle into three cells sharing three faces.
func TestDelaunayCellComplexTriangulation(t *testing.T) {
	var cc convexity.ConvexCellComplex
	pts := []lattice.Point{{0, 0}, {3, 0}, {0, 3}, {1, 1}}
	require.True(t, convexity.ComputeDelaunayCellComplex(&cc, pts, true))
	require.Len(t, cc.Cells, 3)
	for _, c := range cc.Cells {
		require.Len(t, c, 3)
	}
	require.Len(t, cc.Faces, 3)
	require.Len(t, cc.Vertices, 4, "no synthetic vertex may leak into the complex")

	require.False(t, convexity.ComputeDelaunayCellComplex(&cc,
		[]lattice.Point{{0, 0}, {1, 1}, {3, 3}}, true))
	require.Empty(t, cc.Cells)
}
