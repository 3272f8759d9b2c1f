package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latvex/convexity"
	"github.com/katalvlaran/latvex/lattice"
	"github.com/katalvlaran/latvex/render"
)

func TestDelaunayChart(t *testing.T) {
	var cc convexity.ConvexCellComplex
	pts := []lattice.Point{{0, 0}, {3, 0}, {0, 3}, {1, 1}}
	require.True(t, convexity.ComputeDelaunayCellComplex(&cc, pts, true))

	chart, err := render.DelaunayChart(&cc, "triangulation")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, chart.Render(&buf))
	require.Contains(t, buf.String(), "triangulation")
}

func TestBoundaryChart(t *testing.T) {
	var s convexity.PolygonalSurface
	pts := []lattice.Point{{0, 0}, {4, 0}, {4, 3}, {0, 3}, {2, 1}}
	require.True(t, convexity.ComputeConvexHullSurface(&s, pts, true))

	chart, err := render.BoundaryChart(&s, "hull boundary")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, chart.Render(&buf))
	require.NotZero(t, buf.Len())
}

func TestNotPlanar(t *testing.T) {
	var cc convexity.ConvexCellComplex
	cube := []lattice.Point{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
	require.True(t, convexity.ComputeConvexHullCellComplex(&cc, cube, true))
	_, err := render.DelaunayChart(&cc, "cube")
	require.ErrorIs(t, err, render.ErrNotPlanar)
}
