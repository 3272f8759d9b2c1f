package convexity

import (
	"errors"

	"github.com/katalvlaran/latvex/lattice"
	"github.com/katalvlaran/latvex/quickhull"
)

// ConvexCellComplex is a cell complex over lattice vertices: top-level
// cells plus their codimension-1 faces, incidence implied by shared
// vertex indices. Two flavors share the type: the convex-hull complex
// (one maximal cell) and the Delaunay complex (one cell per finite
// Delaunay cell, non-simplicial when input points are cospherical).
type ConvexCellComplex struct {
	Vertices []lattice.Point
	Cells    []IndexRange
	Faces    []IndexRange
}

// reset clears the complex before population.
func (cc *ConvexCellComplex) reset() {
	cc.Vertices, cc.Cells, cc.Faces = nil, nil, nil
}

// ComputeConvexHullCellComplex populates cc with the convex-hull complex
// of points: one top cell spanning every hull vertex and one face per
// hull facet. Returns false, leaving cc empty, on input that does not
// span its ambient dimension.
func ComputeConvexHullCellComplex(cc *ConvexCellComplex, points []lattice.Point, removeDuplicates bool) bool {
	cc.reset()
	h := quickhull.New(quickhull.ConvexIntegralKernel)
	if err := h.SetInput(points, removeDuplicates); err != nil {
		return false
	}
	if err := h.Compute(); err != nil {
		if errors.Is(err, quickhull.ErrNotFullDimensional) {
			return false
		}
		panic("convexity: hull computation failed: " + err.Error())
	}

	cc.Vertices = h.VertexPositions()
	top := make(IndexRange, len(cc.Vertices))
	for i := range top {
		top[i] = i
	}
	cc.Cells = []IndexRange{top}
	cc.Faces = FacetRidgeVertices(h).CellVertices
	return true
}

// ComputeDelaunayCellComplex populates cc with the Delaunay complex of
// points: every point is lifted by its sum of squares, the lower hull of
// the lift is taken, and each lower facet projects back to one top cell.
// Faces are the ridges shared by two finite cells. Returns false, leaving
// cc empty, when the lifted input does not span the lifted dimension
// (e.g. collinear 2D input).
func ComputeDelaunayCellComplex(cc *ConvexCellComplex, points []lattice.Point, removeDuplicates bool) bool {
	cc.reset()
	h := quickhull.New(quickhull.DelaunayIntegralKernel)
	if err := h.SetInput(points, removeDuplicates); err != nil {
		return false
	}
	if err := h.Compute(); err != nil {
		if errors.Is(err, quickhull.ErrNotFullDimensional) {
			return false
		}
		panic("convexity: hull computation failed: " + err.Error())
	}

	finite := make(map[int]bool)
	for i := 0; i < h.NumFacets(); i++ {
		if !h.FacetIsInfinite(i) {
			finite[i] = true
		}
	}

	// Keep only vertices used by finite cells; the lifted hull also has
	// upper-hull vertices (including the synthetic processing point the
	// engine may add) that are not part of the Delaunay complex.
	faces := FacetRidgeVertices(h)
	remap := make(map[int]int)
	dim := h.InputDimension()
	takeVertex := func(v int) int {
		id, ok := remap[v]
		if !ok {
			id = len(cc.Vertices)
			remap[v] = id
			cc.Vertices = append(cc.Vertices, h.VertexPosition(v)[:dim].Clone())
		}
		return id
	}

	for i := 0; i < h.NumFacets(); i++ {
		if !finite[i] {
			continue
		}
		cell := make(IndexRange, len(faces.CellVertices[i]))
		for j, v := range faces.CellVertices[i] {
			cell[j] = takeVertex(v)
		}
		cc.Cells = append(cc.Cells, cell)
	}
	for _, r := range h.Ridges() {
		if !finite[r.A] || !finite[r.B] {
			continue
		}
		shared := faces.FaceVertices[faces.RidgeFace[r]]
		face := make(IndexRange, len(shared))
		for j, v := range shared {
			face[j] = takeVertex(v)
		}
		cc.Faces = append(cc.Faces, face)
	}
	return len(cc.Cells) > 0
}
