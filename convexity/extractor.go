package convexity

import (
	"fmt"

	"github.com/katalvlaran/latvex/quickhull"
)

// HullFaces is the face-oriented view of a completed hull run: the hull's
// cell-pair adjacency translated into indexed codimension-1 faces.
type HullFaces struct {
	// CellVertices holds, per hull cell, its vertex indices in the order
	// the engine reports them. That order carries the orientation used by
	// the boundary and complex builders.
	CellVertices []IndexRange
	// RidgeFace maps each ridge to its face index. Face indices are
	// assigned in first-encounter order over the engine's ridge
	// enumeration.
	RidgeFace map[quickhull.Ridge]int
	// FaceVertices holds, per face index, the vertex set shared by the
	// ridge's two cells, ascending.
	FaceVertices []IndexRange
}

// FacetRidgeVertices extracts the face-oriented view of h. Panics (inside
// quickhull) when the run has not reached full completion: reading
// adjacency early is a programming error.
func FacetRidgeVertices(h *quickhull.Hull) HullFaces {
	out := HullFaces{
		CellVertices: make([]IndexRange, h.NumFacets()),
		RidgeFace:    make(map[quickhull.Ridge]int),
	}
	for i := range out.CellVertices {
		out.CellVertices[i] = h.FacetVertices(i)
	}
	for _, r := range h.Ridges() {
		if _, dup := out.RidgeFace[r]; dup {
			panic(fmt.Sprintf("convexity: ridge %v enumerated twice by the hull engine", r))
		}
		out.RidgeFace[r] = len(out.FaceVertices)
		out.FaceVertices = append(out.FaceVertices, h.RidgeVertices(r))
	}
	return out
}
