package convexity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/latvex/lattice"
	"github.com/katalvlaran/latvex/quickhull"
)

// MeshSink receives a hull boundary. Implementations take ownership of
// both slices.
type MeshSink interface {
	InitFromFaces(positions []lattice.RealPoint, faces []IndexRange)
}

// PolygonalSurface is the built-in MeshSink: vertex positions plus
// ordered face-vertex lists, with edges implied by consecutive face
// vertices.
type PolygonalSurface struct {
	Positions []lattice.RealPoint
	Faces     []IndexRange
}

// InitFromFaces replaces the surface contents.
func (s *PolygonalSurface) InitFromFaces(positions []lattice.RealPoint, faces []IndexRange) {
	s.Positions = positions
	s.Faces = faces
}

// NumVertices returns the number of vertex positions.
func (s *PolygonalSurface) NumVertices() int { return len(s.Positions) }

// NumFaces returns the number of faces.
func (s *PolygonalSurface) NumFaces() int { return len(s.Faces) }

// NumEdges counts the distinct undirected edges of all face cycles.
func (s *PolygonalSurface) NumEdges() int {
	edges := make(map[[2]int]struct{})
	for _, f := range s.Faces {
		for i := range f {
			a, b := f[i], f[(i+1)%len(f)]
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}] = struct{}{}
		}
	}
	return len(edges)
}

// EulerCharacteristic returns V - E + F with edges derived from the face
// cycles. Meaningful for surfaces embedded in 3D; the boundary of a
// convex body there is sphere-like, so the expected value is 2.
func (s *PolygonalSurface) EulerCharacteristic() int {
	return s.NumVertices() - s.NumEdges() + s.NumFaces()
}

// ComputeConvexHullBoundary runs the integral convex hull of points and
// initializes sink with its boundary: real-cast vertex positions and one
// face per hull facet, in the engine's facet vertex order. Returns false,
// leaving the sink untouched, when the input does not span its ambient
// dimension.
//
// On success the boundary's Euler characteristic is verified for
// dimensions 2 and 3 (0 for even ambient dimension, 2 for odd); a
// mismatch means a broken hull invariant and panics.
func ComputeConvexHullBoundary(sink MeshSink, points []lattice.Point, removeDuplicates bool) bool {
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

	faces := FacetRidgeVertices(h).CellVertices
	positions := h.RealVertexPositions()
	verifyEuler(h.InputDimension(), len(positions), len(h.Ridges()), len(faces))
	sink.InitFromFaces(positions, faces)
	return true
}

// ComputeConvexHullSurface is ComputeConvexHullBoundary specialized to
// the built-in surface type.
func ComputeConvexHullSurface(surface *PolygonalSurface, points []lattice.Point, removeDuplicates bool) bool {
	return ComputeConvexHullBoundary(surface, points, removeDuplicates)
}

// verifyEuler checks the sphere-like boundary postcondition in dimensions
// 2 and 3. The hull's ridges are exactly the boundary's codimension-2
// cells: the shared vertices of adjacent edges in 2D, the edges in 3D.
// Higher dimensions are not checked.
func verifyEuler(dim, vertices, ridges, facets int) {
	var chi, want int
	switch dim {
	case 2:
		// Boundary is a closed polygon: cells are vertices and edges.
		chi, want = vertices-facets, 0
	case 3:
		chi, want = vertices-ridges+facets, 2
	default:
		return
	}
	if chi != want {
		panic(fmt.Sprintf("convexity: hull boundary has Euler characteristic %d, want %d", chi, want))
	}
}
