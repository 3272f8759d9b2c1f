package convexity

import (
	"errors"

	"github.com/katalvlaran/latvex/lattice"
	"github.com/katalvlaran/latvex/quickhull"
)

// ComputeLatticePolytope builds the tightest H-representation of the
// convex hull of points: one gcd-reduced inequality per hull facet. Input
// that does not span its ambient dimension yields the empty sentinel, a
// normal outcome rather than an error.
//
// With makeMinkowskiSummable, 2·dimension axis-aligned bounding
// inequalities are appended so Minkowski sums along coordinate axes stay
// expressible in the same representation.
//
// removeDuplicates only affects how the hull engine sees repeated input
// points, never the resulting polytope.
func ComputeLatticePolytope(points []lattice.Point, removeDuplicates, makeMinkowskiSummable bool) LatticePolytope {
	h := quickhull.New(quickhull.ConvexIntegralKernel)
	if err := h.SetInput(points, removeDuplicates); err != nil {
		return EmptyPolytope()
	}
	if err := h.Compute(); err != nil {
		if errors.Is(err, quickhull.ErrNotFullDimensional) {
			return EmptyPolytope()
		}
		panic("convexity: hull computation failed: " + err.Error())
	}

	d := h.InputDimension()
	p := LatticePolytope{dim: d, nonEmpty: true}
	box, err := lattice.Bounds(points)
	if err != nil {
		return EmptyPolytope() // unreachable after a successful hull run
	}
	p.box = box

	for i := 0; i < h.NumFacets(); i++ {
		n, c, err := h.FacetHalfSpace(i)
		if err != nil {
			panic("convexity: facet coefficients exceed int64: " + err.Error())
		}
		p.halfSpaces = append(p.halfSpaces, HalfSpace{N: n, C: c})
	}
	if makeMinkowskiSummable {
		for j := 0; j < d; j++ {
			up := make(lattice.Vector, d)
			up[j] = 1
			down := make(lattice.Vector, d)
			down[j] = -1
			p.halfSpaces = append(p.halfSpaces,
				HalfSpace{N: up, C: p.box.Hi[j]},
				HalfSpace{N: down, C: -p.box.Lo[j]})
		}
	}
	return p
}
