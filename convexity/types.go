package convexity

import (
	"github.com/katalvlaran/latvex/lattice"
)

// IndexRange is an ordered list of vertex indices. Order is significant:
// for faces it defines the cyclic vertex ordering.
type IndexRange []int

// HalfSpace is one integer inequality N·x <= C.
type HalfSpace struct {
	N lattice.Vector
	C int64
}

// Holds reports whether p satisfies the inequality.
func (hs HalfSpace) Holds(p lattice.Point) bool {
	return hs.N.Dot(p) <= hs.C
}

// LatticePolytope is an H-representation of a bounded lattice polytope:
// the intersection of integer half-spaces, together with the bounding box
// of the points it was built from. The zero value is the empty polytope.
type LatticePolytope struct {
	halfSpaces []HalfSpace
	box        lattice.Domain
	dim        int
	nonEmpty   bool
}

// EmptyPolytope returns the empty-polytope sentinel used for degenerate
// input.
func EmptyPolytope() LatticePolytope { return LatticePolytope{} }

// IsEmpty reports whether this is the empty sentinel.
func (p LatticePolytope) IsEmpty() bool { return !p.nonEmpty }

// Dimension returns the ambient dimension, 0 for the empty polytope.
func (p LatticePolytope) Dimension() int { return p.dim }

// NumHalfSpaces returns the number of inequalities.
func (p LatticePolytope) NumHalfSpaces() int { return len(p.halfSpaces) }

// HalfSpaces returns a copy of the inequality list.
func (p LatticePolytope) HalfSpaces() []HalfSpace {
	return append([]HalfSpace(nil), p.halfSpaces...)
}

// Bounds returns the bounding box of the generating points.
func (p LatticePolytope) Bounds() lattice.Domain { return p.box }

// Inside reports whether q satisfies every inequality. The empty polytope
// contains nothing.
func (p LatticePolytope) Inside(q lattice.Point) bool {
	if p.IsEmpty() {
		return false
	}
	for _, hs := range p.halfSpaces {
		if !hs.Holds(q) {
			return false
		}
	}
	return true
}

// CountLatticePoints counts the lattice points inside the polytope by
// scanning its bounding box. Intended for the small windows of digital
// convexity tests, not for large polytopes.
func (p LatticePolytope) CountLatticePoints() int {
	if p.IsEmpty() {
		return 0
	}
	n := 0
	p.box.ForEach(func(q lattice.Point) {
		if p.Inside(q) {
			n++
		}
	})
	return n
}
