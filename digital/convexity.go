package digital

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/latvex/convexity"
	"github.com/katalvlaran/latvex/lattice"
)

var (
	// ErrUnsupportedDimension is returned for domains outside 2D/3D.
	ErrUnsupportedDimension = errors.New("digital: only dimensions 2 and 3 are supported")
)

// Convexity is the digital-convexity oracle over a fixed bounding domain.
// Both predicates are pure functions of their input; the oracle holds no
// mutable state and is safe to share across sequential computations.
type Convexity struct {
	dom lattice.Domain
	dim int
}

// NewConvexity returns an oracle for the domain [lo, hi]. Returns lattice
// validation sentinels on a malformed domain and ErrUnsupportedDimension
// outside 2D/3D.
func NewConvexity(lo, hi lattice.Point) (*Convexity, error) {
	dom, err := lattice.NewDomain(lo, hi)
	if err != nil {
		return nil, err
	}
	if dom.Dim() > 3 {
		return nil, ErrUnsupportedDimension
	}
	return &Convexity{dom: dom, dim: dom.Dim()}, nil
}

// Domain returns the oracle's bounding domain.
func (c *Convexity) Domain() lattice.Domain { return c.dom }

// checkInput panics when a point falls outside the oracle's domain.
// Feeding out-of-domain points is a programming error in the caller's
// window bookkeeping, not a recoverable condition.
func (c *Convexity) checkInput(pts []lattice.Point) {
	for _, p := range pts {
		if !c.dom.Contains(p) {
			panic(fmt.Sprintf("digital: point %v outside oracle domain", p))
		}
	}
}

// Is0Convex reports whether X is digitally 0-convex: X contains every
// lattice point of its own convex hull. Empty and singleton sets are
// 0-convex. Duplicates in pts are ignored.
func (c *Convexity) Is0Convex(pts []lattice.Point) bool {
	c.checkInput(pts)
	pts = lattice.Dedup(pts)
	if len(pts) <= 1 {
		return true
	}
	switch rank := affineRank(pts); {
	case rank == 1:
		return segmentIs0Convex(pts)
	case rank == c.dim:
		return hullCountEquals(pts)
	default: // rank 2 inside 3D: reduce onto the plane lattice
		return hullCountEquals(projectToPlane(pts))
	}
}

// IsFullyConvex reports whether X is fully convex, via the Minkowski-sum
// characterization: X ⊕ U(α) must be 0-convex for every axis subset α
// (α = ∅ is X itself). Duplicates in pts are ignored.
func (c *Convexity) IsFullyConvex(pts []lattice.Point) bool {
	c.checkInput(pts)
	pts = lattice.Dedup(pts)
	if len(pts) <= 1 {
		return true
	}
	for mask := 0; mask < 1<<c.dim; mask++ {
		if !c.axisSumIs0Convex(pts, mask) {
			return false
		}
	}
	return true
}

// axisSumIs0Convex tests 0-convexity of X ⊕ U(mask), where U(mask) is the
// vertex set of the unit cube spanned by the axes selected by mask. The
// sum leaves the oracle's domain by at most one step per axis, so it is
// tested without the domain guard.
func (c *Convexity) axisSumIs0Convex(pts []lattice.Point, mask int) bool {
	axes := make([]int, 0, c.dim)
	for j := 0; j < c.dim; j++ {
		if mask&(1<<j) != 0 {
			axes = append(axes, j)
		}
	}
	sum := make([]lattice.Point, 0, len(pts)<<len(axes))
	for _, p := range pts {
		for sub := 0; sub < 1<<len(axes); sub++ {
			q := p.Clone()
			for k, j := range axes {
				if sub&(1<<k) != 0 {
					q[j]++
				}
			}
			sum = append(sum, q)
		}
	}
	sum = lattice.Dedup(sum)
	if len(sum) <= 1 {
		return true
	}
	switch rank := affineRank(sum); {
	case rank == 1:
		return segmentIs0Convex(sum)
	case rank == c.dim:
		return hullCountEquals(sum)
	default:
		return hullCountEquals(projectToPlane(sum))
	}
}

// hullCountEquals reports whether the convex hull of the full-dimensional
// set pts contains exactly len(pts) lattice points.
func hullCountEquals(pts []lattice.Point) bool {
	p := convexity.ComputeLatticePolytope(pts, false, false)
	if p.IsEmpty() {
		panic("digital: full-rank set produced a degenerate hull")
	}
	return p.CountLatticePoints() == len(pts)
}

// affineRank returns the rank of the difference vectors of pts. Products
// stay within int64 for the window-sized coordinates this oracle serves.
func affineRank(pts []lattice.Point) int {
	base := pts[0]
	d := base.Dim()
	var u, v lattice.Vector
	for _, p := range pts[1:] {
		w := p.Sub(base)
		if w.IsZero() {
			continue
		}
		if u == nil {
			u = w
			continue
		}
		if parallel(u, w) {
			continue
		}
		if d == 2 {
			return 2
		}
		if v == nil {
			v = w
			continue
		}
		if tripleProduct(u, v, w) != 0 {
			return 3
		}
	}
	switch {
	case u == nil:
		return 0
	case v == nil:
		return 1
	default:
		return 2
	}
}

// parallel reports whether all 2x2 minors of (u, w) vanish.
func parallel(u, w lattice.Vector) bool {
	for i := 0; i < len(u); i++ {
		for j := i + 1; j < len(u); j++ {
			if u[i]*w[j] != u[j]*w[i] {
				return false
			}
		}
	}
	return true
}

// tripleProduct returns det(u, v, w) for 3D vectors.
func tripleProduct(u, v, w lattice.Vector) int64 {
	return u[0]*(v[1]*w[2]-v[2]*w[1]) -
		u[1]*(v[0]*w[2]-v[2]*w[0]) +
		u[2]*(v[0]*w[1]-v[1]*w[0])
}

// segmentIs0Convex decides 0-convexity of a rank-1 set: the points must
// be consecutive multiples of the primitive direction vector.
func segmentIs0Convex(pts []lattice.Point) bool {
	base := pts[0]
	var dir lattice.Vector
	for _, p := range pts[1:] {
		if w := p.Sub(base); !w.IsZero() {
			dir = primitive(w)
			break
		}
	}
	axis := 0
	for j, c := range dir {
		if c != 0 {
			axis = j
			break
		}
	}
	lo, hi := int64(0), int64(0)
	for _, p := range pts {
		t := (p[axis] - base[axis]) / dir[axis]
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}
	// pts is deduplicated, so contiguity is a pure counting argument.
	return hi-lo+1 == int64(len(pts))
}

// primitive divides v by the gcd of its coordinates.
func primitive(v lattice.Vector) lattice.Vector {
	g := int64(0)
	for _, c := range v {
		g = gcd(g, abs(c))
	}
	out := v.Clone()
	for i := range out {
		out[i] /= g
	}
	return out
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// egcd returns (g, x, y) with a·x + b·y = g = gcd(a, b), g >= 0.
func egcd(a, b int64) (int64, int64, int64) {
	if b == 0 {
		if a < 0 {
			return -a, -1, 0
		}
		return a, 1, 0
	}
	g, x, y := egcd(b, a%b)
	return g, y, x - (a/b)*y
}

// projectToPlane maps a rank-2 set in 3D onto integer coordinates of its
// plane lattice through a unimodular basis (u, v) with u × v equal to the
// primitive plane normal, so the mapping is a lattice bijection and
// 0-convexity is preserved exactly.
func projectToPlane(pts []lattice.Point) []lattice.Point {
	base := pts[0]
	var u lattice.Vector
	var n lattice.Vector
	for _, p := range pts[1:] {
		w := p.Sub(base)
		if w.IsZero() {
			continue
		}
		if u == nil {
			u = w
			continue
		}
		cr := cross(u, w)
		if !cr.IsZero() {
			n = primitive(cr)
			break
		}
	}

	var bu, bv lattice.Vector
	g, alpha, beta := egcd(n[0], n[1])
	if g == 0 {
		// Normal is (0, 0, ±1): the plane lattice is the xy-grid.
		bu = lattice.Vector{1, 0, 0}
		bv = lattice.Vector{0, 1, 0}
	} else {
		bu = lattice.Vector{-n[1] / g, n[0] / g, 0}
		bv = lattice.Vector{-alpha * n[2], -beta * n[2], g}
	}

	// Plane coordinates of w = a·bu + b·bv follow from bu × bv = n:
	// a = (w × bv)·n / (n·n), b = (bu × w)·n / (n·n). Both divide exactly.
	nn := n.Dot(n)
	out := make([]lattice.Point, len(pts))
	for i, p := range pts {
		w := p.Sub(base)
		a := cross(w, bv).Dot(n) / nn
		b := cross(bu, w).Dot(n) / nn
		out[i] = lattice.Point{a, b}
	}
	return out
}

// cross returns the 3D cross product u × v.
func cross(u, v lattice.Vector) lattice.Vector {
	return lattice.Vector{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}
