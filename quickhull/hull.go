package quickhull

import (
	"fmt"
	"math"
	"math/big"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/latvex/lattice"
)

// simplexFacet is a simplicial facet of the working hull. verts holds d
// processing-point indices; nbrs[i] is the facet across the ridge opposite
// verts[i]. normal is the exact outward normal, offset its support value:
// normal·x <= offset for every hull point, with equality on the facet.
type simplexFacet struct {
	verts  []int
	nbrs   []int
	normal []*big.Int
	offset *big.Int
	dead   bool
}

// side returns the sign of normal·p - offset: positive when p is beyond
// the facet, zero when p lies on its hyperplane.
func (f *simplexFacet) side(p lattice.Point) int {
	s := bigDot(f.normal, p)
	return s.Sub(s, f.offset).Sign()
}

// hullFacet is a final, possibly non-simplicial facet after coplanar
// merging. verts holds hull-vertex indices, cyclically ordered and
// outward-oriented in 3D processing space, tangent-oriented in 2D, sorted
// ascending in higher dimensions.
type hullFacet struct {
	verts    []int
	nbrs     []int
	normal   []*big.Int
	offset   *big.Int
	infinite bool
}

// Hull is one staged convex hull computation. Zero value is not usable;
// construct with New. A Hull is owned by a single computation and is not
// safe for concurrent use.
type Hull struct {
	kernel Kernel
	opts   Options
	log    *zap.Logger

	status   Status
	inputDim int
	dim      int // processing dimension (inputDim+1 for Delaunay kernels)
	pts      []lattice.Point

	// interior reference: icSum is the coordinate sum of the initial
	// simplex corners, icScale its cardinality; the true interior point is
	// icSum/icScale and is never materialized.
	icSum   []*big.Int
	icScale *big.Int

	sfacets []*simplexFacet

	facets   []*hullFacet
	vertexPt []int // hull vertex index -> processing point index
	ridges   []Ridge
}

// New returns a Hull for the given kernel.
func New(kernel Kernel, opts ...Option) *Hull {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Hull{
		kernel: kernel,
		opts:   o,
		log:    o.Logger,
		status: StatusNotStarted,
	}
}

// Kernel returns the kernel this hull was constructed with.
func (h *Hull) Kernel() Kernel { return h.kernel }

// Status returns the current completion status.
func (h *Hull) Status() Status { return h.status }

// InputDimension returns the dimension of the input points.
// Requires StatusInputInitialized.
func (h *Hull) InputDimension() int {
	h.require(StatusInputInitialized, "InputDimension")
	return h.inputDim
}

// Dimension returns the processing dimension: the input dimension, plus one
// for Delaunay kernels. Requires StatusInputInitialized.
func (h *Hull) Dimension() int {
	h.require(StatusInputInitialized, "Dimension")
	return h.dim
}

// NumPoints returns the number of processing points after duplicate
// removal. Requires StatusInputInitialized.
func (h *Hull) NumPoints() int {
	h.require(StatusInputInitialized, "NumPoints")
	return len(h.pts)
}

// SetInput accepts lattice input for the integral kernels. Points are
// cloned; duplicates are collapsed when removeDuplicates is set, otherwise
// they are left for the insertion loop to absorb as degenerate.
// Returns ErrKernelMismatch on rational kernels, ErrNoInput on an empty
// range, lattice dimension sentinels on malformed points, and
// ErrCoordinateOverflow when a paraboloid lift would not be exact.
func (h *Hull) SetInput(points []lattice.Point, removeDuplicates bool) error {
	if h.kernel.rational() {
		return ErrKernelMismatch
	}
	if len(points) == 0 {
		return ErrNoInput
	}
	d := points[0].Dim()
	if d < 2 {
		return lattice.ErrDimensionTooSmall
	}
	pts := make([]lattice.Point, len(points))
	for i, p := range points {
		if p.Dim() != d {
			return lattice.ErrDimensionMismatch
		}
		pts[i] = p.Clone()
	}
	return h.prepare(pts, d, removeDuplicates)
}

// SetRealInput accepts real input for the rational kernels, scaling every
// coordinate by the configured precision and rounding to the nearest
// lattice point. Returns ErrKernelMismatch on integral kernels and
// ErrCoordinateOverflow when a scaled coordinate leaves the exact range.
func (h *Hull) SetRealInput(points []lattice.RealPoint, removeDuplicates bool) error {
	if !h.kernel.rational() {
		return ErrKernelMismatch
	}
	if len(points) == 0 {
		return ErrNoInput
	}
	d := len(points[0])
	if d < 2 {
		return lattice.ErrDimensionTooSmall
	}
	const scaleLimit = float64(int64(1) << 62)
	pts := make([]lattice.Point, len(points))
	for i, rp := range points {
		if len(rp) != d {
			return lattice.ErrDimensionMismatch
		}
		p := make(lattice.Point, d)
		for j, x := range rp {
			s := math.Round(x * float64(h.opts.Precision))
			if math.IsNaN(s) || s > scaleLimit || s < -scaleLimit {
				return ErrCoordinateOverflow
			}
			p[j] = int64(s)
		}
		pts[i] = p
	}
	return h.prepare(pts, d, removeDuplicates)
}

// prepare installs processing points, lifting them for Delaunay kernels,
// and resets all computation state.
func (h *Hull) prepare(pts []lattice.Point, d int, removeDuplicates bool) error {
	if removeDuplicates {
		pts = lattice.Dedup(pts)
	}
	h.inputDim = d
	h.dim = d
	if h.kernel.delaunay() {
		lifted, err := liftParaboloid(pts)
		if err != nil {
			return err
		}
		// Synthetic apex strictly above the paraboloid, so that fully
		// cospherical inputs (whose lift is flat) still span the lifted
		// dimension and come back as one non-simplicial Delaunay cell.
		// The apex can only ever reach the upper hull, which is flagged
		// infinite and ignored by Delaunay consumers.
		apex := lifted[0].Clone()
		apex[d]++
		pts = append(lifted, apex)
		h.dim = d + 1
	}
	h.pts = pts
	h.sfacets = nil
	h.facets = nil
	h.vertexPt = nil
	h.ridges = nil
	h.icSum = nil
	h.icScale = nil
	h.status = StatusInputInitialized
	h.log.Debug("input initialized",
		zap.Stringer("kernel", h.kernel),
		zap.Int("points", len(pts)),
		zap.Int("dimension", h.dim))
	return nil
}

// liftParaboloid appends the sum-of-squares coordinate to every point.
// The magnitude bound keeps the lifted coordinate exactly representable.
func liftParaboloid(pts []lattice.Point) ([]lattice.Point, error) {
	d := pts[0].Dim()
	bound := int64(math.Sqrt(float64(math.MaxInt64/int64(d)))) - 1
	lifted := make([]lattice.Point, len(pts))
	for i, p := range pts {
		q := make(lattice.Point, d+1)
		var sq int64
		for j, c := range p {
			if c > bound || c < -bound {
				return nil, ErrCoordinateOverflow
			}
			q[j] = c
			sq += c * c
		}
		q[d] = sq
		lifted[i] = q
	}
	return lifted, nil
}

// Compute runs the hull to StatusAllCompleted. Returns ErrNoInput before
// SetInput, ErrNotFullDimensional when the processing points do not span
// the processing dimension (status stays at StatusInputInitialized), and
// nil when already completed.
func (h *Hull) Compute() error {
	if h.status == StatusNotStarted {
		return ErrNoInput
	}
	if h.status >= StatusAllCompleted {
		return nil
	}
	simplex, err := h.initialSimplex()
	if err != nil {
		return err
	}
	h.status = StatusSimplexCompleted
	h.log.Debug("initial simplex completed", zap.Ints("corners", simplex))

	h.buildSimplexFacets(simplex)
	inSimplex := make(map[int]bool, len(simplex))
	for _, i := range simplex {
		inSimplex[i] = true
	}
	for i := range h.pts {
		if !inSimplex[i] {
			h.insertPoint(i)
		}
	}
	h.status = StatusFacetsCompleted
	h.log.Debug("all points inserted", zap.Int("simplicial_facets", h.aliveCount()))

	h.finalize()
	h.log.Debug("hull completed",
		zap.Int("vertices", len(h.vertexPt)),
		zap.Int("facets", len(h.facets)),
		zap.Int("ridges", len(h.ridges)))
	return nil
}

// aliveCount counts non-dead simplicial facets.
func (h *Hull) aliveCount() int {
	n := 0
	for _, f := range h.sfacets {
		if !f.dead {
			n++
		}
	}
	return n
}

// require panics when the hull has not reached the given status: reading
// results early is a programming error, not a recoverable condition.
func (h *Hull) require(min Status, op string) {
	if h.status < min {
		panic(fmt.Sprintf("quickhull: %s requires status >= %s, have %s", op, min, h.status))
	}
}

// NumVertices returns the number of hull vertices.
// Requires StatusVerticesCompleted.
func (h *Hull) NumVertices() int {
	h.require(StatusVerticesCompleted, "NumVertices")
	return len(h.vertexPt)
}

// VertexPosition returns the processing-space position of hull vertex i.
// Requires StatusVerticesCompleted.
func (h *Hull) VertexPosition(i int) lattice.Point {
	h.require(StatusVerticesCompleted, "VertexPosition")
	return h.pts[h.vertexPt[i]].Clone()
}

// VertexPositions returns the processing-space positions of all hull
// vertices, indexed by hull-vertex id. For Delaunay kernels positions are
// lifted; the caller drops the extra coordinate.
// Requires StatusVerticesCompleted.
func (h *Hull) VertexPositions() []lattice.Point {
	h.require(StatusVerticesCompleted, "VertexPositions")
	out := make([]lattice.Point, len(h.vertexPt))
	for i, pi := range h.vertexPt {
		out[i] = h.pts[pi].Clone()
	}
	return out
}

// RealVertexPositions returns hull vertex positions cast to real
// coordinates; rational kernels divide the configured precision back out.
// Requires StatusVerticesCompleted.
func (h *Hull) RealVertexPositions() []lattice.RealPoint {
	h.require(StatusVerticesCompleted, "RealVertexPositions")
	scale := 1.0
	if h.kernel.rational() {
		scale = 1.0 / float64(h.opts.Precision)
	}
	out := make([]lattice.RealPoint, len(h.vertexPt))
	for i, pi := range h.vertexPt {
		p := h.pts[pi]
		r := make(lattice.RealPoint, len(p))
		for j, c := range p {
			r[j] = float64(c) * scale
		}
		out[i] = r
	}
	return out
}

// NumFacets returns the number of (merged) hull facets.
// Requires StatusAllCompleted.
func (h *Hull) NumFacets() int {
	h.require(StatusAllCompleted, "NumFacets")
	return len(h.facets)
}

// FacetVertices returns the hull-vertex indices of facet i in the order
// the engine reports them: cyclic and outward-oriented in 3D processing
// space, tangent-oriented in 2D, ascending otherwise.
// Requires StatusAllCompleted.
func (h *Hull) FacetVertices(i int) []int {
	h.require(StatusAllCompleted, "FacetVertices")
	return append([]int(nil), h.facets[i].verts...)
}

// FacetNeighbors returns the indices of the facets adjacent to facet i,
// ascending. Requires StatusAllCompleted.
func (h *Hull) FacetNeighbors(i int) []int {
	h.require(StatusAllCompleted, "FacetNeighbors")
	return append([]int(nil), h.facets[i].nbrs...)
}

// FacetIsInfinite reports whether facet i belongs to the upper hull of a
// Delaunay lift, i.e. does not correspond to a finite Delaunay cell.
// Always false for the convex kernels. Requires StatusAllCompleted.
func (h *Hull) FacetIsInfinite(i int) bool {
	h.require(StatusAllCompleted, "FacetIsInfinite")
	return h.facets[i].infinite
}

// FacetHalfSpace returns the gcd-reduced integer supporting half-space of
// facet i: N·x <= C for every hull point, with equality on the facet.
// Returns ErrIntegerOverflow when the reduced coefficients do not fit in
// int64. Requires StatusAllCompleted.
func (h *Hull) FacetHalfSpace(i int) (lattice.Vector, int64, error) {
	h.require(StatusAllCompleted, "FacetHalfSpace")
	f := h.facets[i]
	n := make(lattice.Vector, len(f.normal))
	for j, x := range f.normal {
		if !x.IsInt64() {
			return nil, 0, ErrIntegerOverflow
		}
		n[j] = x.Int64()
	}
	if !f.offset.IsInt64() {
		return nil, 0, ErrIntegerOverflow
	}
	return n, f.offset.Int64(), nil
}

// Ridges enumerates every unordered pair of adjacent facets, ascending in
// (A, B). The order is deterministic but not canonical.
// Requires StatusAllCompleted.
func (h *Hull) Ridges() []Ridge {
	h.require(StatusAllCompleted, "Ridges")
	return append([]Ridge(nil), h.ridges...)
}

// RidgeVertices returns the hull-vertex indices shared by the two facets
// of r, ascending. For adjacent facets of a convex hull this is exactly
// the vertex set of their common ridge. Requires StatusAllCompleted.
func (h *Hull) RidgeVertices(r Ridge) []int {
	h.require(StatusAllCompleted, "RidgeVertices")
	inA := make(map[int]bool, len(h.facets[r.A].verts))
	for _, v := range h.facets[r.A].verts {
		inA[v] = true
	}
	var out []int
	for _, v := range h.facets[r.B].verts {
		if inA[v] {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
