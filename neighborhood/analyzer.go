package neighborhood

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/latvex/lattice"
)

// Analyzer is the per-center convexity cache. Construct with NewAnalyzer,
// position with SetCenter, then query predicates; each of the eight
// variants hits the oracle at most once per center.
type Analyzer struct {
	oracle Oracle
	dom    lattice.Domain
	radius int64
	log    *zap.Logger

	centered   bool
	center     lattice.Point
	centerInX  bool
	localX     []lattice.Point // window points in X, center excluded
	localCompX []lattice.Point // window points not in X, center excluded
	slots      [numComputations]triState
}

// NewAnalyzer returns an analyzer over dom with window radius K (the
// window is the (2K+1)^d box around the center, clipped to dom). Returns
// ErrNilOracle, ErrBadRadius, or lattice domain sentinels on invalid
// input.
func NewAnalyzer(oracle Oracle, dom lattice.Domain, radius int64, opts ...Option) (*Analyzer, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if radius < 1 {
		return nil, ErrBadRadius
	}
	if dom.Dim() < 2 {
		return nil, lattice.ErrDimensionTooSmall
	}
	if _, err := lattice.NewDomain(dom.Lo, dom.Hi); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Analyzer{oracle: oracle, dom: dom, radius: radius, log: o.Logger}, nil
}

// Radius returns the window radius K.
func (a *Analyzer) Radius() int64 { return a.radius }

// Domain returns the analyzer's bounding domain.
func (a *Analyzer) Domain() lattice.Domain { return a.dom }

// SetCenter repositions the analyzer: it records whether c belongs to X,
// partitions the window around c (clipped to the domain, c excluded) into
// localX/localCompX, and resets all eight memoization slots. Returns
// ErrOutsideDomain or lattice.ErrDimensionMismatch on a bad center.
func (a *Analyzer) SetCenter(c lattice.Point, inX PointPredicate) error {
	if c.Dim() != a.dom.Dim() {
		return lattice.ErrDimensionMismatch
	}
	if !a.dom.Contains(c) {
		return ErrOutsideDomain
	}
	a.center = c.Clone()
	a.centerInX = inX(c)
	a.localX = a.localX[:0]
	a.localCompX = a.localCompX[:0]
	a.slots = [numComputations]triState{}
	a.centered = true

	window := lattice.Domain{Lo: c, Hi: c}.Extend(a.radius).Clip(a.dom)
	window.ForEach(func(p lattice.Point) {
		if p.Equal(c) {
			return
		}
		if inX(p) {
			a.localX = append(a.localX, p.Clone())
		} else {
			a.localCompX = append(a.localCompX, p.Clone())
		}
	})
	a.log.Debug("analyzer re-centered",
		zap.Any("center", c),
		zap.Bool("center_in_x", a.centerInX),
		zap.Int("local_x", len(a.localX)),
		zap.Int("local_comp_x", len(a.localCompX)))
	return nil
}

// Center returns the current center. Requires SetCenter.
func (a *Analyzer) Center() lattice.Point {
	a.requireCentered("Center")
	return a.center.Clone()
}

// IsCenterInX reports whether the current center belongs to X.
// Requires SetCenter.
func (a *Analyzer) IsCenterInX() bool {
	a.requireCentered("IsCenterInX")
	return a.centerInX
}

// Local returns a copy of the window points inside X, center excluded.
// Requires SetCenter.
func (a *Analyzer) Local() []lattice.Point {
	a.requireCentered("Local")
	return clonePoints(a.localX)
}

// LocalComp returns a copy of the window points outside X, center
// excluded. Requires SetCenter.
func (a *Analyzer) LocalComp() []lattice.Point {
	a.requireCentered("LocalComp")
	return clonePoints(a.localCompX)
}

// IsEvaluated reports whether the given predicate variant has been
// evaluated for the current center. Requires SetCenter.
func (a *Analyzer) IsEvaluated(c Computation) bool {
	a.requireCentered("IsEvaluated")
	if c < 0 || c >= numComputations {
		panic("neighborhood: IsEvaluated: unknown computation " + c.String())
	}
	return a.slots[c] != unevaluated
}

// IsFullyConvex answers full convexity of the window part of X,
// optionally including the center. Requires SetCenter.
func (a *Analyzer) IsFullyConvex(withCenter bool) bool {
	a.requireCentered("IsFullyConvex")
	return a.eval(FullConvexity, FullConvexityWithCenter, withCenter, a.localX, a.oracle.IsFullyConvex)
}

// IsComplementaryFullyConvex answers full convexity of the window part of
// the complement of X, optionally including the center.
// Requires SetCenter.
func (a *Analyzer) IsComplementaryFullyConvex(withCenter bool) bool {
	a.requireCentered("IsComplementaryFullyConvex")
	return a.eval(ComplementaryFullConvexity, ComplementaryFullConvexityWithCenter, withCenter, a.localCompX, a.oracle.IsFullyConvex)
}

// Is0Convex answers 0-convexity of the window part of X, optionally
// including the center. Requires SetCenter.
func (a *Analyzer) Is0Convex(withCenter bool) bool {
	a.requireCentered("Is0Convex")
	return a.eval(ZeroConvexity, ZeroConvexityWithCenter, withCenter, a.localX, a.oracle.Is0Convex)
}

// IsComplementary0Convex answers 0-convexity of the window part of the
// complement of X, optionally including the center. Requires SetCenter.
func (a *Analyzer) IsComplementary0Convex(withCenter bool) bool {
	a.requireCentered("IsComplementary0Convex")
	return a.eval(ComplementaryZeroConvexity, ComplementaryZeroConvexityWithCenter, withCenter, a.localCompX, a.oracle.Is0Convex)
}

// IsFullyConvexCollapsible is the collapsibility test of thinning
// algorithms: the side of X the center belongs to must be non-empty in
// the window and fully convex both with and without the center. The
// emptiness check short-circuits before any oracle call.
// Requires SetCenter.
func (a *Analyzer) IsFullyConvexCollapsible() bool {
	a.requireCentered("IsFullyConvexCollapsible")
	if a.centerInX {
		return len(a.localX) > 0 &&
			a.IsFullyConvex(false) &&
			a.IsFullyConvex(true)
	}
	return len(a.localCompX) > 0 &&
		a.IsComplementaryFullyConvex(false) &&
		a.IsComplementaryFullyConvex(true)
}

// eval is the single lookup-or-compute-and-store step behind every
// predicate accessor. The oracle receives a fresh collection: the stored
// window lists are never mutated, even transiently.
func (a *Analyzer) eval(slot, slotWithCenter Computation, withCenter bool, window []lattice.Point, test func([]lattice.Point) bool) bool {
	s := slot
	if withCenter {
		s = slotWithCenter
	}
	if v := a.slots[s]; v != unevaluated {
		return v == evaluatedTrue
	}
	input := window
	if withCenter {
		combined := make([]lattice.Point, 0, len(window)+1)
		combined = append(combined, window...)
		combined = append(combined, a.center)
		input = combined
	}
	res := test(input)
	if res {
		a.slots[s] = evaluatedTrue
	} else {
		a.slots[s] = evaluatedFalse
	}
	return res
}

// requireCentered panics when no center has been set: querying the window
// of an idle analyzer is a programming error.
func (a *Analyzer) requireCentered(op string) {
	if !a.centered {
		panic("neighborhood: " + op + " called before SetCenter")
	}
}

// clonePoints deep-copies a point slice.
func clonePoints(pts []lattice.Point) []lattice.Point {
	out := make([]lattice.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Clone()
	}
	return out
}
