package neighborhood_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latvex/digital"
	"github.com/katalvlaran/latvex/lattice"
	"github.com/katalvlaran/latvex/neighborhood"
)

// countingOracle records how often each predicate runs and what input it
// saw last, returning canned answers.
type countingOracle struct {
	fullCalls, zeroCalls int
	lastInput            []lattice.Point
	full, zero           bool
}

func (o *countingOracle) IsFullyConvex(pts []lattice.Point) bool {
	o.fullCalls++
	o.lastInput = pts
	return o.full
}

func (o *countingOracle) Is0Convex(pts []lattice.Point) bool {
	o.zeroCalls++
	o.lastInput = pts
	return o.zero
}

func domain2D(t *testing.T) lattice.Domain {
	t.Helper()
	dom, err := lattice.NewDomain(lattice.Point{-4, -4}, lattice.Point{4, 4})
	require.NoError(t, err)
	return dom
}

// diagonalSet is X = {p : p.x == p.y}.
func diagonalSet(p lattice.Point) bool { return p[0] == p[1] }

func TestNewAnalyzerValidation(t *testing.T) {
	dom := domain2D(t)
	_, err := neighborhood.NewAnalyzer(nil, dom, 1)
	require.ErrorIs(t, err, neighborhood.ErrNilOracle)

	_, err = neighborhood.NewAnalyzer(&countingOracle{}, dom, 0)
	require.ErrorIs(t, err, neighborhood.ErrBadRadius)

	_, err = neighborhood.NewAnalyzer(&countingOracle{}, lattice.Domain{}, 1)
	require.ErrorIs(t, err, lattice.ErrDimensionTooSmall)

	require.Panics(t, func() { neighborhood.WithLogger(nil) })
}

func TestQueriesBeforeSetCenterPanic(t *testing.T) {
	a, err := neighborhood.NewAnalyzer(&countingOracle{}, domain2D(t), 1)
	require.NoError(t, err)
	require.Panics(t, func() { a.IsFullyConvex(true) })
	require.Panics(t, func() { a.Center() })
	require.Panics(t, func() { a.IsFullyConvexCollapsible() })
}

func TestSetCenterPartition(t *testing.T) {
	a, err := neighborhood.NewAnalyzer(&countingOracle{}, domain2D(t), 1)
	require.NoError(t, err)

	require.ErrorIs(t, a.SetCenter(lattice.Point{9, 9}, diagonalSet), neighborhood.ErrOutsideDomain)
	require.ErrorIs(t, a.SetCenter(lattice.Point{0, 0, 0}, diagonalSet), lattice.ErrDimensionMismatch)

	require.NoError(t, a.SetCenter(lattice.Point{0, 0}, diagonalSet))
	require.True(t, a.IsCenterInX())
	require.True(t, a.Center().Equal(lattice.Point{0, 0}))
	// 3x3 window minus the center: the two diagonal neighbors are in X.
	require.Len(t, a.Local(), 2)
	require.Len(t, a.LocalComp(), 6)

	// A corner center is clipped by the domain: 2x2 window minus center.
	require.NoError(t, a.SetCenter(lattice.Point{-4, -4}, diagonalSet))
	require.Len(t, a.Local(), 1)
	require.Len(t, a.LocalComp(), 2)
}

// TestMemoizationIdempotence asserts one oracle call per variant per
// center, with identical answers on repeat queries.
func TestMemoizationIdempotence(t *testing.T) {
	o := &countingOracle{full: true, zero: false}
	a, err := neighborhood.NewAnalyzer(o, domain2D(t), 1)
	require.NoError(t, err)
	require.NoError(t, a.SetCenter(lattice.Point{0, 0}, diagonalSet))

	require.True(t, a.IsFullyConvex(true))
	require.True(t, a.IsFullyConvex(true))
	require.Equal(t, 1, o.fullCalls, "repeat query must not hit the oracle")

	require.True(t, a.IsFullyConvex(false))
	require.Equal(t, 2, o.fullCalls, "without-center is an independent slot")

	// The 0-convexity family must not alias the full-convexity slots.
	require.False(t, a.Is0Convex(true))
	require.False(t, a.Is0Convex(false))
	require.Equal(t, 2, o.zeroCalls)
	require.Equal(t, 2, o.fullCalls)

	require.True(t, a.IsComplementaryFullyConvex(true))
	require.False(t, a.IsComplementary0Convex(false))
	require.Equal(t, 3, o.fullCalls)
	require.Equal(t, 3, o.zeroCalls)
}

// TestResetOnRecenter asserts all eight slots read unevaluated after a
// new SetCenter.
func TestResetOnRecenter(t *testing.T) {
	o := &countingOracle{full: true, zero: true}
	a, err := neighborhood.NewAnalyzer(o, domain2D(t), 1)
	require.NoError(t, err)

	require.NoError(t, a.SetCenter(lattice.Point{0, 0}, diagonalSet))
	a.IsFullyConvex(true)
	a.IsFullyConvex(false)
	a.IsComplementaryFullyConvex(true)
	a.IsComplementaryFullyConvex(false)
	a.Is0Convex(true)
	a.Is0Convex(false)
	a.IsComplementary0Convex(true)
	a.IsComplementary0Convex(false)
	for c := neighborhood.FullConvexity; c <= neighborhood.ComplementaryZeroConvexityWithCenter; c++ {
		require.True(t, a.IsEvaluated(c), "%s must be evaluated", c)
	}

	require.NoError(t, a.SetCenter(lattice.Point{1, 1}, diagonalSet))
	for c := neighborhood.FullConvexity; c <= neighborhood.ComplementaryZeroConvexityWithCenter; c++ {
		require.False(t, a.IsEvaluated(c), "%s must be reset", c)
	}
	require.Equal(t, 4, o.fullCalls)
	require.Equal(t, 4, o.zeroCalls)
}

// TestWithCenterCallIsPure asserts the oracle sees window ∪ {center}
// while the stored window list stays untouched.
func TestWithCenterCallIsPure(t *testing.T) {
	o := &countingOracle{full: true}
	a, err := neighborhood.NewAnalyzer(o, domain2D(t), 1)
	require.NoError(t, err)
	require.NoError(t, a.SetCenter(lattice.Point{0, 0}, diagonalSet))

	before := a.Local()
	a.IsFullyConvex(true)
	require.Len(t, o.lastInput, len(before)+1)
	require.True(t, o.lastInput[len(o.lastInput)-1].Equal(lattice.Point{0, 0}))

	after := a.Local()
	require.Equal(t, len(before), len(after), "window list must not grow")
	for i := range before {
		require.True(t, before[i].Equal(after[i]))
	}
}

// TestCollapsibilityShortCircuit: an empty relevant window side returns
// false without consulting the oracle.
func TestCollapsibilityShortCircuit(t *testing.T) {
	o := &countingOracle{full: true, zero: true}
	a, err := neighborhood.NewAnalyzer(o, domain2D(t), 1)
	require.NoError(t, err)

	// X = {(0,0)} only: the center is in X and localX is empty.
	singleton := func(p lattice.Point) bool { return p.Equal(lattice.Point{0, 0}) }
	require.NoError(t, a.SetCenter(lattice.Point{0, 0}, singleton))
	require.True(t, a.IsCenterInX())
	require.Empty(t, a.Local())
	require.False(t, a.IsFullyConvexCollapsible())
	require.Zero(t, o.fullCalls, "emptiness must short-circuit the oracle")
}

// TestCollapsibleDiagonal runs the analyzer against the real digital
// oracle on a diagonal ray X = {p : p.x == p.y, p.x >= 0}: the endpoint
// collapses, an interior point does not (removing it would disconnect X),
// and an isolated point short-circuits on emptiness.
func TestCollapsibleDiagonal(t *testing.T) {
	dom := domain2D(t)
	oracle, err := digital.NewConvexity(dom.Lo, dom.Hi)
	require.NoError(t, err)
	a, err := neighborhood.NewAnalyzer(oracle, dom, 1)
	require.NoError(t, err)

	ray := func(p lattice.Point) bool { return p[0] == p[1] && p[0] >= 0 }

	require.NoError(t, a.SetCenter(lattice.Point{0, 0}, ray))
	require.True(t, a.IsFullyConvexCollapsible(), "a ray endpoint collapses")

	require.NoError(t, a.SetCenter(lattice.Point{2, 2}, ray))
	require.False(t, a.IsFullyConvexCollapsible(),
		"an interior ray point must not collapse: its window part of X has a hull gap")

	isolated := func(p lattice.Point) bool { return p.Equal(lattice.Point{2, 2}) }
	require.NoError(t, a.SetCenter(lattice.Point{2, 2}, isolated))
	require.False(t, a.IsFullyConvexCollapsible())
}
