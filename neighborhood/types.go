package neighborhood

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/latvex/lattice"
)

// Sentinel errors for analyzer construction and re-centering.
var (
	// ErrNilOracle indicates construction without a convexity oracle.
	ErrNilOracle = errors.New("neighborhood: oracle must not be nil")
	// ErrBadRadius indicates a window radius below 1.
	ErrBadRadius = errors.New("neighborhood: window radius must be at least 1")
	// ErrOutsideDomain indicates a center outside the analyzer's domain.
	ErrOutsideDomain = errors.New("neighborhood: center outside the analyzer domain")
)

// Oracle is the external digital-convexity boundary. Both predicates are
// pure functions of the given collection.
type Oracle interface {
	IsFullyConvex(pts []lattice.Point) bool
	Is0Convex(pts []lattice.Point) bool
}

// PointPredicate is characteristic-function membership in a digital set.
type PointPredicate func(p lattice.Point) bool

// Computation enumerates the eight memoized predicate variants: two
// predicate kinds, two polarities, with or without the center. Each
// variant owns an independent cache slot.
type Computation int

const (
	FullConvexity Computation = iota
	FullConvexityWithCenter
	ComplementaryFullConvexity
	ComplementaryFullConvexityWithCenter
	ZeroConvexity
	ZeroConvexityWithCenter
	ComplementaryZeroConvexity
	ComplementaryZeroConvexityWithCenter

	numComputations
)

// String implements fmt.Stringer.
func (c Computation) String() string {
	switch c {
	case FullConvexity:
		return "FullConvexity"
	case FullConvexityWithCenter:
		return "FullConvexityWithCenter"
	case ComplementaryFullConvexity:
		return "ComplementaryFullConvexity"
	case ComplementaryFullConvexityWithCenter:
		return "ComplementaryFullConvexityWithCenter"
	case ZeroConvexity:
		return "ZeroConvexity"
	case ZeroConvexityWithCenter:
		return "ZeroConvexityWithCenter"
	case ComplementaryZeroConvexity:
		return "ComplementaryZeroConvexity"
	case ComplementaryZeroConvexityWithCenter:
		return "ComplementaryZeroConvexityWithCenter"
	default:
		return "UnknownComputation"
	}
}

// triState is one memoization slot.
type triState int8

const (
	unevaluated triState = iota
	evaluatedTrue
	evaluatedFalse
)

// Options configure an Analyzer.
type Options struct {
	// Logger receives re-centering diagnostics. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns the default analyzer configuration.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the analyzer logger. Panics on nil: passing an explicit
// nil logger is a programmer error.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("neighborhood: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
