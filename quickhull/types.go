// Package quickhull defines kernels, statuses, options, and sentinel errors
// for the quickhull subpackage of github.com/katalvlaran/latvex.
package quickhull

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for hull computations.
var (
	// ErrNoInput indicates that no input points were supplied.
	ErrNoInput = errors.New("quickhull: input point range is empty")
	// ErrNotFullDimensional indicates that the affine span of the input is
	// smaller than the processing dimension. This is an expected outcome for
	// degenerate inputs, not a programming error.
	ErrNotFullDimensional = errors.New("quickhull: input points are not full dimensional")
	// ErrKernelMismatch indicates lattice input on a rational kernel or real
	// input on an integral kernel.
	ErrKernelMismatch = errors.New("quickhull: input form does not match the selected kernel")
	// ErrCoordinateOverflow indicates a coordinate too large for an exact
	// paraboloid lift or rational scaling.
	ErrCoordinateOverflow = errors.New("quickhull: coordinate magnitude exceeds the exact range")
	// ErrIntegerOverflow indicates a reduced facet normal or offset that does
	// not fit in int64.
	ErrIntegerOverflow = errors.New("quickhull: facet coefficients exceed int64 range")
)

// Kernel selects the hull computation flavor.
type Kernel int

const (
	// ConvexIntegralKernel computes the convex hull of lattice points.
	ConvexIntegralKernel Kernel = iota
	// DelaunayIntegralKernel lifts lattice points by a paraboloid coordinate
	// and computes the hull in dimension d+1; lower facets are the Delaunay
	// cells, upper facets are flagged infinite.
	DelaunayIntegralKernel
	// ConvexRationalKernel computes the hull of real points scaled onto the
	// lattice by the configured precision.
	ConvexRationalKernel
	// DelaunayRationalKernel combines rational scaling with the paraboloid
	// lift.
	DelaunayRationalKernel
)

// delaunay reports whether the kernel lifts its input.
func (k Kernel) delaunay() bool {
	return k == DelaunayIntegralKernel || k == DelaunayRationalKernel
}

// rational reports whether the kernel scales real input onto the lattice.
func (k Kernel) rational() bool {
	return k == ConvexRationalKernel || k == DelaunayRationalKernel
}

// String returns the kernel name.
func (k Kernel) String() string {
	switch k {
	case ConvexIntegralKernel:
		return "ConvexIntegral"
	case DelaunayIntegralKernel:
		return "DelaunayIntegral"
	case ConvexRationalKernel:
		return "ConvexRational"
	case DelaunayRationalKernel:
		return "DelaunayRational"
	default:
		return "Unknown"
	}
}

// Status is the monotone completion status of a hull computation.
// Accessors document the minimal status they require; calling them earlier
// is a contract violation and panics.
type Status int

const (
	// StatusNotStarted: no input yet.
	StatusNotStarted Status = iota
	// StatusInputInitialized: input accepted, processing points prepared.
	StatusInputInitialized
	// StatusSimplexCompleted: a full-dimensional initial simplex was found.
	StatusSimplexCompleted
	// StatusFacetsCompleted: all points inserted, simplicial facets final.
	StatusFacetsCompleted
	// StatusVerticesCompleted: coplanar facets merged, hull vertices
	// renumbered; vertex accessors become legal.
	StatusVerticesCompleted
	// StatusAllCompleted: facet adjacency and ridge tables built; ridge and
	// facet accessors become legal.
	StatusAllCompleted
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusInputInitialized:
		return "InputInitialized"
	case StatusSimplexCompleted:
		return "SimplexCompleted"
	case StatusFacetsCompleted:
		return "FacetsCompleted"
	case StatusVerticesCompleted:
		return "VerticesCompleted"
	case StatusAllCompleted:
		return "AllCompleted"
	default:
		return "Unknown"
	}
}

// Ridge is the unordered pair of adjacent hull cells sharing a
// codimension-2 face. A and B are facet indices with A < B.
type Ridge struct {
	A, B int
}

// NewRidge returns the canonical (A < B) ridge for the facet pair (a, b).
func NewRidge(a, b int) Ridge {
	if a > b {
		a, b = b, a
	}
	return Ridge{A: a, B: b}
}

// DefaultPrecision is the lattice scale used by the rational kernels when
// WithPrecision is not supplied.
const DefaultPrecision int64 = 1024

// Options contains tunable parameters for a hull computation.
type Options struct {
	// Logger receives stage and insertion tracing at Debug level.
	Logger *zap.Logger
	// Precision is the lattice scale for the rational kernels.
	Precision int64
}

// DefaultOptions returns Options with a no-op logger and DefaultPrecision.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		Precision: DefaultPrecision,
	}
}

// Option mutates Options. Constructors panic on nonsensical values:
// invalid parameters are programmer errors, not runtime conditions.
type Option func(*Options)

// WithLogger injects a logger for stage and insertion tracing.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("quickhull: WithLogger requires a non-nil logger")
	}
	return func(o *Options) { o.Logger = l }
}

// WithPrecision sets the lattice scale for the rational kernels.
// Panics if p <= 0.
func WithPrecision(p int64) Option {
	if p <= 0 {
		panic("quickhull: WithPrecision requires a positive precision")
	}
	return func(o *Options) { o.Precision = p }
}
