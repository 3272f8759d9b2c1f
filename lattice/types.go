// Package lattice defines core types and sentinel errors for the lattice
// subpackage of github.com/katalvlaran/latvex.
package lattice

import (
	"errors"
)

// Sentinel errors for lattice operations.
var (
	// ErrDimensionTooSmall indicates a requested dimension below 2.
	ErrDimensionTooSmall = errors.New("lattice: dimension must be at least 2")
	// ErrDimensionMismatch indicates operands with differing dimensions.
	ErrDimensionMismatch = errors.New("lattice: operands have different dimensions")
	// ErrEmptyRange indicates an operation that requires at least one point.
	ErrEmptyRange = errors.New("lattice: point range must be non-empty")
	// ErrBadDomain indicates a domain whose corners are inconsistent.
	ErrBadDomain = errors.New("lattice: invalid domain bounds")
)

// Point is a lattice point: a tuple of exact integer coordinates.
// Its length is the ambient dimension, fixed per computation and ≥ 2.
type Point []int64

// Vector is a coordinate difference between two points. It shares the
// representation of Point and has no independent identity.
type Vector = Point

// RealPoint is a real-coordinate tuple, used for mesh vertex positions
// cast from lattice coordinates.
type RealPoint []float64

// Dim returns the dimension of p.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)
	return q
}

// Equal reports whether p and q have the same dimension and coordinates.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Add returns p + v as a new point.
func (p Point) Add(v Vector) Point {
	q := make(Point, len(p))
	for i := range p {
		q[i] = p[i] + v[i]
	}
	return q
}

// Sub returns p - q as a new vector.
func (p Point) Sub(q Point) Vector {
	v := make(Vector, len(p))
	for i := range p {
		v[i] = p[i] - q[i]
	}
	return v
}

// IsZero reports whether every coordinate of p is zero.
func (p Point) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// Dot returns the scalar product p·q.
func (p Point) Dot(q Point) int64 {
	var s int64
	for i := range p {
		s += p[i] * q[i]
	}
	return s
}

// Real casts p to real coordinates.
func (p Point) Real() RealPoint {
	r := make(RealPoint, len(p))
	for i := range p {
		r[i] = float64(p[i])
	}
	return r
}
