// Package lattice provides the integer-lattice foundation shared by every
// latvex package: points, vectors and hyper-rectangular domains of a
// runtime-fixed dimension d ≥ 2.
//
// What:
//
//   - Point / Vector: a tuple of exact int64 coordinates; a Vector is a
//     coordinate difference and has no independent identity.
//   - RealPoint: a float64 tuple, used only for mesh positions cast from
//     lattice coordinates.
//   - Domain: an inclusive axis-aligned bounding box [Lo, Hi] with
//     membership tests and row-major iteration.
//   - Helpers: Dedup (order-preserving duplicate removal) and Bounds
//     (tight bounding box of a range of points).
//
// Why:
//
//   - Digital geometry works on voxel/pixel sets; exact int64 coordinates
//     keep every downstream predicate (orientation, halfspace membership)
//     free of floating-point error.
//   - Dimension is a runtime parameter validated at construction, so the
//     same code serves 2D image analysis and 3D volume analysis.
//
// Complexity:
//
//   - Point operations: O(d).
//   - Dedup / Bounds: O(n·d).
//   - Domain.ForEach: O(volume · d).
//
// Errors:
//
//   - ErrDimensionTooSmall: a dimension < 2 was requested.
//   - ErrDimensionMismatch: operands of different dimensions were combined.
//   - ErrEmptyRange: an operation requiring at least one point got none.
//   - ErrBadDomain: a domain with Lo[i] > Hi[i] or mismatched corners.
package lattice
