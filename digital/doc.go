// Package digital decides digital convexity of finite lattice sets with
// exact integer arithmetic.
//
// What: the Convexity oracle answers two predicates over a finite point
// set X inside a fixed bounding domain:
//
//   - Is0Convex: X equals the lattice points of its own convex hull.
//   - IsFullyConvex: the stronger, topology-aware notion; decided through
//     the Minkowski-sum characterization, X is fully convex iff X ⊕ U(α)
//     is 0-convex for every axis subset α, where U(α) is the unit cube
//     spanned by the axes of α.
//
// Why: both predicates are decided by counting lattice points of exact
// integer hulls, so there are no floating-point misclassifications near
// hull facets, which is exactly where local window analysis operates.
//
// Degenerate sets need no special casing by callers: sets of affine rank
// below the ambient dimension are handled by contiguity checks on a line
// and by an exact unimodular reduction onto the plane lattice in 3D.
//
// Supported dimensions: 2 and 3. Construction fails with
// ErrUnsupportedDimension otherwise.
//
// Complexity: one hull run plus one bounding-box scan per predicate; full
// convexity multiplies that by the 2^d axis subsets. Intended for the
// small windows of neighborhood analysis.
package digital
