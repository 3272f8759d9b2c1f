// Package quickhull computes exact convex hulls of integer-lattice point
// sets in arbitrary runtime dimension d ≥ 2.
//
// What:
//
//   - Hull runs an incremental (beneath–beyond) convex hull whose
//     orientation predicates are evaluated on big integers, so the output
//     combinatorics are exact — no floating-point hull errors, ever.
//   - Four kernels select the computation flavor:
//     – ConvexIntegralKernel   — hull of lattice points.
//     – DelaunayIntegralKernel — hull of points lifted by one paraboloid
//     coordinate (sum of squares); lower facets are the Delaunay cells,
//     upper facets are flagged infinite.
//     – ConvexRationalKernel / DelaunayRationalKernel — same, for real
//     input scaled onto the lattice by a precision factor.
//   - Computation is staged behind a monotone status ladder:
//     StatusNotStarted < StatusInputInitialized < StatusSimplexCompleted <
//     StatusFacetsCompleted < StatusVerticesCompleted < StatusAllCompleted.
//     Vertex accessors require StatusVerticesCompleted, ridge and facet
//     accessors require StatusAllCompleted; reading earlier is a contract
//     violation and panics.
//   - Coplanar simplicial facets are merged into polygonal facets, so
//     cospherical Delaunay inputs yield valid non-simplicial cells.
//
// Why:
//
//   - Digital-geometry pipelines (polytopes, boundary meshes, Delaunay
//     complexes) need combinatorially correct hulls; one wrong orientation
//     sign breaks every downstream incidence table.
//
// Complexity:
//
//   - Compute: O(n²·f·d³) worst case with exact big-integer predicates,
//     where f is the number of hull facets. Intended for the moderate point
//     counts of digital-geometry research, not for millions of points.
//
// Options:
//
//   - WithLogger: inject a *zap.Logger for stage and insertion tracing.
//   - WithPrecision: lattice scale for the rational kernels (default 1024).
//
// Errors:
//
//   - ErrNoInput: Compute or SetInput without points.
//   - ErrNotFullDimensional: the affine span of the input is smaller than
//     the processing dimension (for Delaunay kernels, the lifted dimension).
//   - ErrKernelMismatch: SetInput on a rational kernel or SetRealInput on an
//     integral kernel.
//   - ErrCoordinateOverflow: a coordinate too large for an exact paraboloid
//     lift or rational scaling.
//   - ErrIntegerOverflow: a reduced facet normal does not fit in int64.
package quickhull
