// Package convexity derives exact combinatorial structures from lattice
// point sets: half-space polytopes, hull boundary meshes, and convex-hull
// or Delaunay cell complexes.
//
// What:
//   - FacetRidgeVertices: face-oriented view of a completed hull run
//     (per-cell vertex lists, ridge→face map, per-face vertex lists).
//   - ComputeLatticePolytope: tightest integer H-representation of the
//     convex hull of a point set, optionally Minkowski-summable.
//   - ComputeConvexHullBoundary / ComputeConvexHullSurface: populate a
//     mesh sink with the hull boundary; the Euler characteristic of the
//     result is verified in dimensions 2 and 3.
//   - ComputeConvexHullCellComplex / ComputeDelaunayCellComplex: build a
//     cell complex with one maximal cell per hull facet or per finite
//     Delaunay cell.
//
// Why: every predicate stays integer-exact end to end; there is no
// floating-point hull step, so the derived structures are combinatorially
// correct for any int64 input in range.
//
// Degenerate input (points that do not span the ambient dimension) is a
// normal outcome: builders return false or the empty polytope sentinel.
// Querying a hull run before it completes panics inside quickhull.
//
// Complexity: dominated by the hull run, O(n log n) expected in 2D/3D for
// random inputs, plus linear extraction passes.
package convexity
