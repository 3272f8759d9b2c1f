// Package latvex is an exact toolkit for digital (integer-lattice) geometry:
// convex hulls, halfspace polytopes, Delaunay cell complexes and local
// digital-convexity analysis — all with exact integer arithmetic.
//
// 🚀 What is latvex?
//
//	A library for digital-geometry and image-analysis research that brings together:
//		• lattice       — runtime-dimension integer points, vectors and hyper-rect domains
//		• quickhull     — exact d-dimensional convex hull engine (integral/rational, hull/Delaunay kernels)
//		• convexity     — facet/ridge extraction, lattice polytopes (H-representation),
//		                  hull boundary meshes and convex-hull / Delaunay cell complexes
//		• digital       — a concrete digital-convexity oracle (0-convexity, full convexity)
//		• neighborhood  — a memoizing (2K+1)^d window analyzer for local convexity predicates
//		• render        — go-echarts HTML plots of 2D complexes and boundaries
//
// ✨ Why choose latvex?
//
//   - Exact by construction — every orientation predicate runs on big integers,
//     so hulls never suffer floating-point errors
//   - Honest degeneracy — non-full-dimensional inputs are a documented outcome,
//     cospherical points yield valid non-simplicial Delaunay cells
//   - Small, typed API — sentinel errors, options with defaults, no global state
//
// Quick ASCII example:
//
//	    (0,1)───(1,1)
//	      │         │      the four corners of the unit square are cospherical:
//	      │         │      their Delaunay complex is one quad cell, not two
//	    (0,0)───(1,0)      arbitrary triangles.
//
// Dive into each package's doc.go for tutorials, complexity tables and the
// exact error contracts.
//
//	go get github.com/katalvlaran/latvex
package latvex
