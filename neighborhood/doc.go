// Package neighborhood provides a memoizing local convexity analyzer for
// digital sets: a moving (2K+1)^d window around a center point, with lazy
// per-center evaluation of eight convexity predicates.
//
// What: Analyzer partitions the window around the current center into
// points inside and outside a digital set X (the center itself excluded),
// then answers full-convexity and 0-convexity queries for the set or its
// complement, with or without the center, through an external Oracle.
// Each of the eight predicate variants is evaluated at most once per
// center; repeat queries return the memoized outcome. Re-centering resets
// every memoization slot.
//
// Why: thinning and topology-preserving algorithms query the same center
// repeatedly with different predicate variants; evaluating each variant
// once per center removes redundant hull computations, which dominate the
// cost.
//
// The analyzer owns its window state exclusively: accessors return
// copies, and oracle calls receive freshly built collections, so a
// failing or misbehaving oracle can never leave the window polluted.
//
// Options: WithLogger attaches a zap logger for re-centering diagnostics.
//
// Errors: NewAnalyzer validates its inputs (ErrNilOracle, ErrBadRadius,
// lattice domain sentinels); SetCenter rejects centers outside the
// domain with ErrOutsideDomain. Querying a predicate before the first
// SetCenter panics: it is a programming error, not a runtime condition.
//
// Not safe for concurrent use; each Analyzer belongs to one logical
// computation thread.
package neighborhood
