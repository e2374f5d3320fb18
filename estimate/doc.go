// Package estimate predicts the cardinality of a 3D spatial join without
// executing it.
//
// Given two dataset summaries that share a grid layout, Estimate answers
// "how many object pairs (one from A, one from B) have intersecting
// bounding volumes?" with a cheap per-cell probability model plus a global
// correction for objects spanning multiple cells. The result is the same
// class of answer a query optimizer's selectivity estimator gives: not
// exact, but orders of magnitude cheaper than the join itself.
//
// The model, per co-occupied cell:
//
//  1. The combined characteristic size of an average A object and an
//     average B object defines a Minkowski-sum cube; two centers closer
//     than that are assumed to intersect.
//  2. The cube volume over the cell volume gives the pair probability,
//     discounted by a compactness correction (volRatio^gamma) for
//     non-cube-like objects, and clamped to 1.
//  3. touchA·touchB·prob accumulates into the raw estimate.
//
// Objects larger than a cell touch several cells and are counted once per
// shared cell, so the raw estimate is divided by alpha, the expected
// number of cells a typical pair footprint spans (floored at 1 so the
// correction never inflates).
//
// Estimation is deterministic: cells are visited in ascending flat-index
// order and accumulated in float64, so identical inputs give bit-identical
// reports.
package estimate
