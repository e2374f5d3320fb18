// Package gridstat computes descriptive statistics over a summary's
// spatial grid.
//
// The analyzer is a pure reduction: it never mutates the grid and always
// scans cells in ascending flat-index order, so identical grids produce
// identical statistics. Its outputs serve two consumers, human-facing
// diagnostics and the overlap estimator's global replication correction,
// which feeds on the touch-count-weighted global averages.
package gridstat
