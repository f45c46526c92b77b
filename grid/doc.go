// Package grid models the multi-layer game map the route engine searches
// over: a rectangular field of terrain codes with optional elevation and
// tactical-priority layers, plus start/goal markers.
//
// What:
//
//   - Grid — immutable, deep-copied layers (terrain codes, elevation
//     levels, priority penalties) with width/height and S/G markers.
//   - Connectivity — Conn4 or Conn8 neighbor rule with precomputed
//     offsets; axis moves come before diagonals, which is what makes
//     equal-cost tie-breaking prefer straight lines.
//   - Bounds checking — InBounds for predicates, CheckBounds for a
//     structured *BoundsError carrying the offending coordinate; out of
//     range is a boundary fault, never a clamp.
//   - Text-layer parsers — ParseTerrain (character rows), ParseElevation
//     (space-separated ints), ParsePriority (space-separated floats),
//     ParsePoints (explicit S/G coordinates).
//
// Why:
//
//   - A query borrows the Grid read-only for its duration; deep copies at
//     construction are what make lock-free sharing across concurrent
//     queries sound.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular — shape validation.
//   - ErrLayerMismatch — elevation/priority dimensions differ from terrain.
//   - ErrUnknownCode — a terrain code absent from the validating table.
//   - ErrNegativePriority — P(v) must be ≥ 0.
//   - ErrOutOfBounds — boundary fault, wrapped by *BoundsError.
//   - ErrMissingMarker — S or G requested but not present.
//   - ErrMalformedLayer — a text layer that cannot be parsed.
package grid
