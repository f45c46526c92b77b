// Package isocoord converts between logical grid coordinates and
// isometric screen coordinates, and provides the diamond inclusion test
// used for point-to-tile hit resolution.
//
// What:
//
//   - GridCoord (x, y, h) — integer cell address with elevation.
//   - IsoCoord (X, Y) — floating-point screen position.
//   - ToIso / ToGrid — the bidirectional affine transform pair.
//   - ToIsoCenter — tile-center variant for sprite anchoring.
//   - InDiamond — |u| + |v| ≤ 1 membership test in tile-local space.
//   - ManhattanDistance / OctileDistance — grid metrics for heuristics.
//
// Why:
//
//   - Isometric games render diamonds but think in grids; every click and
//     every sprite placement crosses this boundary.
//   - Keeping the transform pure and free of search/terrain dependencies
//     lets rendering and pathfinding evolve independently.
//
// Formulas (tw = tile width, th = tile height, β = elevation scale):
//
//	X = (tw/2)(x − y)
//	Y = (th/2)(x + y) − β·h
//
// The inverse solves the 2×2 system after undoing the elevation offset.
// Elevation is not recoverable from a screen position alone: ToGrid takes
// the elevation as an argument, and callers without one pass 0, which
// matches the forward transform's degenerate case. When the true
// elevation differs from the value supplied, the inversion is only
// approximate; this is a documented limitation, not a defect.
//
// Round-trip guarantee: for every valid IsoConfig and any cell g,
// ToGrid(ToIso(g, cfg), g.H, cfg) reproduces g exactly — the forward
// transform lands at the diamond center, so the ≤ 0.5-tile rounding
// error is absorbed by the round step.
//
// Errors:
//
//   - ErrNonPositiveTileWidth, ErrNonPositiveTileHeight — tile dimensions
//     must be strictly positive.
//   - ErrNegativeElevationScale — β must be ≥ 0 (0 disables elevation).
//
// This package must not import the grid, cost, route, or hittest layers.
package isocoord
