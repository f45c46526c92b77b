// Package hittest resolves a screen-space point to the grid cell that
// owns it, or to a miss.
//
// What:
//
//   - Resolver — the O(1) path: invert the isometric transform to a
//     candidate cell, verify with the diamond test against the
//     candidate's own center, and fall back to the four grid-adjacent
//     neighbors in a fixed order (up, down, left, right). The fixed
//     order is the tie-break: no two adjacent cells can both claim a
//     boundary point, and no point over the grid goes unassigned.
//   - Index — an R-tree of per-cell diamond polygons for callers that
//     batch many queries over large maps; candidates come from a spatial
//     search and membership from planar point-in-polygon. On a flat grid
//     it answers exactly like Resolver away from diamond boundaries.
//
// Out-of-range input is a miss, never an error: a click off the map is
// a normal event, not a fault.
//
// Limitation: resolution inverts the transform assuming elevation 0,
// because elevation is not recoverable from a screen position alone.
// On maps with raised terrain the resolved cell is the one whose
// ground-level diamond contains the point.
package hittest
