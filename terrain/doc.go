// Package terrain provides the immutable terrain cost table consumed by
// the edge cost function.
//
// What:
//
//   - Cost — per-terrain-code record: base, ascent, descent, diagonal
//     factor, passability.
//   - Table — immutable code→Cost lookup, built once per session.
//   - ReadCSV — decoder for the canonical tabular format
//     (code,terrain,base_cost,ascent_cost,descent_cost,diagonal_factor,passable).
//   - DefaultTable — the stock terrain set (plain, sand, paved, forest,
//     water, cliff, wall) for callers without an external table.
//
// Why:
//
//   - Game balance lives in these numbers. A lookup of an unknown code is
//     therefore a configuration fault (ErrUnknownTerrain), never a silent
//     default — defaulting would let balance drift without anyone noticing.
//
// Errors:
//
//   - ErrUnknownTerrain — lookup of a code absent from the table.
//   - ErrEmptyTable — NewTable with no records.
//   - ErrDuplicateCode — two records share a code.
//   - ErrNegativeCost — a cost field is negative.
//   - ErrBadDiagonalFactor — diagonal factor is negative.
//   - ErrMalformedRecord — a CSV row cannot be decoded.
//
// A Table is safe for unsynchronized concurrent reads; it is never
// mutated after construction.
package terrain
