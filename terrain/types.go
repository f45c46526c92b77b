// Package terrain defines the terrain cost record, the immutable lookup
// table, and the sentinel errors of the terrain configuration layer.
package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain table construction and lookup.
var (
	// ErrUnknownTerrain indicates a lookup of a code absent from the table.
	// Configuration fault: never substituted with a default record.
	ErrUnknownTerrain = errors.New("terrain: unknown terrain code")

	// ErrEmptyTable indicates NewTable was given no records.
	ErrEmptyTable = errors.New("terrain: table must contain at least one record")

	// ErrDuplicateCode indicates two records share the same code.
	ErrDuplicateCode = errors.New("terrain: duplicate terrain code")

	// ErrNegativeCost indicates a negative base, ascent, or descent cost.
	ErrNegativeCost = errors.New("terrain: cost fields must be non-negative")

	// ErrBadDiagonalFactor indicates a negative diagonal factor.
	ErrBadDiagonalFactor = errors.New("terrain: diagonal factor must be non-negative")

	// ErrMalformedRecord indicates a CSV row that cannot be decoded.
	ErrMalformedRecord = errors.New("terrain: malformed terrain record")
)

// DiagonalDefault is the conventional diagonal step factor, √2.
// It matches the octile heuristic's diagonal constant exactly: a stock
// diagonal factor below √2 would make the octile estimate overestimate
// diagonal steps and void A* admissibility.
const DiagonalDefault = 1.41421356237

// Cost holds the movement cost parameters of one terrain type.
// All numeric fields are non-negative; a record with Passable=false is
// impassable regardless of its numeric fields.
type Cost struct {
	// Code is the single-character terrain identifier used in map layers.
	Code byte
	// Name is the human-readable terrain name.
	Name string
	// Base is the cost of entering a cell of this terrain.
	Base float64
	// Ascent is the cost per elevation level climbed when entering.
	Ascent float64
	// Descent is the cost per elevation level descended when entering.
	Descent float64
	// DiagonalFactor scales Base for diagonal entry (conventionally √2).
	DiagonalFactor float64
	// Passable reports whether the terrain can be entered at all.
	Passable bool
}

// validate checks the field invariants of a single record.
func (c Cost) validate() error {
	if c.Base < 0 || c.Ascent < 0 || c.Descent < 0 {
		return fmt.Errorf("%w: code %q", ErrNegativeCost, c.Code)
	}
	if c.DiagonalFactor < 0 {
		return fmt.Errorf("%w: code %q", ErrBadDiagonalFactor, c.Code)
	}

	return nil
}

// Table is an immutable mapping from terrain code to Cost.
// Built once via NewTable / DefaultTable; safe for concurrent reads.
type Table struct {
	costs map[byte]Cost
}
