// Package grid defines the map value types, connectivity rules, and
// sentinel errors of the grid layer.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction, access, and parsing.
var (
	// ErrEmptyGrid indicates a terrain layer with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: terrain layer must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrLayerMismatch indicates an elevation or priority layer whose
	// dimensions differ from the terrain layer.
	ErrLayerMismatch = errors.New("grid: layer dimensions must match the terrain layer")

	// ErrUnknownCode indicates a terrain code absent from the validating
	// table. Configuration fault, raised at construction.
	ErrUnknownCode = errors.New("grid: unknown terrain code")

	// ErrNegativePriority indicates a tactical priority value < 0.
	ErrNegativePriority = errors.New("grid: priority values must be non-negative")

	// ErrOutOfBounds indicates a coordinate outside [0,W)×[0,H) on an
	// operation requiring a valid cell. Boundary fault, never clamped.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrMissingMarker indicates a start or goal marker that was expected
	// but not found.
	ErrMissingMarker = errors.New("grid: start/goal marker not found")

	// ErrMalformedLayer indicates a text layer that cannot be parsed.
	ErrMalformedLayer = errors.New("grid: malformed layer")
)

// BoundsError is the structured boundary fault: it carries the offending
// coordinate together with the bounds it violated, and unwraps to
// ErrOutOfBounds for errors.Is matching.
type BoundsError struct {
	X, Y          int // Offending coordinate
	Width, Height int // Grid bounds the coordinate fell outside of
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: coordinate (%d,%d) out of bounds [0,%d)×[0,%d)", e.X, e.Y, e.Width, e.Height)
}

// Unwrap links the structured fault to the ErrOutOfBounds sentinel.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// Connectivity selects the movement rule: orthogonal only (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 allows 4-directional movement: N, S, W, E.
	Conn4 Connectivity = iota
	// Conn8 allows 8-directional movement, diagonals included.
	Conn8
)

// Neighbor offsets, axis moves first. Relaxation order follows this
// slice, and the frontier breaks cost ties by insertion sequence, so
// axis-first ordering is what suppresses zig-zag paths at equal cost.
var (
	offsets4 = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	offsets8 = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Offsets returns the neighbor offset table for the connectivity rule.
// The returned slice is shared and must not be mutated.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// IsDiagonalStep reports whether the move between two adjacent cells
// changes both axes.
func IsDiagonalStep(fromX, fromY, toX, toY int) bool {
	return fromX != toX && fromY != toY
}
