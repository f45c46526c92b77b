// Package isocoord defines the value types and sentinel errors of the
// coordinate layer: grid coordinates, isometric screen coordinates, and
// the validated projection configuration shared by transforms and
// hit-testing.
package isocoord

import "errors"

// Sentinel errors for isometric configuration validation.
// All are configuration faults raised at construction time, never at
// transform call time.
var (
	// ErrNonPositiveTileWidth indicates TileWidth ≤ 0.
	ErrNonPositiveTileWidth = errors.New("isocoord: tile width must be positive")

	// ErrNonPositiveTileHeight indicates TileHeight ≤ 0.
	ErrNonPositiveTileHeight = errors.New("isocoord: tile height must be positive")

	// ErrNegativeElevationScale indicates ElevationScale < 0.
	// Zero is valid and disables vertical displacement entirely.
	ErrNegativeElevationScale = errors.New("isocoord: elevation scale must be non-negative")
)

// Default projection parameters, matching a classic 2:1 isometric tile.
const (
	// DefaultTileWidth is the default diamond width in pixels.
	DefaultTileWidth = 64.0
	// DefaultTileHeight is the default diamond height in pixels.
	DefaultTileHeight = 32.0
	// DefaultElevationScale is the default vertical pixels per elevation level.
	DefaultElevationScale = 16.0
)

// GridCoord is a logical grid cell address with elevation.
// It is an immutable value; bounds are a property of the grid a
// coordinate is used against, not of the coordinate itself.
type GridCoord struct {
	X, Y int // Cell column and row in grid space
	H    int // Elevation level (0 = ground)
}

// IsoCoord is a position in isometric screen space.
// Screen space is unbounded; no invariant applies.
type IsoCoord struct {
	X, Y float64
}

// IsoConfig holds the isometric projection parameters.
// Construct via NewIsoConfig (validated) or DefaultIsoConfig; treat as
// immutable for its lifetime. A single IsoConfig may be shared read-only
// by any number of concurrent transforms.
type IsoConfig struct {
	// TileWidth is the diamond width in screen units. Must be > 0.
	TileWidth float64
	// TileHeight is the diamond height in screen units. Must be > 0.
	TileHeight float64
	// ElevationScale is the vertical offset per elevation level. Must be ≥ 0.
	ElevationScale float64
}

// NewIsoConfig validates and returns an IsoConfig.
// Returns ErrNonPositiveTileWidth, ErrNonPositiveTileHeight, or
// ErrNegativeElevationScale on invalid parameters. Validation happens
// here exactly once so the transform functions never fail at call time.
func NewIsoConfig(tileWidth, tileHeight, elevationScale float64) (IsoConfig, error) {
	if tileWidth <= 0 {
		return IsoConfig{}, ErrNonPositiveTileWidth
	}
	if tileHeight <= 0 {
		return IsoConfig{}, ErrNonPositiveTileHeight
	}
	if elevationScale < 0 {
		return IsoConfig{}, ErrNegativeElevationScale
	}

	return IsoConfig{
		TileWidth:      tileWidth,
		TileHeight:     tileHeight,
		ElevationScale: elevationScale,
	}, nil
}

// DefaultIsoConfig returns the 64×32 projection with 16px per elevation
// level. Always valid.
func DefaultIsoConfig() IsoConfig {
	return IsoConfig{
		TileWidth:      DefaultTileWidth,
		TileHeight:     DefaultTileHeight,
		ElevationScale: DefaultElevationScale,
	}
}
