// transform.go — the bidirectional grid↔iso affine transform pair,
// the diamond inclusion test, and grid distance metrics.
package isocoord

import "math"

// Sqrt2 is √2, the conventional diagonal step length on a unit grid.
const Sqrt2 = 1.41421356237

// ToIso converts a logical grid coordinate to its isometric screen
// position (the diamond center at elevation g.H).
//
//	X = (tw/2)(x − y)
//	Y = (th/2)(x + y) − β·h
//
// Pure and deterministic; cfg must have been validated at construction.
// Complexity: O(1).
func ToIso(g GridCoord, cfg IsoConfig) IsoCoord {
	return IsoCoord{
		X: (cfg.TileWidth / 2) * float64(g.X-g.Y),
		Y: (cfg.TileHeight/2)*float64(g.X+g.Y) - cfg.ElevationScale*float64(g.H),
	}
}

// ToGrid converts an isometric screen position back to a grid coordinate,
// given the elevation known (or assumed) at that position. Pass 0 when
// the elevation is unknown; if the true elevation differs, the result is
// approximate by β·h/(th/2) rows along the x+y axis.
//
// Inverse:
//
//	Y_adj = Y + β·h
//	x = (X/(tw/2) + Y_adj/(th/2)) / 2
//	y = (Y_adj/(th/2) − X/(tw/2)) / 2
//
// Each component is rounded to the nearest integer (half away from zero).
// Complexity: O(1).
func ToGrid(p IsoCoord, elevation int, cfg IsoConfig) GridCoord {
	yAdj := p.Y + cfg.ElevationScale*float64(elevation)

	xTerm := p.X / (cfg.TileWidth / 2)
	yTerm := yAdj / (cfg.TileHeight / 2)

	return GridCoord{
		X: int(math.Round((xTerm + yTerm) / 2)),
		Y: int(math.Round((yTerm - xTerm) / 2)),
		H: elevation,
	}
}

// ToIsoCenter converts a grid coordinate to the visual center of its
// tile, i.e. ToIso shifted down by a quarter tile. Useful as a sprite
// anchor; the plain ToIso value is the diamond's top-origin reference.
// Complexity: O(1).
func ToIsoCenter(g GridCoord, cfg IsoConfig) IsoCoord {
	base := ToIso(g, cfg)

	return IsoCoord{
		X: base.X,
		Y: base.Y + cfg.TileHeight/4,
	}
}

// InDiamond reports whether the tile-local point (u, v) lies inside the
// unit diamond: |u| + |v| ≤ 1. Boundary points are inside. The region is
// symmetric under reflection about either axis.
func InDiamond(u, v float64) bool {
	return math.Abs(u)+math.Abs(v) <= 1
}

// DiamondLocal maps a screen point p into the local (u, v) frame of the
// tile whose diamond center is c:
//
//	u = 2/tw·(X − Xc),  v = 2/th·(Y − Yc)
//
// so that the tile's diamond becomes the unit diamond |u|+|v| ≤ 1.
func DiamondLocal(p, c IsoCoord, cfg IsoConfig) (u, v float64) {
	u = (p.X - c.X) / (cfg.TileWidth / 2)
	v = (p.Y - c.Y) / (cfg.TileHeight / 2)

	return u, v
}

// ManhattanDistance returns |ax−bx| + |ay−by|, the 4-direction grid
// metric. Elevation is ignored.
func ManhattanDistance(a, b GridCoord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// OctileDistance returns max(dx,dy) + (√2−1)·min(dx,dy), the 8-direction
// grid metric. Elevation is ignored.
func OctileDistance(a, b GridCoord) float64 {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}

	return float64(dx) + (Sqrt2-1)*float64(dy)
}

// abs is integer absolute value; math.Abs would force float conversion.
func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
