package hittest

import (
	"github.com/katalvlaran/isoroute/isocoord"
)

// fallbackOffsets is the fixed neighbor probe order: up, down, left,
// right in grid space. The order matters: it is what makes boundary
// claims deterministic when rounding lands the inverse transform one
// cell off.
var fallbackOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Resolver maps screen-space points to grid cells without any index
// structure: one inverse transform, at most five diamond tests.
type Resolver struct {
	cfg    isocoord.IsoConfig
	width  int
	height int
}

// NewResolver builds a Resolver for a width×height grid rendered with
// cfg. Non-positive dimensions yield a resolver that misses everywhere.
func NewResolver(cfg isocoord.IsoConfig, width, height int) *Resolver {
	return &Resolver{cfg: cfg, width: width, height: height}
}

// Resolve returns the grid cell whose diamond contains p, and whether
// any cell does. The elevation of the returned cell is always 0: the
// screen position alone cannot distinguish a raised tile from the flat
// tile behind it.
//
// Steps:
//  1. Invert the transform at elevation 0 to get a candidate cell.
//  2. Accept the candidate if p lies inside its diamond.
//  3. Otherwise probe up, down, left, right in that order and accept
//     the first in-bounds neighbor whose diamond contains p.
//  4. No match is a miss, not an error.
func (r *Resolver) Resolve(p isocoord.IsoCoord) (isocoord.GridCoord, bool) {
	cand := isocoord.ToGrid(p, 0, r.cfg)

	if r.contains(cand, p) {
		return cand, true
	}

	for _, off := range fallbackOffsets {
		n := isocoord.GridCoord{X: cand.X + off[0], Y: cand.Y + off[1]}
		if r.contains(n, p) {
			return n, true
		}
	}

	return isocoord.GridCoord{}, false
}

// contains reports whether the in-bounds cell g owns the point p.
func (r *Resolver) contains(g isocoord.GridCoord, p isocoord.IsoCoord) bool {
	if g.X < 0 || g.X >= r.width || g.Y < 0 || g.Y >= r.height {
		return false
	}

	u, v := isocoord.DiamondLocal(p, isocoord.ToIso(g, r.cfg), r.cfg)

	return isocoord.InDiamond(u, v)
}
