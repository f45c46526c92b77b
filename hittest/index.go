package hittest

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/isoroute/isocoord"
)

// pointQueryPad widens a point into a degenerate query rectangle:
// rtreego rejects zero-length extents.
const pointQueryPad = 1e-9

// cellEntry is one tile diamond in the spatial index: the owning cell,
// its polygon for exact containment, and its bounding box for the tree.
type cellEntry struct {
	coord isocoord.GridCoord
	poly  orb.Polygon
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *cellEntry) Bounds() rtreego.Rect { return e.rect }

// Index answers point-to-cell queries from an R-tree of per-cell
// diamond polygons. It trades O(W·H) construction for queries that stay
// fast on large maps and for callers that already batch spatial lookups.
type Index struct {
	cfg  isocoord.IsoConfig
	tree *rtreego.Rtree
}

// NewIndex builds the spatial index for a width×height grid rendered
// with cfg. Every cell's diamond is inserted at elevation 0.
func NewIndex(cfg isocoord.IsoConfig, width, height int) (*Index, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("hittest: non-positive grid size %dx%d", width, height)
	}

	tree := rtreego.NewTree(2, 25, 50)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			entry, err := newCellEntry(isocoord.GridCoord{X: x, Y: y}, cfg)
			if err != nil {
				return nil, err
			}
			tree.Insert(entry)
		}
	}

	return &Index{cfg: cfg, tree: tree}, nil
}

// newCellEntry builds the diamond polygon and bounding box for one cell.
func newCellEntry(g isocoord.GridCoord, cfg isocoord.IsoConfig) (*cellEntry, error) {
	c := isocoord.ToIso(g, cfg)
	hw := cfg.TileWidth / 2
	hh := cfg.TileHeight / 2

	// Diamond corners clockwise from the top vertex; the ring repeats
	// the first point to close.
	ring := orb.Ring{
		{c.X, c.Y - hh},
		{c.X + hw, c.Y},
		{c.X, c.Y + hh},
		{c.X - hw, c.Y},
		{c.X, c.Y - hh},
	}

	rect, err := rtreego.NewRect(
		rtreego.Point{c.X - hw, c.Y - hh},
		[]float64{cfg.TileWidth, cfg.TileHeight},
	)
	if err != nil {
		return nil, fmt.Errorf("hittest: cell (%d,%d) bounds: %w", g.X, g.Y, err)
	}

	return &cellEntry{coord: g, poly: orb.Polygon{ring}, rect: rect}, nil
}

// Resolve returns the grid cell whose diamond contains p, and whether
// any cell does. When p sits exactly on a shared diamond edge, more
// than one polygon can report containment; the winner is the cell in
// whose local frame the point sits deepest (smallest |u|+|v|), ties
// broken by (Y, X) so repeated queries agree.
func (ix *Index) Resolve(p isocoord.IsoCoord) (isocoord.GridCoord, bool) {
	bbox, err := rtreego.NewRect(
		rtreego.Point{p.X - pointQueryPad, p.Y - pointQueryPad},
		[]float64{2 * pointQueryPad, 2 * pointQueryPad},
	)
	if err != nil {
		return isocoord.GridCoord{}, false
	}

	var (
		best      isocoord.GridCoord
		bestDepth = math.Inf(1)
		found     bool
	)

	for _, spatial := range ix.tree.SearchIntersect(bbox) {
		entry, ok := spatial.(*cellEntry)
		if !ok || !planar.PolygonContains(entry.poly, orb.Point{p.X, p.Y}) {
			continue
		}

		u, v := isocoord.DiamondLocal(p, isocoord.ToIso(entry.coord, ix.cfg), ix.cfg)
		depth := math.Abs(u) + math.Abs(v)

		if !found || depth < bestDepth ||
			(depth == bestDepth && beforeRowMajor(entry.coord, best)) {
			best = entry.coord
			bestDepth = depth
			found = true
		}
	}

	return best, found
}

// beforeRowMajor reports whether a precedes b in (Y, X) order.
func beforeRowMajor(a, b isocoord.GridCoord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}
