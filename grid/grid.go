// grid.go — construction and read-only access for the multi-layer map.
package grid

import (
	"fmt"

	"github.com/katalvlaran/isoroute/isocoord"
	"github.com/katalvlaran/isoroute/terrain"
)

// Marker codes recognized in terrain layers.
const (
	// MarkerStart flags the start cell in a terrain layer.
	MarkerStart = 'S'
	// MarkerGoal flags the goal cell in a terrain layer.
	MarkerGoal = 'G'
)

// Grid is the immutable multi-layer map: terrain codes, elevation
// levels, and tactical priority penalties over a W×H rectangle.
// All layers are deep-copied at construction; a Grid is safe for
// unsynchronized concurrent reads and is never mutated by a query.
type Grid struct {
	width, height int
	terrain       [][]byte
	elevation     [][]int
	priority      [][]float64

	start, goal       isocoord.GridCoord
	hasStart, hasGoal bool
}

// Option customizes Grid construction.
type Option func(*options)

type options struct {
	elevation [][]int
	priority  [][]float64
	table     *terrain.Table
}

// WithElevation attaches an elevation layer. Dimensions must match the
// terrain layer (ErrLayerMismatch otherwise). Default: all zeros.
func WithElevation(levels [][]int) Option {
	return func(o *options) { o.elevation = levels }
}

// WithPriority attaches a tactical priority layer; every value must be
// ≥ 0. Dimensions must match the terrain layer. Default: all zeros.
func WithPriority(p [][]float64) Option {
	return func(o *options) { o.priority = p }
}

// WithTable validates every terrain code against tbl at construction,
// turning a typo in a map file into an eager ErrUnknownCode instead of a
// mid-search fault.
func WithTable(tbl *terrain.Table) Option {
	return func(o *options) { o.table = tbl }
}

// New constructs a Grid from a rectangular terrain layer.
// The terrain layer and any attached layers are deep-copied. 'S' and 'G'
// markers are recorded as start/goal positions (the cells themselves
// keep their marker code; the terrain table prices them as plain
// ground). Returns ErrEmptyGrid, ErrNonRectangular, ErrLayerMismatch,
// ErrUnknownCode, or ErrNegativePriority.
// Complexity: O(W×H) time and memory.
func New(terrainLayer [][]byte, opts ...Option) (*Grid, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(terrainLayer) == 0 || len(terrainLayer[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(terrainLayer), len(terrainLayer[0])
	for _, row := range terrainLayer {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{width: w, height: h}

	// Deep-copy terrain, recording markers and validating codes.
	g.terrain = make([][]byte, h)
	for y := 0; y < h; y++ {
		g.terrain[y] = make([]byte, w)
		copy(g.terrain[y], terrainLayer[y])
		for x, code := range g.terrain[y] {
			if o.table != nil && !o.table.Has(code) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCode, code, x, y)
			}
			switch code {
			case MarkerStart:
				g.start, g.hasStart = isocoord.GridCoord{X: x, Y: y}, true
			case MarkerGoal:
				g.goal, g.hasGoal = isocoord.GridCoord{X: x, Y: y}, true
			}
		}
	}

	// Elevation layer: deep copy or all-zero default.
	g.elevation = make([][]int, h)
	for y := 0; y < h; y++ {
		g.elevation[y] = make([]int, w)
		if o.elevation != nil {
			if len(o.elevation) != h || len(o.elevation[y]) != w {
				return nil, fmt.Errorf("%w: elevation", ErrLayerMismatch)
			}
			copy(g.elevation[y], o.elevation[y])
		}
	}

	// Priority layer: deep copy or all-zero default; P(v) ≥ 0.
	g.priority = make([][]float64, h)
	for y := 0; y < h; y++ {
		g.priority[y] = make([]float64, w)
		if o.priority != nil {
			if len(o.priority) != h || len(o.priority[y]) != w {
				return nil, fmt.Errorf("%w: priority", ErrLayerMismatch)
			}
			for x, p := range o.priority[y] {
				if p < 0 {
					return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrNegativePriority, p, x, y)
				}
				g.priority[y][x] = p
			}
		}
	}

	// Elevation fills in the H component of the markers.
	if g.hasStart {
		g.start.H = g.elevation[g.start.Y][g.start.X]
	}
	if g.hasGoal {
		g.goal.H = g.elevation[g.goal.Y][g.goal.X]
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within [0,W)×[0,H).
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CheckBounds returns a *BoundsError for an out-of-range coordinate and
// nil otherwise. The fault carries the offending coordinate and the
// bounds; callers must propagate it, never clamp.
func (g *Grid) CheckBounds(x, y int) error {
	if !g.InBounds(x, y) {
		return &BoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}

	return nil
}

// TerrainAt returns the terrain code at (x,y), or a boundary fault.
func (g *Grid) TerrainAt(x, y int) (byte, error) {
	if err := g.CheckBounds(x, y); err != nil {
		return 0, err
	}

	return g.terrain[y][x], nil
}

// ElevationAt returns the elevation level at (x,y), or a boundary fault.
func (g *Grid) ElevationAt(x, y int) (int, error) {
	if err := g.CheckBounds(x, y); err != nil {
		return 0, err
	}

	return g.elevation[y][x], nil
}

// PriorityAt returns the tactical priority at (x,y), or a boundary fault.
func (g *Grid) PriorityAt(x, y int) (float64, error) {
	if err := g.CheckBounds(x, y); err != nil {
		return 0, err
	}

	return g.priority[y][x], nil
}

// Coord returns the full grid coordinate at (x,y) with its elevation
// filled in, or a boundary fault.
func (g *Grid) Coord(x, y int) (isocoord.GridCoord, error) {
	if err := g.CheckBounds(x, y); err != nil {
		return isocoord.GridCoord{}, err
	}

	return isocoord.GridCoord{X: x, Y: y, H: g.elevation[y][x]}, nil
}

// Start returns the 'S' marker position, if the terrain layer had one.
func (g *Grid) Start() (isocoord.GridCoord, bool) { return g.start, g.hasStart }

// Goal returns the 'G' marker position, if the terrain layer had one.
func (g *Grid) Goal() (isocoord.GridCoord, bool) { return g.goal, g.hasGoal }

// index maps (x,y) to a row-major index: y*W + x.
func (g *Grid) index(x, y int) int { return y*g.width + x }

// Index exposes the row-major index of an in-bounds cell. Search state
// is kept in dense slices keyed by this index.
func (g *Grid) Index(x, y int) int { return g.index(x, y) }

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}
