// Package cost implements the saturated edge cost function of the route
// engine. Pure functions of (grid, table, endpoints, options); no state.
package cost

import (
	"math"

	"github.com/katalvlaran/isoroute/grid"
	"github.com/katalvlaran/isoroute/isocoord"
	"github.com/katalvlaran/isoroute/terrain"
)

// MaxEdgeCost is the per-edge saturation ceiling C_max. Any finite edge
// cost is clamped to this value before accumulation.
const MaxEdgeCost = 255.0

// Options configures edge cost evaluation.
type Options struct {
	// PriorityWeight is λ, the multiplier on the target cell's tactical
	// priority. Default 0 disables the priority term.
	PriorityWeight float64
	// Conn is the movement rule; under Conn4 a diagonal move is illegal
	// and costs +Inf.
	Conn grid.Connectivity
}

// DefaultOptions returns the neutral configuration: no priority term,
// 4-direction movement.
func DefaultOptions() Options {
	return Options{PriorityWeight: 0, Conn: grid.Conn4}
}

// Edge computes the saturated cost of the move from→to on m.
//
// Returns:
//
//   - a finite cost in [0, MaxEdgeCost] for a legal move;
//   - math.Inf(1) when to's terrain is impassable or the move is
//     diagonal under Conn4 — the edge is absent, never relaxed;
//   - a boundary fault when either endpoint is out of bounds;
//   - a configuration fault when to's terrain code is unknown.
//
// Elevation is read from the grid, not from the coordinate arguments, so
// callers may pass coordinates with H left zero.
// Complexity: O(1).
func Edge(m *grid.Grid, tbl *terrain.Table, from, to isocoord.GridCoord, opt Options) (float64, error) {
	// 1) Bounds: both endpoints must address real cells.
	if err := m.CheckBounds(from.X, from.Y); err != nil {
		return 0, err
	}
	if err := m.CheckBounds(to.X, to.Y); err != nil {
		return 0, err
	}

	// 2) Terrain of the target cell drives every component.
	code, _ := m.TerrainAt(to.X, to.Y)
	rec, err := tbl.Cost(code)
	if err != nil {
		return 0, err
	}
	if !rec.Passable {
		return math.Inf(1), nil
	}

	// 3) Diagonal legality and length factor.
	diagonal := grid.IsDiagonalStep(from.X, from.Y, to.X, to.Y)
	if diagonal && opt.Conn != grid.Conn8 {
		return math.Inf(1), nil
	}
	kappa := 1.0
	if diagonal {
		kappa = rec.DiagonalFactor
	}

	// 4) Elevation delta from the grid's own layer.
	hFrom, _ := m.ElevationAt(from.X, from.Y)
	hTo, _ := m.ElevationAt(to.X, to.Y)
	deltaH := float64(hTo - hFrom)

	// 5) Tactical priority of the target cell.
	p, _ := m.PriorityAt(to.X, to.Y)

	c := rec.Base*kappa +
		rec.Ascent*math.Max(0, deltaH) +
		rec.Descent*math.Max(0, -deltaH) +
		opt.PriorityWeight*p

	// 6) Per-edge saturation, applied before any accumulation.
	if c > MaxEdgeCost {
		return MaxEdgeCost, nil
	}

	return c, nil
}

// MinBase returns the minimum base cost among passable cells actually
// present on m — the admissible heuristic scale. Unknown codes are
// configuration faults. Falls back to 1.0 when the map holds no passable
// cell, keeping heuristics finite.
// Complexity: O(W×H).
func MinBase(m *grid.Grid, tbl *terrain.Table) (float64, error) {
	minBase := math.Inf(1)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			code, _ := m.TerrainAt(x, y)
			rec, err := tbl.Cost(code)
			if err != nil {
				return 0, err
			}
			if rec.Passable && rec.Base < minBase {
				minBase = rec.Base
			}
		}
	}
	if math.IsInf(minBase, 1) {
		return 1.0, nil
	}

	return minBase, nil
}
