// Package route implements Dijkstra and A* over a multi-layer grid.
//
// Both modes share one relaxation loop and one frontier; A* differs only
// in the key under which a cell waits in the heap. The frontier uses the
// lazy-decrease-key strategy: improvements push duplicates, stale
// entries are skipped when popped via the settled check.
package route

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/isoroute/cost"
	"github.com/katalvlaran/isoroute/grid"
	"github.com/katalvlaran/isoroute/isocoord"
	"github.com/katalvlaran/isoroute/terrain"
)

// noPredecessor marks a cell with no recorded predecessor.
const noPredecessor = -1

// Find computes the minimum-cost path from start to goal on m.
//
// Validation order:
//  1. m non-nil (ErrNilGrid), tbl non-nil (ErrNilTable).
//  2. start and goal in bounds (boundary fault with the offending
//     coordinate; never clamped).
//  3. start and goal terrain known (configuration fault) and passable
//     (ErrStartImpassable / ErrGoalImpassable).
//
// Outcomes: a Result on success; ErrNoPath when the frontier drains
// without settling the goal; ErrAborted when an expansion cap or
// deadline fires first.
//
// Determinism: the frontier key is (priority, insertion sequence) with
// earlier insertion winning, and neighbors relax axis-first, so repeated
// queries yield byte-identical paths.
//
// Complexity: O(W×H·d·log(W×H)) time, O(W×H) memory.
func Find(m *grid.Grid, tbl *terrain.Table, start, goal isocoord.GridCoord, opts ...Option) (Result, error) {
	began := time.Now()

	// 1) Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Inputs.
	if m == nil {
		return Result{}, ErrNilGrid
	}
	if tbl == nil {
		return Result{}, ErrNilTable
	}
	if err := m.CheckBounds(start.X, start.Y); err != nil {
		return Result{}, err
	}
	if err := m.CheckBounds(goal.X, goal.Y); err != nil {
		return Result{}, err
	}

	// 3) Endpoint passability. A wall endpoint can never be on a path;
	//    rejecting it here gives the caller a sharper error than ErrNoPath.
	if err := checkPassable(m, tbl, start, ErrStartImpassable); err != nil {
		return Result{}, err
	}
	if err := checkPassable(m, tbl, goal, ErrGoalImpassable); err != nil {
		return Result{}, err
	}

	// 4) Heuristic: explicit override, else derived from the movement rule.
	//    Dijkstra runs with a zero heuristic through the same loop.
	h := cfg.Heuristic
	if h == nil {
		if cfg.Conn == grid.Conn8 {
			h = OctileHeuristic
		} else {
			h = ManhattanHeuristic
		}
	}
	minBase := 0.0
	if cfg.Algorithm == AStar {
		mb, err := cost.MinBase(m, tbl)
		if err != nil {
			return Result{}, err
		}
		minBase = mb
	}

	// 5) Per-query state, owned exclusively by this call.
	r := &runner{
		m:       m,
		tbl:     tbl,
		cfg:     cfg,
		h:       h,
		minBase: minBase,
		goal:    goal,
		distTo:  make([]float64, m.Width()*m.Height()),
		pred:    make([]int32, m.Width()*m.Height()),
		settled: make([]bool, m.Width()*m.Height()),
	}
	r.init(start)

	if err := r.process(); err != nil {
		return Result{}, err
	}

	// 6) Reconstruction and statistics.
	goalIdx := m.Index(goal.X, goal.Y)
	if !r.settled[goalIdx] {
		return Result{}, fmt.Errorf("%w: (%d,%d)→(%d,%d)", ErrNoPath, start.X, start.Y, goal.X, goal.Y)
	}

	path := r.reconstruct(m.Index(start.X, start.Y), goalIdx)

	return Result{
		Path:          path,
		TotalCost:     r.distTo[goalIdx],
		Algorithm:     cfg.Algorithm,
		NodesExpanded: r.expanded,
		Duration:      time.Since(began),
	}, nil
}

// checkPassable verifies an endpoint's terrain exists in the table and
// is passable, returning fault on unknown codes unchanged.
func checkPassable(m *grid.Grid, tbl *terrain.Table, c isocoord.GridCoord, impassable error) error {
	code, err := m.TerrainAt(c.X, c.Y)
	if err != nil {
		return err
	}
	rec, err := tbl.Cost(code)
	if err != nil {
		return err
	}
	if !rec.Passable {
		return fmt.Errorf("%w: (%d,%d)", impassable, c.X, c.Y)
	}

	return nil
}

// runner holds the mutable state of a single Find execution.
type runner struct {
	m       *grid.Grid
	tbl     *terrain.Table
	cfg     Options
	h       Heuristic
	minBase float64
	goal    isocoord.GridCoord

	distTo  []float64 // best-cost-so-far per cell index, +Inf when unvisited
	pred    []int32   // predecessor cell index, noPredecessor when none
	settled []bool    // true once a cell's cost is final

	pq       frontier
	seq      uint64 // insertion sequence, the deterministic tie-break
	expanded int
}

// init seeds distances, predecessors, and pushes the start cell.
func (r *runner) init(start isocoord.GridCoord) {
	for i := range r.distTo {
		r.distTo[i] = math.Inf(1)
		r.pred[i] = noPredecessor
	}

	startIdx := r.m.Index(start.X, start.Y)
	r.distTo[startIdx] = 0

	heap.Init(&r.pq)
	r.push(startIdx, 0)
}

// push enqueues a cell with its current best distance under the mode's
// frontier key, stamping the insertion sequence.
func (r *runner) push(idx int, dist float64) {
	priority := dist
	if r.cfg.Algorithm == AStar {
		x, y := r.m.Coordinate(idx)
		priority += r.h(isocoord.GridCoord{X: x, Y: y}, r.goal, r.minBase)
	}
	heap.Push(&r.pq, frontierItem{idx: idx, dist: dist, priority: priority, seq: r.seq})
	r.seq++
}

// process runs the shared relaxation loop. It stops successfully when
// the goal is settled, exhausts the frontier for ErrNoPath (decided by
// the caller from the settled flags), or aborts on cap/deadline.
func (r *runner) process() error {
	goalIdx := r.m.Index(r.goal.X, r.goal.Y)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)

		// Stale lazy-decrease-key entry: the cell settled via a cheaper path.
		if r.settled[item.idx] {
			continue
		}

		// Cooperative abort, evaluated once per extraction.
		if r.cfg.MaxExpansions > 0 && r.expanded >= r.cfg.MaxExpansions {
			return fmt.Errorf("%w: expansion cap %d reached", ErrAborted, r.cfg.MaxExpansions)
		}
		if !r.cfg.Deadline.IsZero() && time.Now().After(r.cfg.Deadline) {
			return fmt.Errorf("%w: deadline exceeded", ErrAborted)
		}

		r.settled[item.idx] = true
		if item.idx == goalIdx {
			return nil
		}
		r.expanded++

		if err := r.relax(item.idx, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve each neighbor of the settled cell u.
// Edges costing +Inf (impassable target, illegal diagonal) are absent
// from the graph and never relaxed.
func (r *runner) relax(uIdx int, uDist float64) error {
	ux, uy := r.m.Coordinate(uIdx)
	from := isocoord.GridCoord{X: ux, Y: uy}
	edgeOpt := cost.Options{PriorityWeight: r.cfg.PriorityWeight, Conn: r.cfg.Conn}

	for _, d := range r.cfg.Conn.Offsets() {
		vx, vy := ux+d[0], uy+d[1]
		if !r.m.InBounds(vx, vy) {
			continue
		}
		vIdx := r.m.Index(vx, vy)
		if r.settled[vIdx] {
			continue
		}

		c, err := cost.Edge(r.m, r.tbl, from, isocoord.GridCoord{X: vx, Y: vy}, edgeOpt)
		if err != nil {
			return err
		}
		if math.IsInf(c, 1) {
			continue
		}

		// Strict improvement only: equal-cost rediscoveries keep the
		// earlier predecessor, preserving the insertion-order tie-break.
		newDist := uDist + c
		if newDist >= r.distTo[vIdx] {
			continue
		}

		r.distTo[vIdx] = newDist
		r.pred[vIdx] = int32(uIdx)
		r.push(vIdx, newDist)
	}

	return nil
}

// reconstruct walks predecessor links goal→start and reverses, filling
// in elevation from the grid.
func (r *runner) reconstruct(startIdx, goalIdx int) []isocoord.GridCoord {
	var path []isocoord.GridCoord
	for idx := goalIdx; ; idx = int(r.pred[idx]) {
		x, y := r.m.Coordinate(idx)
		c, _ := r.m.Coord(x, y)
		path = append(path, c)
		if idx == startIdx {
			break
		}
	}

	// Reverse in place: predecessors were collected goal-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierItem is one enqueued cell: its index, accumulated distance,
// heap priority (distance, plus heuristic under A*), and insertion
// sequence for deterministic tie-breaking.
type frontierItem struct {
	idx      int
	dist     float64
	priority float64
	seq      uint64
}

// frontier is a min-heap of frontierItem ordered by (priority, seq).
// Earlier-inserted entries win ties, which both makes output reproducible
// and prefers straight continuations over later-discovered zig-zags.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
