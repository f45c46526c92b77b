// Package route defines the search configuration, result, and sentinel
// errors of the path search engine.
package route

import (
	"errors"
	"time"

	"github.com/katalvlaran/isoroute/grid"
	"github.com/katalvlaran/isoroute/isocoord"
)

// Sentinel errors returned by Find.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Find.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrNilTable indicates a nil *terrain.Table was passed to Find.
	ErrNilTable = errors.New("route: terrain table is nil")

	// ErrStartImpassable indicates the start cell's terrain is impassable.
	ErrStartImpassable = errors.New("route: start cell is impassable")

	// ErrGoalImpassable indicates the goal cell's terrain is impassable.
	ErrGoalImpassable = errors.New("route: goal cell is impassable")

	// ErrNoPath indicates the goal is unreachable through passable
	// terrain. A normal, expected outcome — not a fault.
	ErrNoPath = errors.New("route: no path between start and goal")

	// ErrAborted indicates the search hit its expansion cap or deadline
	// before proving reachability either way. Reported distinctly from
	// ErrNoPath so callers can tell "gave up" from "unreachable".
	ErrAborted = errors.New("route: search aborted before completion")
)

// Algorithm selects the search mode.
type Algorithm int

const (
	// Dijkstra explores exhaustively in order of accumulated cost.
	Dijkstra Algorithm = iota
	// AStar orders the frontier by accumulated cost plus an admissible
	// estimate of the remaining cost.
	AStar
)

// String returns "dijkstra" or "astar".
func (a Algorithm) String() string {
	if a == AStar {
		return "astar"
	}

	return "dijkstra"
}

// Heuristic estimates the remaining cost from a cell to the goal.
// minBase is the minimum passable base cost of the map; any heuristic
// used with A* must never overestimate the true remaining cost.
type Heuristic func(from, goal isocoord.GridCoord, minBase float64) float64

// ManhattanHeuristic is the admissible 4-direction estimate:
// (|dx| + |dy|) · minBase.
func ManhattanHeuristic(from, goal isocoord.GridCoord, minBase float64) float64 {
	return float64(isocoord.ManhattanDistance(from, goal)) * minBase
}

// OctileHeuristic is the admissible 8-direction estimate:
// (max(dx,dy) + (√2−1)·min(dx,dy)) · minBase.
func OctileHeuristic(from, goal isocoord.GridCoord, minBase float64) float64 {
	return isocoord.OctileDistance(from, goal) * minBase
}

// Options configures a single Find query.
type Options struct {
	// Algorithm selects Dijkstra (default) or AStar.
	Algorithm Algorithm
	// Conn is the movement rule (default Conn4).
	Conn grid.Connectivity
	// PriorityWeight is λ, the tactical priority multiplier (default 0).
	PriorityWeight float64
	// Heuristic overrides the estimate used by AStar. Nil selects
	// Manhattan for Conn4 and Octile for Conn8. Ignored by Dijkstra.
	Heuristic Heuristic
	// MaxExpansions aborts the search after this many settled cells.
	// Zero means unlimited. Checked once per frontier extraction.
	MaxExpansions int
	// Deadline aborts the search once passed. Zero means none.
	// Checked once per frontier extraction.
	Deadline time.Time
}

// Option is a functional option for Find.
type Option func(*Options)

// DefaultOptions returns the neutral query configuration: Dijkstra,
// 4-direction movement, no priority term, no abort conditions.
func DefaultOptions() Options {
	return Options{
		Algorithm:      Dijkstra,
		Conn:           grid.Conn4,
		PriorityWeight: 0,
		Heuristic:      nil,
		MaxExpansions:  0,
	}
}

// WithAlgorithm selects the search mode.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithConnectivity selects the movement rule. Conn8 additionally makes
// Octile the default heuristic.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithPriorityWeight sets λ, the multiplier applied to each target
// cell's tactical priority.
func WithPriorityWeight(lambda float64) Option {
	return func(o *Options) { o.PriorityWeight = lambda }
}

// WithHeuristic overrides the A* heuristic. The caller is responsible
// for admissibility; an overestimating heuristic voids the optimality
// guarantee.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithMaxExpansions caps the number of settled cells before the search
// gives up with ErrAborted. Zero or negative disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithDeadline aborts the search with ErrAborted once the deadline
// passes. The check is cooperative, once per frontier extraction.
func WithDeadline(d time.Time) Option {
	return func(o *Options) { o.Deadline = d }
}

// Result is the outcome of one successful Find query. Produced fresh
// per query; nothing in it aliases engine state.
type Result struct {
	// Path is the cell sequence from start to goal, inclusive, with
	// elevation filled in from the grid.
	Path []isocoord.GridCoord
	// TotalCost is the sum of saturated edge costs along Path.
	TotalCost float64
	// Algorithm records which mode produced the result.
	Algorithm Algorithm
	// NodesExpanded counts cells settled during the search.
	NodesExpanded int
	// Duration is the wall-clock time the query took.
	Duration time.Duration
}
