// Package route implements the grid-native shortest-path engine:
// exhaustive (Dijkstra) and heuristic-guided (A*) search over a
// multi-layer map, sharing one cost function and one deterministic
// frontier.
//
// What:
//
//   - Find — one entry point for both algorithms; returns the path
//     (start..goal inclusive), its total saturated cost, and search
//     statistics (nodes expanded, wall-clock duration).
//   - ManhattanHeuristic / OctileHeuristic — admissible estimates scaled
//     by the map's minimum passable base cost; selected automatically
//     from the movement rule, overridable per query.
//   - Cooperative abort — an expansion cap and/or deadline checked once
//     per frontier extraction, reported as ErrAborted, distinct from
//     ErrNoPath ("gave up" vs "proven unreachable").
//
// Why:
//
//   - No graph is materialized: neighbors are enumerated from grid
//     offsets and costed on the fly, so a query allocates O(W×H) state
//     and nothing survives it.
//   - Determinism: the frontier orders by (priority, insertion sequence),
//     earlier insertion winning ties, and axis moves are relaxed before
//     diagonals. Equal-cost alternatives therefore resolve the same way
//     on every run, and straight lines beat zig-zags.
//
// Equivalence guarantee: for the same map, endpoints, and movement rule,
// Dijkstra and A* (with either admissible heuristic) return paths of
// identical total cost; the sequences themselves can differ only between
// equal-cost optima.
//
// Complexity per query: O(W×H·d·log(W×H)) time with d the neighbor
// count (4 or 8), O(W×H) memory — the lazy-decrease-key frontier may
// hold up to one entry per relaxation.
//
// Concurrency: a query owns all of its mutable state; the Grid and
// terrain Table are only read. Any number of queries may run in
// parallel over shared inputs without locking.
//
// Errors:
//
//   - ErrNilGrid, ErrNilTable — missing inputs.
//   - ErrStartImpassable, ErrGoalImpassable — an endpoint on impassable
//     terrain, rejected before searching.
//   - ErrNoPath — goal proven unreachable; a normal typed outcome.
//   - ErrAborted — expansion cap or deadline exceeded.
//   - Boundary and configuration faults from the grid, cost, and terrain
//     layers propagate unchanged.
package route
