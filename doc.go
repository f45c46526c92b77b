// Package isoroute is a route-search engine for isometric tile maps:
// weighted shortest paths over a grid, plus the coordinate machinery a
// renderer needs to feed it clicks and draw its answers.
//
// 🚀 What is isoroute?
//
//	A grid-native pathfinding toolkit that brings together:
//		• Coordinate transforms: grid ↔ isometric screen space, elevation-aware
//		• Hit-testing: screen point → owning tile, diamond-exact, with an R-tree index
//		• Terrain costs: per-code base/ascent/descent weights, CSV-loadable
//		• Route search: Dijkstra and A* over the same cost function, byte-equal answers
//		• Rendering: path overlays, metrics, and algorithm comparisons as plain text
//
// ✨ Why choose isoroute?
//
//   - Deterministic – equal-cost ties break the same way on every run
//   - Exact agreement – Dijkstra and A* return the same total cost, always
//   - Grid-native – no graph construction step, the map is the graph
//   - Separable – search never imports screen space, screen space never imports search
//
// Under the hood, everything is organized under these subpackages:
//
//	isocoord/ — grid ↔ isometric transforms, diamond test, distance metrics
//	terrain/  — terrain cost table, validation, CSV loading
//	grid/     — multi-layer map: terrain, elevation, priority, connectivity
//	cost/     — the shared per-edge cost function with saturation
//	route/    — Dijkstra and A* search with abort controls
//	hittest/  — point-to-cell resolution, direct and R-tree indexed
//	render/   — text output: path maps, metrics, comparisons
//
// Quick ASCII example:
//
//	      0 1 2 3
//	    +---------+
//	  0 | S @ @ . |
//	  1 | # # @ . |
//	  2 | . . @ G |
//	    +---------+
//
//	a route threading the gap in a wall, start to goal.
//
// The cmd/isoroute binary wires the pipeline end to end: load a map,
// search, and print the overlay.
//
//	go get github.com/katalvlaran/isoroute
package isoroute
