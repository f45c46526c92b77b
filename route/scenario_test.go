// Scenario tests: strategic behaviors the cost model must produce —
// cheap-road detours, cliff avoidance, tactical priority avoidance, and
// straight-line preference at equal cost.
package route_test

import (
	"testing"

	"github.com/katalvlaran/isoroute/grid"
	"github.com/katalvlaran/isoroute/route"
	"github.com/katalvlaran/isoroute/terrain"
	"github.com/stretchr/testify/require"
)

// contains reports whether the path visits cell (x,y).
func contains(path [][2]int, x, y int) bool {
	for _, c := range path {
		if c[0] == x && c[1] == y {
			return true
		}
	}

	return false
}

// TestScenario_DetourViaPavedRoad: a 1×4 sand strip costs 2.5 per cell;
// dropping onto the paved row (0.8 per cell) and climbing back up is
// cheaper, so the detour must be chosen.
func TestScenario_DetourViaPavedRoad(t *testing.T) {
	tbl := terrain.DefaultTable()
	m := mustGrid(t, []string{
		"SsssG",
		"=====",
	})

	for _, alg := range []route.Algorithm{route.Dijkstra, route.AStar} {
		res, err := route.Find(m, tbl, at(0, 0), at(4, 0), route.WithAlgorithm(alg))
		require.NoError(t, err)

		// down onto paved 0.8, four paved steps 0.8×4, up into G 1.0.
		require.InDelta(t, 5.0, res.TotalCost, 1e-9, "algorithm %v", alg)

		path := xy(res.Path)
		require.True(t, contains(path, 0, 1), "detour cell missing from path")
		for x := 1; x <= 3; x++ {
			require.False(t, contains(path, x, 0), "path crosses sand at (%d,0)", x)
		}
	}
}

// TestScenario_DetourCostBreakdown pins the canonical detour cost
// breakdown: down onto plain 1.0, three paved steps 0.8×3, up into the
// goal 1.0, total 4.4, against a sand row that would cost 6.0 direct.
func TestScenario_DetourCostBreakdown(t *testing.T) {
	tbl := terrain.DefaultTable()
	m := mustGrid(t, []string{
		"SssG",
		".===",
	})

	want := [][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {3, 0}}
	for _, alg := range []route.Algorithm{route.Dijkstra, route.AStar} {
		res, err := route.Find(m, tbl, at(0, 0), at(3, 0), route.WithAlgorithm(alg))
		require.NoError(t, err)
		require.InDelta(t, 4.4, res.TotalCost, 1e-9, "algorithm %v", alg)
		require.Equal(t, want, xy(res.Path), "algorithm %v", alg)
	}
}

// TestScenario_CliffAvoidance: the direct route crosses a cliff cell
// whose ascent term alone costs 50; the flat detour wins and the cliff
// cell never appears on the path.
func TestScenario_CliffAvoidance(t *testing.T) {
	tbl := terrain.DefaultTable()
	m := mustGrid(t, []string{
		"S^G",
		"...",
	}, grid.WithElevation([][]int{
		{0, 5, 0},
		{0, 0, 0},
	}))

	res, err := route.Find(m, tbl, at(0, 0), at(2, 0))
	require.NoError(t, err)

	path := xy(res.Path)
	require.False(t, contains(path, 1, 0), "path crosses the cliff cell")
	// down, right, right, up into G — four flat moves at 1.0 each.
	require.InDelta(t, 4.0, res.TotalCost, 1e-9)
}

// TestScenario_PriorityAvoidance: with λ = 1 a cell carrying P(v) = 5 is
// avoided whenever the detour's extra terrain cost is below 5; with
// λ = 0 the same cell is walked straight through.
func TestScenario_PriorityAvoidance(t *testing.T) {
	tbl := terrain.DefaultTable()
	layer := []string{
		"S.G",
		"...",
	}
	priority := [][]float64{
		{0, 5, 0},
		{0, 0, 0},
	}

	// Ignoring priority: straight through the danger cell, cost 2.
	m := mustGrid(t, layer, grid.WithPriority(priority))
	res, err := route.Find(m, tbl, at(0, 0), at(2, 0))
	require.NoError(t, err)
	require.True(t, contains(xy(res.Path), 1, 0))
	require.InDelta(t, 2.0, res.TotalCost, 1e-9)

	// Weighted: direct would cost 2 + 5; the 4-step detour costs 4.
	res, err = route.Find(m, tbl, at(0, 0), at(2, 0), route.WithPriorityWeight(1.0))
	require.NoError(t, err)
	require.False(t, contains(xy(res.Path), 1, 0), "path crosses the danger cell")
	require.InDelta(t, 4.0, res.TotalCost, 1e-9)
}

// TestScenario_ZigZagSuppression: on a uniform grid with the diagonal
// factor forced to 1.0, a diagonal/axis zig-zag costs exactly the same
// as the straight row — the tie-break must still produce the straight
// line, in both modes.
func TestScenario_ZigZagSuppression(t *testing.T) {
	flat, err := terrain.NewTable([]terrain.Cost{
		{Code: '.', Name: "flat", Base: 1.0, Ascent: 0, Descent: 0, DiagonalFactor: 1.0, Passable: true},
	})
	require.NoError(t, err)

	m := mustGrid(t, []string{
		".....",
		".....",
		".....",
	})

	want := [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}}
	for _, alg := range []route.Algorithm{route.Dijkstra, route.AStar} {
		res, err := route.Find(m, flat, at(0, 1), at(4, 1),
			route.WithAlgorithm(alg), route.WithConnectivity(grid.Conn8))
		require.NoError(t, err)
		require.Equal(t, want, xy(res.Path), "algorithm %v", alg)
		require.InDelta(t, 4.0, res.TotalCost, 1e-9)
	}
}
