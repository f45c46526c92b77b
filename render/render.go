package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/isoroute/grid"
	"github.com/katalvlaran/isoroute/isocoord"
	"github.com/katalvlaran/isoroute/route"
	"github.com/katalvlaran/isoroute/terrain"
)

// PathGlyph marks route cells in the rendered map. Start and goal
// markers keep their own glyphs so the endpoints stay visible.
const PathGlyph = '@'

// Path renders m's terrain layer with path overlaid. The output is a
// bordered block with a column ruler:
//
//	      0 1 2 3
//	    +---------+
//	  0 | S @ @ . |
//	  1 | # # @ . |
//	  2 | . . @ G |
//	    +---------+
//
// A path cell outside the grid is a boundary fault.
func Path(m *grid.Grid, path []isocoord.GridCoord) (string, error) {
	rows := make([][]byte, m.Height())
	for y := range rows {
		rows[y] = make([]byte, m.Width())
		for x := 0; x < m.Width(); x++ {
			code, err := m.TerrainAt(x, y)
			if err != nil {
				return "", err
			}
			rows[y][x] = code
		}
	}

	for _, g := range path {
		if err := m.CheckBounds(g.X, g.Y); err != nil {
			return "", err
		}
		if c := rows[g.Y][g.X]; c != terrain.CodeStart && c != terrain.CodeGoal {
			rows[g.Y][g.X] = PathGlyph
		}
	}

	var b strings.Builder

	// Column ruler (single digits cycle on wide maps).
	b.WriteString("     ")
	for x := 0; x < m.Width(); x++ {
		fmt.Fprintf(&b, " %d", x%10)
	}
	b.WriteByte('\n')

	border := "    +" + strings.Repeat("-", 2*m.Width()+1) + "+\n"
	b.WriteString(border)

	for y, row := range rows {
		fmt.Fprintf(&b, "%3d |", y)
		for _, c := range row {
			b.WriteByte(' ')
			b.WriteByte(c)
		}
		b.WriteString(" |\n")
	}
	b.WriteString(border)

	return b.String(), nil
}

// Metrics formats one result as an aligned key/value block.
func Metrics(res route.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "algorithm:      %s\n", res.Algorithm)
	fmt.Fprintf(&b, "total cost:     %.3f\n", res.TotalCost)
	fmt.Fprintf(&b, "path length:    %d\n", len(res.Path))
	fmt.Fprintf(&b, "nodes expanded: %d\n", res.NodesExpanded)
	fmt.Fprintf(&b, "duration:       %s\n", res.Duration)

	return b.String()
}

// Comparison formats two results of the same query side by side and
// notes whether their total costs agree and how many fewer nodes the
// cheaper search expanded.
func Comparison(a, b route.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-16s %14s %14s\n", "metric", a.Algorithm, b.Algorithm)
	fmt.Fprintf(&sb, "%-16s %14.3f %14.3f\n", "total cost", a.TotalCost, b.TotalCost)
	fmt.Fprintf(&sb, "%-16s %14d %14d\n", "path length", len(a.Path), len(b.Path))
	fmt.Fprintf(&sb, "%-16s %14d %14d\n", "nodes expanded", a.NodesExpanded, b.NodesExpanded)
	fmt.Fprintf(&sb, "%-16s %14s %14s\n", "duration", a.Duration, b.Duration)

	if a.TotalCost == b.TotalCost {
		sb.WriteString("\ncosts agree\n")
	} else {
		fmt.Fprintf(&sb, "\ncosts differ by %.6f\n", diff(a.TotalCost, b.TotalCost))
	}

	if a.NodesExpanded > 0 && b.NodesExpanded > 0 && a.NodesExpanded != b.NodesExpanded {
		lo, hi := a, b
		if b.NodesExpanded < a.NodesExpanded {
			lo, hi = b, a
		}
		saved := 100 * (1 - float64(lo.NodesExpanded)/float64(hi.NodesExpanded))
		fmt.Fprintf(&sb, "%s expanded %.1f%% fewer nodes than %s\n",
			lo.Algorithm, saved, hi.Algorithm)
	}

	return sb.String()
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}

	return b - a
}
