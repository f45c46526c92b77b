// Command isoroute runs a route search over a text map and prints the
// result: the path overlaid on the terrain, optional metrics, and an
// optional Dijkstra/A* comparison.
//
// Usage:
//
//	isoroute [options] MAP
//
// MAP is a terrain layer, one row per line. Start and goal come from
// 'S'/'G' markers in the map or from a --points file holding "S x y"
// and "G x y" lines.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/isoroute/grid"
	"github.com/katalvlaran/isoroute/isocoord"
	"github.com/katalvlaran/isoroute/render"
	"github.com/katalvlaran/isoroute/route"
	"github.com/katalvlaran/isoroute/terrain"
)

func main() {
	cmd := &cli.Command{
		Name:      "isoroute",
		Usage:     "search a route over a terrain map",
		ArgsUsage: "MAP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "algo",
				Usage: "search algorithm: dijkstra or astar",
				Value: "dijkstra",
			},
			&cli.StringFlag{
				Name:  "elevation",
				Usage: "elevation layer file (integers, same shape as MAP)",
			},
			&cli.StringFlag{
				Name:  "priority",
				Usage: "priority layer file (floats, same shape as MAP)",
			},
			&cli.StringFlag{
				Name:  "points",
				Usage: "start/goal file: \"S x y\" and \"G x y\" lines (overrides map markers)",
			},
			&cli.StringFlag{
				Name:  "costs",
				Usage: "terrain cost table CSV (default: built-in table)",
			},
			&cli.Float64Flag{
				Name:  "priority-weight",
				Usage: "weight of the priority penalty term",
			},
			&cli.BoolFlag{
				Name:  "allow-diagonal",
				Usage: "use 8-direction movement",
			},
			&cli.IntFlag{
				Name:  "max-expansions",
				Usage: "abort after expanding this many cells (0 = unlimited)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "abort the search after this duration (0 = none)",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "print search statistics",
			},
			&cli.BoolFlag{
				Name:  "compare",
				Usage: "run both algorithms and print a comparison",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "isoroute:", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("expected exactly one MAP argument")
	}

	tbl, err := loadTable(cmd.String("costs"))
	if err != nil {
		return err
	}

	m, err := loadGrid(cmd, tbl)
	if err != nil {
		return err
	}

	start, goal, err := endpoints(cmd.String("points"), m)
	if err != nil {
		return err
	}

	opts := searchOptions(cmd)

	if cmd.Bool("compare") {
		return runComparison(m, tbl, start, goal, opts)
	}

	algo, err := parseAlgorithm(cmd.String("algo"))
	if err != nil {
		return err
	}

	res, err := route.Find(m, tbl, start, goal, append(opts, route.WithAlgorithm(algo))...)
	if err != nil {
		if errors.Is(err, route.ErrNoPath) {
			return fmt.Errorf("no path from (%d,%d) to (%d,%d)", start.X, start.Y, goal.X, goal.Y)
		}
		if errors.Is(err, route.ErrAborted) {
			return fmt.Errorf("search aborted before completion: %w", err)
		}

		return err
	}

	out, err := render.Path(m, res.Path)
	if err != nil {
		return err
	}
	fmt.Print(out)

	if cmd.Bool("metrics") {
		fmt.Println()
		fmt.Print(render.Metrics(res))
	}

	return nil
}

// runComparison runs both algorithms on the same query and prints the
// Dijkstra path plus a side-by-side statistics table.
func runComparison(m *grid.Grid, tbl *terrain.Table, start, goal isocoord.GridCoord, opts []route.Option) error {
	dij, err := route.Find(m, tbl, start, goal, append(opts, route.WithAlgorithm(route.Dijkstra))...)
	if err != nil {
		if errors.Is(err, route.ErrNoPath) {
			return fmt.Errorf("no path from (%d,%d) to (%d,%d)", start.X, start.Y, goal.X, goal.Y)
		}

		return err
	}

	ast, err := route.Find(m, tbl, start, goal, append(opts, route.WithAlgorithm(route.AStar))...)
	if err != nil {
		return err
	}

	out, err := render.Path(m, dij.Path)
	if err != nil {
		return err
	}
	fmt.Print(out)
	fmt.Println()
	fmt.Print(render.Comparison(dij, ast))

	return nil
}

// parseAlgorithm maps the --algo value to a search mode.
func parseAlgorithm(s string) (route.Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return route.Dijkstra, nil
	case "astar", "a*":
		return route.AStar, nil
	default:
		return route.Dijkstra, fmt.Errorf("unknown algorithm %q (want dijkstra or astar)", s)
	}
}

func loadTable(path string) (*terrain.Table, error) {
	if path == "" {
		return terrain.DefaultTable(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return terrain.ReadCSV(f)
}

func loadGrid(cmd *cli.Command, tbl *terrain.Table) (*grid.Grid, error) {
	f, err := os.Open(cmd.Args().First())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	layer, err := grid.ParseTerrain(f)
	if err != nil {
		return nil, err
	}

	opts := []grid.Option{grid.WithTable(tbl)}

	if path := cmd.String("elevation"); path != "" {
		ef, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		levels, err := grid.ParseElevation(ef)
		ef.Close()
		if err != nil {
			return nil, err
		}
		opts = append(opts, grid.WithElevation(levels))
	}

	if path := cmd.String("priority"); path != "" {
		pf, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		prio, err := grid.ParsePriority(pf)
		pf.Close()
		if err != nil {
			return nil, err
		}
		opts = append(opts, grid.WithPriority(prio))
	}

	return grid.New(layer, opts...)
}

// endpoints resolves start and goal from a points file when given,
// falling back to the map's own S/G markers.
func endpoints(pointsPath string, m *grid.Grid) (start, goal isocoord.GridCoord, err error) {
	if pointsPath != "" {
		f, openErr := os.Open(pointsPath)
		if openErr != nil {
			return start, goal, openErr
		}
		defer f.Close()

		return grid.ParsePoints(f)
	}

	start, ok := m.Start()
	if !ok {
		return start, goal, errors.New("map has no 'S' marker; supply --points")
	}

	goal, ok = m.Goal()
	if !ok {
		return start, goal, errors.New("map has no 'G' marker; supply --points")
	}

	return start, goal, nil
}

func searchOptions(cmd *cli.Command) []route.Option {
	opts := []route.Option{
		route.WithPriorityWeight(cmd.Float64("priority-weight")),
	}

	if cmd.Bool("allow-diagonal") {
		opts = append(opts, route.WithConnectivity(grid.Conn8))
	}

	if n := int(cmd.Int("max-expansions")); n > 0 {
		opts = append(opts, route.WithMaxExpansions(n))
	}

	if d := cmd.Duration("timeout"); d > 0 {
		opts = append(opts, route.WithDeadline(time.Now().Add(d)))
	}

	return opts
}
