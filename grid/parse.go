// parse.go — text-layer parsers for the map formats: terrain character
// rows, whitespace-separated elevation/priority matrices, and explicit
// start/goal point files.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/isoroute/isocoord"
)

// ParseTerrain reads a terrain layer: one row of single-character codes
// per line. Blank leading/trailing lines are ignored; interior structure
// must be rectangular. Returns ErrMalformedLayer or ErrEmptyGrid.
func ParseTerrain(r io.Reader) ([][]byte, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(lines[0])
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: terrain row %d has %d cells, expected %d", ErrNonRectangular, i, len(line), width)
		}
		rows[i] = []byte(line)
	}

	return rows, nil
}

// ParseElevation reads an elevation layer: one row of space-separated
// integers per line. Returns ErrMalformedLayer on non-integer input and
// ErrNonRectangular on ragged rows.
func ParseElevation(r io.Reader) ([][]int, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	var width int
	rows := make([][]int, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if i == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("%w: elevation row %d has %d values, expected %d", ErrNonRectangular, i, len(fields), width)
		}
		row := make([]int, len(fields))
		for j, f := range fields {
			v, convErr := strconv.Atoi(f)
			if convErr != nil {
				return nil, fmt.Errorf("%w: elevation row %d: %v", ErrMalformedLayer, i, convErr)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return rows, nil
}

// ParsePriority reads a tactical priority layer: one row of
// space-separated floats per line. Value-range validation (P ≥ 0)
// happens in New, not here.
func ParsePriority(r io.Reader) ([][]float64, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	var width int
	rows := make([][]float64, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if i == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("%w: priority row %d has %d values, expected %d", ErrNonRectangular, i, len(fields), width)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, convErr := strconv.ParseFloat(f, 64)
			if convErr != nil {
				return nil, fmt.Errorf("%w: priority row %d: %v", ErrMalformedLayer, i, convErr)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return rows, nil
}

// ParsePoints reads explicit start/goal coordinates from a points file:
// lines of the form "S x y" and "G x y" (case-insensitive markers).
// Both markers are required; ErrMissingMarker otherwise.
func ParsePoints(r io.Reader) (start, goal isocoord.GridCoord, err error) {
	lines, err := readLines(r)
	if err != nil {
		return start, goal, err
	}

	var hasStart, hasGoal bool
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return start, goal, fmt.Errorf("%w: points line %d needs marker x y", ErrMalformedLayer, i)
		}
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX != nil || errY != nil {
			return start, goal, fmt.Errorf("%w: points line %d: non-integer coordinate", ErrMalformedLayer, i)
		}
		switch strings.ToUpper(fields[0]) {
		case "S":
			start, hasStart = isocoord.GridCoord{X: x, Y: y}, true
		case "G":
			goal, hasGoal = isocoord.GridCoord{X: x, Y: y}, true
		default:
			return start, goal, fmt.Errorf("%w: points line %d: unknown marker %q", ErrMalformedLayer, i, fields[0])
		}
	}
	if !hasStart || !hasGoal {
		return start, goal, ErrMissingMarker
	}

	return start, goal, nil
}

// readLines collects non-empty trimmed-end lines, dropping leading and
// trailing blank lines but rejecting none in between (a blank interior
// line would silently change row indexing).
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLayer, err)
	}

	// Trim leading/trailing blanks.
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return nil, fmt.Errorf("%w: blank line %d inside layer", ErrMalformedLayer, i)
		}
	}

	return lines, nil
}
