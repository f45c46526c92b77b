// table.go — construction and lookup of the immutable terrain table.
package terrain

import (
	"fmt"
	"math"
)

// NewTable builds an immutable Table from a slice of records.
// The input is copied; later mutation of the slice does not affect the
// table. Returns ErrEmptyTable, ErrDuplicateCode, ErrNegativeCost, or
// ErrBadDiagonalFactor on invalid input.
// Complexity: O(n) over the record count.
func NewTable(records []Cost) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	costs := make(map[byte]Cost, len(records))
	for _, rec := range records {
		if err := rec.validate(); err != nil {
			return nil, err
		}
		if _, dup := costs[rec.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, rec.Code)
		}
		costs[rec.Code] = rec
	}

	return &Table{costs: costs}, nil
}

// Cost returns the record for the given terrain code.
// An unknown code is a configuration fault (ErrUnknownTerrain) carrying
// the offending code; there is deliberately no default-cost fallback.
// Complexity: O(1).
func (t *Table) Cost(code byte) (Cost, error) {
	rec, ok := t.costs[code]
	if !ok {
		return Cost{}, fmt.Errorf("%w: %q", ErrUnknownTerrain, code)
	}

	return rec, nil
}

// Has reports whether the table defines the given code.
func (t *Table) Has(code byte) bool {
	_, ok := t.costs[code]

	return ok
}

// Len returns the number of terrain records in the table.
func (t *Table) Len() int { return len(t.costs) }

// MinBase returns the minimum base cost among passable terrains in the
// table, the scale factor for admissible heuristics. Returns 1.0 when
// the table holds no passable terrain, so a heuristic built from it
// stays finite.
func (t *Table) MinBase() float64 {
	minBase := math.Inf(1)
	for _, rec := range t.costs {
		if rec.Passable && rec.Base < minBase {
			minBase = rec.Base
		}
	}
	if math.IsInf(minBase, 1) {
		return 1.0
	}

	return minBase
}

// Stock terrain codes used by DefaultTable and the text map format.
// 'S' and 'G' mark start/goal cells and cost the same as plain ground.
const (
	CodePlain  = '.'
	CodeStart  = 'S'
	CodeGoal   = 'G'
	CodeSand   = 's'
	CodePaved  = '='
	CodeForest = 'F'
	CodeWater  = '~'
	CodeCliff  = '^'
	CodeWall   = '#'
)

// DefaultTable returns the stock terrain set. The numbers mirror the
// canonical balance sheet: paved roads at 0.8 undercut plain ground,
// sand is punishing at 2.5, and cliffs combine a heavy base cost with a
// 10.0-per-level ascent penalty.
func DefaultTable() *Table {
	t, err := NewTable([]Cost{
		{Code: CodePlain, Name: "plain", Base: 1.0, Ascent: 2.0, Descent: 0.5, DiagonalFactor: DiagonalDefault, Passable: true},
		{Code: CodeStart, Name: "start", Base: 1.0, Ascent: 2.0, Descent: 0.5, DiagonalFactor: DiagonalDefault, Passable: true},
		{Code: CodeGoal, Name: "goal", Base: 1.0, Ascent: 2.0, Descent: 0.5, DiagonalFactor: DiagonalDefault, Passable: true},
		{Code: CodeSand, Name: "sand", Base: 2.5, Ascent: 3.0, Descent: 1.0, DiagonalFactor: DiagonalDefault, Passable: true},
		{Code: CodePaved, Name: "paved", Base: 0.8, Ascent: 1.0, Descent: 0.5, DiagonalFactor: DiagonalDefault, Passable: true},
		{Code: CodeForest, Name: "forest", Base: 2.0, Ascent: 3.0, Descent: 1.0, DiagonalFactor: DiagonalDefault, Passable: true},
		{Code: CodeWater, Name: "water", Base: 3.0, Ascent: 4.0, Descent: 2.0, DiagonalFactor: DiagonalDefault, Passable: true},
		{Code: CodeCliff, Name: "cliff", Base: 5.0, Ascent: 10.0, Descent: 2.0, DiagonalFactor: DiagonalDefault, Passable: true},
		{Code: CodeWall, Name: "wall", Base: 0, Ascent: 0, Descent: 0, DiagonalFactor: 1.0, Passable: false},
	})
	if err != nil {
		// The stock records are constants; a failure here is a programming error.
		panic(err)
	}

	return t
}
