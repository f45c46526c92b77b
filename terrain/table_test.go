package terrain_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/isoroute/terrain"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewTable validation
//----------------------------------------------------------------------------//

func TestNewTable_Errors(t *testing.T) {
	cases := []struct {
		name    string
		records []terrain.Cost
		err     error
	}{
		{"Empty", nil, terrain.ErrEmptyTable},
		{"Duplicate", []terrain.Cost{
			{Code: '.', Base: 1, DiagonalFactor: 1, Passable: true},
			{Code: '.', Base: 2, DiagonalFactor: 1, Passable: true},
		}, terrain.ErrDuplicateCode},
		{"NegativeBase", []terrain.Cost{
			{Code: '.', Base: -1, DiagonalFactor: 1, Passable: true},
		}, terrain.ErrNegativeCost},
		{"NegativeAscent", []terrain.Cost{
			{Code: '.', Ascent: -0.5, DiagonalFactor: 1, Passable: true},
		}, terrain.ErrNegativeCost},
		{"NegativeDiagonal", []terrain.Cost{
			{Code: '.', Base: 1, DiagonalFactor: -1, Passable: true},
		}, terrain.ErrBadDiagonalFactor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.NewTable(tc.records)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Lookup semantics
//----------------------------------------------------------------------------//

func TestTable_UnknownCodeIsFault(t *testing.T) {
	tbl := terrain.DefaultTable()

	_, err := tbl.Cost('?')
	require.ErrorIs(t, err, terrain.ErrUnknownTerrain)
	// The offending code must be reported, not swallowed.
	require.Contains(t, err.Error(), "?")
}

func TestTable_StockRecords(t *testing.T) {
	tbl := terrain.DefaultTable()

	plain, err := tbl.Cost(terrain.CodePlain)
	require.NoError(t, err)
	require.Equal(t, 1.0, plain.Base)
	require.True(t, plain.Passable)

	cliff, err := tbl.Cost(terrain.CodeCliff)
	require.NoError(t, err)
	require.Equal(t, 5.0, cliff.Base)
	require.Equal(t, 10.0, cliff.Ascent)

	wall, err := tbl.Cost(terrain.CodeWall)
	require.NoError(t, err)
	require.False(t, wall.Passable)
}

func TestTable_MinBase(t *testing.T) {
	// Paved (0.8) is the cheapest passable stock terrain; the impassable
	// wall's zero base must not win.
	require.Equal(t, 0.8, terrain.DefaultTable().MinBase())

	// A table with no passable terrain falls back to 1.0.
	tbl, err := terrain.NewTable([]terrain.Cost{
		{Code: '#', DiagonalFactor: 1, Passable: false},
	})
	require.NoError(t, err)
	require.Equal(t, 1.0, tbl.MinBase())
}

//----------------------------------------------------------------------------//
// CSV decoding
//----------------------------------------------------------------------------//

const sampleCSV = `code,terrain,base_cost,ascent_cost,descent_cost,diagonal_factor,passable
.,plain,1.0,2.0,0.5,1.414,true
=,paved,0.8,1.0,0.5,1.414,true
#,wall,0,0,0,1.0,false
`

func TestReadCSV(t *testing.T) {
	tbl, err := terrain.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	paved, err := tbl.Cost('=')
	require.NoError(t, err)
	require.Equal(t, "paved", paved.Name)
	require.Equal(t, 0.8, paved.Base)

	require.False(t, tbl.Has('~'))
}

func TestReadCSV_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"ShortRow", ".,plain,1.0\n"},
		{"BadFloat", ".,plain,abc,2.0,0.5,1.414,true\n"},
		{"BadBool", ".,plain,1.0,2.0,0.5,1.414,maybe\n"},
		{"MultiCharCode", "xx,plain,1.0,2.0,0.5,1.414,true\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.ReadCSV(strings.NewReader(tc.in))
			require.ErrorIs(t, err, terrain.ErrMalformedRecord)
		})
	}
}

func TestReadCSV_DuplicateSurfacesTableError(t *testing.T) {
	in := ".,plain,1.0,2.0,0.5,1.414,true\n.,again,2.0,2.0,0.5,1.414,true\n"
	_, err := terrain.ReadCSV(strings.NewReader(in))
	require.ErrorIs(t, err, terrain.ErrDuplicateCode)
}
