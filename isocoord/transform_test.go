// Package isocoord_test validates the grid↔iso transform pair: config
// validation, forward/inverse formulas, the round-trip law over many
// configurations, diamond-test symmetry, and the distance metrics.
package isocoord_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/isoroute/isocoord"
)

//----------------------------------------------------------------------------//
// IsoConfig validation
//----------------------------------------------------------------------------//

// TestNewIsoConfig_Errors verifies that each invalid parameter maps to
// its own sentinel, raised at construction and never at call time.
func TestNewIsoConfig_Errors(t *testing.T) {
	cases := []struct {
		name       string
		tw, th, es float64
		err        error
	}{
		{"ZeroTileWidth", 0, 32, 16, isocoord.ErrNonPositiveTileWidth},
		{"NegativeTileWidth", -10, 32, 16, isocoord.ErrNonPositiveTileWidth},
		{"ZeroTileHeight", 64, 0, 16, isocoord.ErrNonPositiveTileHeight},
		{"NegativeTileHeight", 64, -1, 16, isocoord.ErrNonPositiveTileHeight},
		{"NegativeElevationScale", 64, 32, -1, isocoord.ErrNegativeElevationScale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := isocoord.NewIsoConfig(tc.tw, tc.th, tc.es)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewIsoConfig(%v,%v,%v) error = %v; want %v", tc.tw, tc.th, tc.es, err, tc.err)
			}
		})
	}
}

// TestNewIsoConfig_ZeroElevationScale confirms β = 0 is a valid config
// (flat projection with no vertical displacement).
func TestNewIsoConfig_ZeroElevationScale(t *testing.T) {
	cfg, err := isocoord.NewIsoConfig(64, 32, 0)
	if err != nil {
		t.Fatalf("NewIsoConfig error: %v", err)
	}
	if cfg.ElevationScale != 0 {
		t.Errorf("ElevationScale = %v; want 0", cfg.ElevationScale)
	}
}

//----------------------------------------------------------------------------//
// Forward transform
//----------------------------------------------------------------------------//

// TestToIso_KnownValues checks the forward formula against hand-computed
// points under the default 64×32×16 projection.
func TestToIso_KnownValues(t *testing.T) {
	cfg := isocoord.DefaultIsoConfig()
	cases := []struct {
		name string
		g    isocoord.GridCoord
		want isocoord.IsoCoord
	}{
		{"Origin", isocoord.GridCoord{X: 0, Y: 0}, isocoord.IsoCoord{X: 0, Y: 0}},
		{"EastOne", isocoord.GridCoord{X: 1, Y: 0}, isocoord.IsoCoord{X: 32, Y: 16}},
		{"SouthOne", isocoord.GridCoord{X: 0, Y: 1}, isocoord.IsoCoord{X: -32, Y: 16}},
		{"Diagonal", isocoord.GridCoord{X: 2, Y: 2}, isocoord.IsoCoord{X: 0, Y: 64}},
		{"Elevated", isocoord.GridCoord{X: 1, Y: 1, H: 2}, isocoord.IsoCoord{X: 0, Y: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := isocoord.ToIso(tc.g, cfg)
			if got != tc.want {
				t.Errorf("ToIso(%+v) = %+v; want %+v", tc.g, got, tc.want)
			}
		})
	}
}

// TestToIsoCenter verifies the quarter-tile vertical shift.
func TestToIsoCenter(t *testing.T) {
	cfg := isocoord.DefaultIsoConfig()
	g := isocoord.GridCoord{X: 3, Y: 1}
	base := isocoord.ToIso(g, cfg)
	center := isocoord.ToIsoCenter(g, cfg)
	if center.X != base.X || center.Y != base.Y+cfg.TileHeight/4 {
		t.Errorf("ToIsoCenter(%+v) = %+v; want X=%v Y=%v", g, center, base.X, base.Y+cfg.TileHeight/4)
	}
}

//----------------------------------------------------------------------------//
// Round-trip law
//----------------------------------------------------------------------------//

// TestRoundTrip_AllConfigs exercises ToGrid(ToIso(g)) == g across a
// spread of valid configurations (not just the defaults) and a spread of
// coordinates including elevated cells.
func TestRoundTrip_AllConfigs(t *testing.T) {
	configs := [][3]float64{
		{64, 32, 16},
		{64, 32, 0},
		{128, 64, 8},
		{1, 1, 1},
		{10, 30, 2.5},
		{7.5, 3.25, 0.125},
	}
	for _, c := range configs {
		cfg, err := isocoord.NewIsoConfig(c[0], c[1], c[2])
		if err != nil {
			t.Fatalf("NewIsoConfig(%v) error: %v", c, err)
		}
		for x := 0; x < 12; x++ {
			for y := 0; y < 12; y++ {
				for _, h := range []int{0, 1, 5} {
					g := isocoord.GridCoord{X: x, Y: y, H: h}
					back := isocoord.ToGrid(isocoord.ToIso(g, cfg), h, cfg)
					if back != g {
						t.Fatalf("cfg=%v round-trip(%+v) = %+v", c, g, back)
					}
				}
			}
		}
	}
}

// TestToGrid_UnknownElevation documents the h=0 degenerate inversion:
// inverting an elevated point with assumed elevation 0 lands off-cell
// whenever β > 0. Approximation, not silent correction.
func TestToGrid_UnknownElevation(t *testing.T) {
	cfg := isocoord.DefaultIsoConfig()
	g := isocoord.GridCoord{X: 4, Y: 4, H: 2}
	p := isocoord.ToIso(g, cfg)

	back := isocoord.ToGrid(p, 0, cfg)
	if back.H != 0 {
		t.Errorf("ToGrid with elevation 0 returned H=%d; want 0", back.H)
	}
	// 2 levels × 16px = 32px = one full tile-height step along x+y.
	if back.X+back.Y == g.X+g.Y {
		t.Errorf("expected elevation-offset drift, got exact cell %+v", back)
	}
}

//----------------------------------------------------------------------------//
// Diamond inclusion
//----------------------------------------------------------------------------//

// TestInDiamond covers center, corners (boundary counts as inside),
// interior, and exterior points.
func TestInDiamond(t *testing.T) {
	inside := [][2]float64{
		{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}, {0.3, 0.3}, {0.5, 0.4},
	}
	for _, p := range inside {
		if !isocoord.InDiamond(p[0], p[1]) {
			t.Errorf("InDiamond(%v,%v) = false; want true", p[0], p[1])
		}
	}
	outside := [][2]float64{{0.6, 0.6}, {1.1, 0}, {0, 1.1}, {-0.9, 0.2}}
	for _, p := range outside {
		if isocoord.InDiamond(p[0], p[1]) {
			t.Errorf("InDiamond(%v,%v) = true; want false", p[0], p[1])
		}
	}
}

// TestInDiamond_QuadrantSymmetry checks reflection symmetry in u and v.
func TestInDiamond_QuadrantSymmetry(t *testing.T) {
	for _, p := range [][2]float64{{0.3, 0.4}, {0.7, 0.5}, {0.2, 0.9}} {
		u, v := p[0], p[1]
		base := isocoord.InDiamond(u, v)
		for _, m := range [][2]float64{{-u, v}, {u, -v}, {-u, -v}} {
			if isocoord.InDiamond(m[0], m[1]) != base {
				t.Errorf("InDiamond not symmetric at (%v,%v)", m[0], m[1])
			}
		}
	}
}

// TestDiamondLocal verifies the tile-local frame: the candidate's own
// center maps to (0,0) and a tile-width offset maps to u=2.
func TestDiamondLocal(t *testing.T) {
	cfg := isocoord.DefaultIsoConfig()
	c := isocoord.ToIso(isocoord.GridCoord{X: 2, Y: 1}, cfg)

	u, v := isocoord.DiamondLocal(c, c, cfg)
	if u != 0 || v != 0 {
		t.Errorf("DiamondLocal(center) = (%v,%v); want (0,0)", u, v)
	}

	shifted := isocoord.IsoCoord{X: c.X + cfg.TileWidth, Y: c.Y + cfg.TileHeight/2}
	u, v = isocoord.DiamondLocal(shifted, c, cfg)
	if u != 2 || v != 1 {
		t.Errorf("DiamondLocal(shifted) = (%v,%v); want (2,1)", u, v)
	}
}

//----------------------------------------------------------------------------//
// Distance metrics
//----------------------------------------------------------------------------//

// TestDistances covers Manhattan and octile values, including the √2−1
// blend on mixed displacements, independent of elevation.
func TestDistances(t *testing.T) {
	a := isocoord.GridCoord{X: 1, Y: 2, H: 3}
	b := isocoord.GridCoord{X: 4, Y: 6}

	if got := isocoord.ManhattanDistance(a, b); got != 7 {
		t.Errorf("ManhattanDistance = %d; want 7", got)
	}
	want := 4 + (isocoord.Sqrt2-1)*3
	if got := isocoord.OctileDistance(a, b); math.Abs(got-want) > 1e-12 {
		t.Errorf("OctileDistance = %v; want %v", got, want)
	}
	// Same cell: both metrics zero.
	if isocoord.ManhattanDistance(a, a) != 0 || isocoord.OctileDistance(a, a) != 0 {
		t.Error("distance from a cell to itself must be zero")
	}
}
