// SPDX-License-Identifier: MIT

package layout_test

import (
	"testing"

	"github.com/katalvlaran/sectormap/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y int }

// assertInjectiveInside verifies every index maps inside the canvas and no
// two indices share a pixel.
func assertInjectiveInside(t *testing.T, l layout.Layout) {
	t.Helper()
	seen := make(map[point]int, l.Total())
	for i := 0; i < l.Total(); i++ {
		x, y, err := l.Coords(i)
		require.NoError(t, err)
		require.True(t, x >= 0 && x < l.Width() && y >= 0 && y < l.Height(),
			"%s: index %d -> (%d,%d) outside %dx%d", l.Kind(), i, x, y, l.Width(), l.Height())
		p := point{x, y}
		if prev, dup := seen[p]; dup {
			t.Fatalf("%s: indices %d and %d both map to %v", l.Kind(), prev, i, p)
		}
		seen[p] = i
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		name string
		want layout.Kind
	}{
		{"raster-scan", layout.RasterScan},
		{"sweeping", layout.RasterScan},
		{"Sweeping-Blocks", layout.SweepingBlocks},
		{"hilbert-curve", layout.HilbertCurve},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := layout.ParseKind(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, k)
		})
	}
	_, err := layout.ParseKind("zigzag")
	assert.ErrorIs(t, err, layout.ErrUnknownKind)
	assert.Equal(t, "sweeping-blocks", layout.DefaultKind.String())
}

func TestNew_Errors(t *testing.T) {
	for _, k := range layout.Kinds() {
		_, err := layout.New(k, 0, layout.DefaultOptions())
		assert.ErrorIs(t, err, layout.ErrNoSectors, "%s", k)
	}
	_, err := layout.New(layout.Kind(7), 10, layout.DefaultOptions())
	assert.ErrorIs(t, err, layout.ErrUnknownKind)

	_, err = layout.New(layout.RasterScan, 10, layout.Options{Width: -1})
	assert.ErrorIs(t, err, layout.ErrInvalidDimension)
	_, err = layout.New(layout.SweepingBlocks, 10, layout.Options{BlockSize: -4})
	assert.ErrorIs(t, err, layout.ErrInvalidDimension)
}

func TestCoords_OutOfRange(t *testing.T) {
	for _, k := range layout.Kinds() {
		l, err := layout.New(k, 10, layout.DefaultOptions())
		require.NoError(t, err)
		_, _, err = l.Coords(10)
		assert.ErrorIs(t, err, layout.ErrIndexOutOfRange, "%s", k)
		_, _, err = l.Coords(-1)
		assert.ErrorIs(t, err, layout.ErrIndexOutOfRange, "%s", k)
	}
}

// TestInjective_AllKinds sweeps many totals through every layout with
// automatic parameters.
func TestInjective_AllKinds(t *testing.T) {
	totals := []int{1, 2, 3, 4, 5, 7, 12, 13, 16, 17, 63, 100, 1000, 1025, 4097, 5000}
	for _, k := range layout.Kinds() {
		for _, n := range totals {
			l, err := layout.New(k, n, layout.DefaultOptions())
			require.NoError(t, err)
			assertInjectiveInside(t, l)
		}
	}
}

func TestRasterScan(t *testing.T) {
	l, err := layout.NewRasterScan(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Width())
	assert.Equal(t, 3, l.Height())
	x, y, err := l.Coords(9)
	require.NoError(t, err)
	assert.Equal(t, point{1, 2}, point{x, y})

	// Automatic width is the smallest square side.
	l, err = layout.NewRasterScan(10, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Width())
	assert.Equal(t, 3, l.Height())

	l, err = layout.NewRasterScan(16, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Width())
	assert.Equal(t, 4, l.Height())
	assert.Empty(t, l.Warnings())
}

func TestSweepingBlocks_FirstTile(t *testing.T) {
	l, err := layout.NewSweepingBlocks(64, 8, 4)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		x, y, err := l.Coords(i)
		require.NoError(t, err)
		assert.True(t, x >= 0 && x < 4 && y >= 0 && y < 4, "index %d -> (%d,%d)", i, x, y)
	}
	// Index 16 starts the second tile.
	x, y, err := l.Coords(16)
	require.NoError(t, err)
	assert.Equal(t, point{4, 0}, point{x, y})
	// Index 32 starts the second tile row.
	x, y, err = l.Coords(32)
	require.NoError(t, err)
	assert.Equal(t, point{0, 4}, point{x, y})
	assert.Equal(t, 8, l.Height())
}

func TestSweepingBlocks_WidthNotMultiple(t *testing.T) {
	_, err := layout.NewSweepingBlocks(64, 8, 3)
	assert.ErrorIs(t, err, layout.ErrWidthNotMultiple)
}

func TestSweepingBlocks_Height(t *testing.T) {
	cases := []struct {
		total, width, block, height int
	}{
		{10, 8, 4, 3},  // partial first tile
		{16, 8, 4, 4},  // one full tile
		{20, 8, 4, 4},  // second tile started
		{36, 8, 4, 5},  // one row of tiles plus a partial tile
		{48, 8, 4, 8},  // second tile row has a full tile
		{64, 8, 4, 8},  // exact fit
		{1, 32, 32, 1}, // single sector
	}
	for _, tc := range cases {
		l, err := layout.NewSweepingBlocks(tc.total, tc.width, tc.block)
		require.NoError(t, err)
		assert.Equal(t, tc.height, l.Height(), "total=%d w=%d b=%d", tc.total, tc.width, tc.block)
		assertInjectiveInside(t, l)
	}
}

func TestSweepingBlocks_AutoParameters(t *testing.T) {
	// Width and block size automatic: block 32, square-ish width.
	l, err := layout.NewSweepingBlocks(5000, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 32, l.BlockSize())
	assert.Equal(t, 96, l.Width()) // ⌈⌈√5000⌉/32⌉·32 = ⌈71/32⌉·32
	assert.Empty(t, l.Warnings())

	// Only block size given.
	l, err = layout.NewSweepingBlocks(5000, 0, 16)
	require.NoError(t, err)
	assert.Equal(t, 80, l.Width())

	cases := []struct {
		width, block int
		warn         bool
	}{
		{4096, 32, false}, // 32 divides and 32 <= 64
		{2000, 40, false}, // first divisor in [32, 45]
		{96, 24, false},   // √96 < 32, largest divisor below 32
		{100, 25, false},
		{97, 1, true}, // prime
	}
	for _, tc := range cases {
		l, err := layout.NewSweepingBlocks(1000, tc.width, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.block, l.BlockSize(), "width %d", tc.width)
		if tc.warn {
			require.Len(t, l.Warnings(), 1)
			assert.ErrorIs(t, l.Warnings()[0], layout.ErrDegenerateBlockSize)
		} else {
			assert.Empty(t, l.Warnings(), "width %d", tc.width)
		}
		assertInjectiveInside(t, l)
	}
}

// TestSweepingBlocks_BlockOneIsRaster: block size 1 degenerates to raster order.
func TestSweepingBlocks_BlockOneIsRaster(t *testing.T) {
	s, err := layout.NewSweepingBlocks(50, 7, 1)
	require.NoError(t, err)
	r, err := layout.NewRasterScan(50, 7)
	require.NoError(t, err)
	require.Equal(t, r.Height(), s.Height())
	for i := 0; i < 50; i++ {
		sx, sy, _ := s.Coords(i)
		rx, ry, _ := r.Coords(i)
		assert.Equal(t, point{rx, ry}, point{sx, sy}, "index %d", i)
	}
}

func TestCursor(t *testing.T) {
	l, err := layout.New(layout.HilbertCurve, 37, layout.DefaultOptions())
	require.NoError(t, err)
	c := layout.NewCursor(l)
	for i := 0; i < l.Total(); i++ {
		require.Equal(t, i, c.Index())
		cx, cy, err := c.Next()
		require.NoError(t, err)
		x, y, _ := l.Coords(i)
		assert.Equal(t, point{x, y}, point{cx, cy})
	}
	_, _, err = c.Next()
	assert.ErrorIs(t, err, layout.ErrIndexOutOfRange)
	assert.Equal(t, l.Total(), c.Index())
}
