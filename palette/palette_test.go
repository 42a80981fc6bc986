// SPDX-License-Identifier: MIT

package palette_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/sectormap/analysis"
	"github.com/katalvlaran/sectormap/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, name string) palette.Palette {
	t.Helper()
	p, err := palette.Lookup(name)
	require.NoError(t, err)
	return p
}

func TestInterpolate(t *testing.T) {
	black, magenta := palette.RGB(0, 0, 0), palette.RGB(255, 0, 255)

	assert.Equal(t, black, palette.Interpolate(black, magenta, 0, 0, 1))
	assert.Equal(t, magenta, palette.Interpolate(black, magenta, 1, 0, 1))
	// 127.5 rounds half to even.
	assert.Equal(t, palette.RGB(128, 0, 128), palette.Interpolate(black, magenta, 0.5, 0, 1))
	assert.Equal(t, palette.RGB(64, 0, 64), palette.Interpolate(black, magenta, 0.25, 0, 1))

	// Pattern shading over [1,255].
	green := palette.RGB(0, 255, 0)
	assert.Equal(t, black, palette.Interpolate(black, green, 1, 1, 255))
	assert.Equal(t, green, palette.Interpolate(black, green, 255, 1, 255))
	assert.Equal(t, palette.RGB(0, 63, 0), palette.Interpolate(black, green, 64, 1, 255))

	// Out-of-range values clamp instead of wrapping.
	assert.Equal(t, magenta, palette.Interpolate(black, magenta, 2, 0, 1))

	// Alpha is interpolated too.
	transparent := color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 128}, palette.Interpolate(transparent, palette.RGB(255, 255, 255), 0.5, 0, 1))
}

func TestNamesAndLookup(t *testing.T) {
	assert.Equal(t, []string{"asalor", "photocopy-safe", "rg", "sample"}, palette.Names())
	assert.Equal(t, "sample", lookup(t, palette.DefaultName).Name())
	assert.Equal(t, "rg", lookup(t, " RG ").Name())

	_, err := palette.Lookup("rainbow")
	assert.ErrorIs(t, err, palette.ErrUnknownPalette)
}

func TestLegend(t *testing.T) {
	cases := []struct {
		name   string
		labels []string
	}{
		{"sample", []string{"Byte pattern (x00)", "Byte pattern (xff)", "Byte pattern (x40)", "Random", "Not random", "Perfect random"}},
		{"rg", []string{"Byte pattern (x00)", "Byte pattern (xff)", "Byte pattern (x40)", "Random", "Not random", "Perfect random"}},
		{"photocopy-safe", []string{"Byte pattern (x00)", "Other byte pattern", "Random", "Not random", "Perfect random"}},
		{"asalor", []string{"zeroed/discarded", "nonzero byte pattern", "data (not random)", "data (random)"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := lookup(t, tc.name)
			legend := p.Legend()
			require.Len(t, legend, len(tc.labels))
			for i, e := range legend {
				assert.Equal(t, tc.labels[i], e.Label)
			}
			assert.False(t, p.NeedsAlpha())
		})
	}
}

// TestLegendMatchesGet: every legend color is what Get returns for the
// outcome it describes.
func TestLegendMatchesGet(t *testing.T) {
	p := lookup(t, "sample")
	legend := p.Legend()
	results := []analysis.Result{
		analysis.PatternResult(0x00),
		analysis.PatternResult(0xff),
		analysis.PatternResult(0x40),
		{Randomness: 1, Flag: analysis.Random},
		{Randomness: 0.5, Flag: analysis.NotRandom},
		{Randomness: 0, Flag: analysis.RandomnessSuspiciouslyHigh},
	}
	for i, r := range results {
		c, err := p.Get(r, int64(i), int64(i)*512)
		require.NoError(t, err)
		assert.Equal(t, legend[i].Color, c, legend[i].Label)
	}
}

func TestSample_Get(t *testing.T) {
	p := lookup(t, "sample")
	cases := []struct {
		name string
		r    analysis.Result
		want color.NRGBA
	}{
		{"zero", analysis.PatternResult(0), palette.RGB(0, 0, 255)},
		{"ff", analysis.PatternResult(0xff), palette.RGB(0, 255, 0)},
		{"01", analysis.PatternResult(0x01), palette.RGB(0, 0, 0)},
		{"40", analysis.PatternResult(0x40), palette.RGB(0, 63, 0)},
		{"random", analysis.Result{Randomness: 1, Flag: analysis.Random}, palette.RGB(255, 0, 255)},
		{"not random", analysis.Result{Randomness: 0.5, Flag: analysis.NotRandom}, palette.RGB(128, 0, 128)},
		{"too random", analysis.Result{Flag: analysis.RandomnessSuspiciouslyHigh}, palette.RGB(255, 0, 0)},
		{"entropy 0", analysis.Result{Randomness: 0, Flag: analysis.None}, palette.RGB(0, 0, 0)},
		{"entropy 1", analysis.Result{Randomness: 1, Flag: analysis.None}, palette.RGB(255, 0, 255)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Get(tc.r, 3, 1536)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRG_NotRandomIsEndpoint(t *testing.T) {
	p := lookup(t, "rg")
	c, err := p.Get(analysis.Result{Randomness: 0.5, Flag: analysis.NotRandom}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, palette.RGB(228, 26, 28), c)
}

func TestPhotocopySafe_FlatPattern(t *testing.T) {
	p := lookup(t, "photocopy-safe")
	for _, b := range []byte{0x01, 0x40, 0xff} {
		c, err := p.Get(analysis.PatternResult(b), 0, 0)
		require.NoError(t, err)
		assert.Equal(t, palette.RGB(255, 255, 191), c, "pattern %#x", b)
	}
}

func TestAsalor_Get(t *testing.T) {
	p := lookup(t, "asalor")
	c, _ := p.Get(analysis.PatternResult(0), 0, 0)
	assert.Equal(t, palette.RGB(93, 132, 41), c)
	c, _ = p.Get(analysis.PatternResult(7), 0, 0)
	assert.Equal(t, palette.RGB(192, 192, 192), c)
	c, _ = p.Get(analysis.Result{Flag: analysis.RandomnessSuspiciouslyHigh}, 0, 0)
	assert.Equal(t, palette.RGB(0, 0, 0), c)
	c, _ = p.Get(analysis.Result{Randomness: 0.5, Flag: analysis.NotRandom}, 0, 0)
	assert.Equal(t, palette.RGB(186, 0, 70), c)
	c, _ = p.Get(analysis.Result{Randomness: 0.5, Flag: analysis.None}, 0, 0)
	assert.Equal(t, palette.RGB(93, 0, 35), c)
}

func TestGet_InvalidFlag(t *testing.T) {
	for _, name := range palette.Names() {
		_, err := lookup(t, name).Get(analysis.Result{Flag: analysis.ResultFlag(17)}, 0, 0)
		assert.ErrorIs(t, err, palette.ErrInvalidFlag, name)
	}
}

// TestGet_Pure: the sector number and offset never influence the color.
func TestGet_Pure(t *testing.T) {
	r := analysis.Result{Randomness: 0.37, Flag: analysis.None}
	for _, name := range palette.Names() {
		p := lookup(t, name)
		first, err := p.Get(r, 0, 0)
		require.NoError(t, err)
		for i := int64(1); i < 50; i++ {
			c, err := p.Get(r, i, i*4096)
			require.NoError(t, err)
			assert.Equal(t, first, c, name)
		}
	}
}

func TestNewSimple_NeedsAlpha(t *testing.T) {
	p := palette.NewSimple("glass", palette.SimpleColors{
		Random:      palette.RGB(1, 2, 3),
		NotRandom:   palette.RGB(4, 5, 6),
		TooRandom:   color.NRGBA{R: 7, G: 8, B: 9, A: 100},
		ZeroPattern: palette.RGB(0, 0, 0),
		Pattern:     palette.RGB(9, 9, 9),
	})
	assert.True(t, p.NeedsAlpha())
	assert.Equal(t, "glass", p.Name())
	assert.Len(t, p.Legend(), 5)
}
