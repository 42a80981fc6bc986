// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sectormap/palette"
	"github.com/katalvlaran/sectormap/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLegend(t *testing.T) []palette.LegendEntry {
	p, err := palette.Lookup("sample")
	require.NoError(t, err)
	return p.Legend()
}

func TestNewCanvas_NoLegend(t *testing.T) {
	opts := render.DefaultOptions()
	opts.NoLegend = true
	c, err := render.NewCanvas(4, 3, sampleLegend(t), opts)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Image().Bounds().Dx())
	assert.Equal(t, 3, c.Image().Bounds().Dy())
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, c.Image().NRGBAAt(3, 2))

	require.NoError(t, c.Set(3, 2, palette.RGB(1, 2, 3)))
	assert.Equal(t, palette.RGB(1, 2, 3), c.Image().NRGBAAt(3, 2))
	assert.ErrorIs(t, c.Set(4, 0, palette.RGB(1, 2, 3)), render.ErrOutOfBounds)
	assert.ErrorIs(t, c.Set(0, -1, palette.RGB(1, 2, 3)), render.ErrOutOfBounds)

	w, h := c.LegendSize()
	assert.Zero(t, w)
	assert.Zero(t, h)

	_, err = render.NewCanvas(0, 3, nil, opts)
	assert.ErrorIs(t, err, render.ErrEmptyCanvas)
}

// TestNewCanvas_BitmapLegend uses the fixed 7x13 face so every size is exact:
// line 13, spacing 6, widest label 18 glyphs of 7 pixels.
func TestNewCanvas_BitmapLegend(t *testing.T) {
	opts := render.DefaultOptions()
	opts.FontPath = render.BitmapFont
	c, err := render.NewCanvas(10, 10, sampleLegend(t), opts)
	require.NoError(t, err)

	w, h := c.LegendSize()
	assert.Equal(t, 3*6+13+18*7, w)
	assert.Equal(t, 6*13+7*6, h)
	b := c.Image().Bounds()
	assert.Equal(t, 10+w, b.Dx())
	assert.Equal(t, h, b.Dy())

	// First square at x = 10+6, y = 6; second one line and one spacing lower.
	assert.Equal(t, palette.RGB(0, 0, 0), c.Image().NRGBAAt(16, 6), "outline")
	assert.Equal(t, palette.RGB(0, 0, 255), c.Image().NRGBAAt(17, 7), "x00 swatch")
	assert.Equal(t, palette.RGB(0, 255, 0), c.Image().NRGBAAt(17, 26), "xff swatch")
}

func TestNewCanvas_TrueTypeLegend(t *testing.T) {
	c, err := render.NewCanvas(64, 64, sampleLegend(t), render.DefaultOptions())
	require.NoError(t, err)
	w, h := c.LegendSize()
	assert.Greater(t, w, 0)
	assert.Greater(t, h, 0)
	assert.Equal(t, 64+w, c.Image().Bounds().Dx())
}

func TestEncodePNG(t *testing.T) {
	opts := render.DefaultOptions()
	opts.NoLegend = true
	c, err := render.NewCanvas(2, 2, nil, opts)
	require.NoError(t, err)
	require.NoError(t, c.Set(1, 1, palette.RGB(9, 8, 7)))

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Image().Bounds(), img.Bounds())
	assert.Equal(t, palette.RGB(9, 8, 7), color.NRGBAModel.Convert(img.At(1, 1)))

	_, opaque := img.(*image.RGBA)
	assert.True(t, opaque, "opaque canvas encodes without alpha, got %T", img)
}

func TestEncodePNG_Alpha(t *testing.T) {
	cases := []struct {
		name      string
		alpha     bool
		wantAlpha uint32
	}{
		{"alpha kept", true, 0},
		{"alpha dropped", false, 0xffff},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := render.DefaultOptions()
			opts.NoLegend = true
			opts.Background = color.NRGBA{255, 255, 255, 0}
			opts.Alpha = tc.alpha
			c, err := render.NewCanvas(2, 2, nil, opts)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, c.EncodePNG(&buf))
			img, err := png.Decode(&buf)
			require.NoError(t, err)
			_, _, _, a := img.At(0, 0).RGBA()
			assert.Equal(t, tc.wantAlpha, a)
		})
	}
}

func TestLoadFace(t *testing.T) {
	_, err := render.LoadFace("", 16)
	require.NoError(t, err)
	_, err = render.LoadFace(render.BitmapFont, 99)
	require.NoError(t, err)

	_, err = render.LoadFace(filepath.Join(t.TempDir(), "none.ttf"), 16)
	assert.ErrorIs(t, err, render.ErrInvalidFont)

	junk := filepath.Join(t.TempDir(), "junk.ttf")
	require.NoError(t, os.WriteFile(junk, []byte("not a font"), 0o600))
	_, err = render.LoadFace(junk, 16)
	assert.ErrorIs(t, err, render.ErrInvalidFont)
}

func TestAutoFontSize(t *testing.T) {
	assert.Equal(t, 41.0, render.AutoFontSize(1000, 6))
	assert.Equal(t, 16.0, render.AutoFontSize(100, 6))
	assert.Equal(t, 16.0, render.AutoFontSize(100, 0))
}
