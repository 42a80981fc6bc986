// SPDX-License-Identifier: MIT

package render_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/sectormap/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"white", color.NRGBA{255, 255, 255, 255}},
		{" Black ", color.NRGBA{0, 0, 0, 255}},
		{"transparent", color.NRGBA{255, 255, 255, 0}},
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"ABCDEF", color.NRGBA{0xab, 0xcd, 0xef, 255}},
		{"#00ff0080", color.NRGBA{0, 255, 0, 0x80}},
		{"#0000ff[0.5]", color.NRGBA{0, 0, 255, 128}},
		{"#0000ff[.25]", color.NRGBA{0, 0, 255, 64}},
		{"#0000ff[1.0]", color.NRGBA{0, 0, 255, 255}},
		{"#0000ff[50%]", color.NRGBA{0, 0, 255, 128}},
		{"#0000ff[10]", color.NRGBA{0, 0, 255, 26}},
		{"[0.]#112233", color.NRGBA{0x11, 0x22, 0x33, 0}},
		{"[100%]#112233", color.NRGBA{0x11, 0x22, 0x33, 255}},
		{"[0.2]112233", color.NRGBA{0x11, 0x22, 0x33, 51}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := render.ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "red", "#12345", "#1234567", "#ff0000[1.5]", "#ff0000[101%]", "#gg0000", "[50%]"} {
		_, err := render.ParseColor(bad)
		assert.ErrorIs(t, err, render.ErrInvalidColor, "%q", bad)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#ff00aa", render.FormatColor(color.NRGBA{255, 0, 0xaa, 255}))
	assert.Equal(t, "#ff00aa80", render.FormatColor(color.NRGBA{255, 0, 0xaa, 0x80}))
}

func TestContrastColor(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}
	cases := []struct {
		bg   color.NRGBA
		want color.NRGBA
	}{
		{white, black},
		{black, white},
		{color.NRGBA{0, 0, 255, 255}, white},
		{color.NRGBA{255, 255, 0, 255}, black},
		{color.NRGBA{128, 128, 128, 255}, black},
		{color.NRGBA{100, 100, 100, 255}, white},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, render.ContrastColor(tc.bg), "%v", tc.bg)
	}
	assert.InDelta(t, 1.0, render.RelativeLuminance(white), 1e-12)
	assert.InDelta(t, 0.0, render.RelativeLuminance(black), 1e-12)
}
