// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var namedColors = map[string]color.NRGBA{
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"transparent": {R: 255, G: 255, B: 255, A: 0},
}

const (
	hexRGB    = `#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})`
	fracAlpha = `(0?\.[0-9]+|1\.0*|0\.)`
	pctAlpha  = `(\d{1,2}|100)%?`
)

var (
	reHex        = regexp.MustCompile(`^` + hexRGB + `([0-9a-f]{2})?$`)
	reFracSuffix = regexp.MustCompile(`^` + hexRGB + `\[` + fracAlpha + `\]$`)
	rePctSuffix  = regexp.MustCompile(`^` + hexRGB + `\[` + pctAlpha + `\]$`)
	reFracPrefix = regexp.MustCompile(`^\[` + fracAlpha + `\]` + hexRGB + `$`)
	rePctPrefix  = regexp.MustCompile(`^\[` + pctAlpha + `\]` + hexRGB + `$`)
)

// ParseColor parses a color name or hex code; see the package documentation
// for the accepted forms. Matching is case-insensitive and ignores
// surrounding spaces. Opacities are rounded half to even onto [0,255].
func ParseColor(s string) (color.NRGBA, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[n]; ok {
		return c, nil
	}
	if m := reHex.FindStringSubmatch(n); m != nil {
		c := rgb(m[1], m[2], m[3])
		if m[4] != "" {
			c.A = hexByte(m[4])
		}
		return c, nil
	}
	if m := reFracSuffix.FindStringSubmatch(n); m != nil {
		return withAlpha(rgb(m[1], m[2], m[3]), fracToAlpha(m[4])), nil
	}
	if m := rePctSuffix.FindStringSubmatch(n); m != nil {
		return withAlpha(rgb(m[1], m[2], m[3]), pctToAlpha(m[4])), nil
	}
	if m := reFracPrefix.FindStringSubmatch(n); m != nil {
		return withAlpha(rgb(m[2], m[3], m[4]), fracToAlpha(m[1])), nil
	}
	if m := rePctPrefix.FindStringSubmatch(n); m != nil {
		return withAlpha(rgb(m[2], m[3], m[4]), pctToAlpha(m[1])), nil
	}
	return color.NRGBA{}, fmt.Errorf("ParseColor: %w: %q is not a valid hex code", ErrInvalidColor, s)
}

// FormatColor writes c as #rrggbb, or #rrggbbaa when it is not opaque.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func rgb(r, g, b string) color.NRGBA {
	return color.NRGBA{R: hexByte(r), G: hexByte(g), B: hexByte(b), A: 0xff}
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

func hexByte(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}

func fracToAlpha(s string) uint8 {
	f, _ := strconv.ParseFloat(s, 64)
	return uint8(math.RoundToEven(f * 255))
}

func pctToAlpha(s string) uint8 {
	p, _ := strconv.Atoi(s)
	return uint8(math.RoundToEven(float64(255*p) / 100))
}

// RelativeLuminance returns the WCAG 2.0 relative luminance of c, ignoring alpha.
func RelativeLuminance(c color.NRGBA) float64 {
	lin := func(v uint8) float64 {
		s := float64(v) / 255
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// contrastThreshold is the luminance at which black and white text reach the
// same contrast ratio.
const contrastThreshold = 0.17913

// ContrastColor returns white for dark backgrounds and black otherwise.
func ContrastColor(bg color.NRGBA) color.NRGBA {
	if RelativeLuminance(bg) < contrastThreshold {
		return namedColors["white"]
	}
	return namedColors["black"]
}
