// SPDX-License-Identifier: MIT

package palette

import (
	"image/color"

	"github.com/katalvlaran/sectormap/analysis"
)

// SimpleColors configures a Simple palette.
//
//   - Random, NotRandom, TooRandom: colors of the statistical flags.
//   - ZeroPattern: sectors of repeated 0x00.
//   - Pattern: any other repeated byte, or 0xff when LowPattern is set.
//   - LowPattern: optional; repeated byte p in [1,255] is then shaded from
//     LowPattern (p = 1) to Pattern (p = 255).
//   - AbsoluteNotRandomAt: position between NotRandom (0) and Random (1)
//     used for the NOT_RANDOM flag.
type SimpleColors struct {
	Random              color.NRGBA
	NotRandom           color.NRGBA
	TooRandom           color.NRGBA
	ZeroPattern         color.NRGBA
	Pattern             color.NRGBA
	LowPattern          *color.NRGBA
	AbsoluteNotRandomAt float64
}

// Simple is the palette family shared by sample, rg and photocopy-safe.
type Simple struct {
	name       string
	c          SimpleColors
	absNotRand color.NRGBA
	legend     []LegendEntry
	needsAlpha bool
}

// NewSimple builds a Simple palette.
func NewSimple(name string, c SimpleColors) *Simple {
	s := &Simple{
		name:       name,
		c:          c,
		absNotRand: Interpolate(c.NotRandom, c.Random, c.AbsoluteNotRandomAt, 0, 1),
	}

	s.legend = append(s.legend, LegendEntry{c.ZeroPattern, "Byte pattern (x00)"})
	if c.LowPattern == nil {
		s.legend = append(s.legend, LegendEntry{c.Pattern, "Other byte pattern"})
	} else {
		s.legend = append(s.legend,
			LegendEntry{c.Pattern, "Byte pattern (xff)"},
			LegendEntry{s.patternColor(0x40), "Byte pattern (x40)"})
	}
	s.legend = append(s.legend,
		LegendEntry{c.Random, "Random"},
		LegendEntry{s.absNotRand, "Not random"},
		LegendEntry{c.TooRandom, "Perfect random"})

	colors := []color.NRGBA{c.Random, c.NotRandom, c.TooRandom, c.ZeroPattern, c.Pattern}
	if c.LowPattern != nil {
		colors = append(colors, *c.LowPattern)
	}
	for _, col := range colors {
		if col.A != 0xff {
			s.needsAlpha = true
		}
	}
	return s
}

func (s *Simple) patternColor(p byte) color.NRGBA {
	if s.c.LowPattern == nil {
		return s.c.Pattern
	}
	return Interpolate(*s.c.LowPattern, s.c.Pattern, float64(p), 1, 255)
}

// Name implements Palette.
func (s *Simple) Name() string { return s.name }

// Legend implements Palette.
func (s *Simple) Legend() []LegendEntry { return s.legend }

// NeedsAlpha implements Palette.
func (s *Simple) NeedsAlpha() bool { return s.needsAlpha }

// Get implements Palette.
func (s *Simple) Get(r analysis.Result, _, _ int64) (color.NRGBA, error) {
	switch r.Flag {
	case analysis.SingleBytePattern:
		if r.Pattern == 0 {
			return s.c.ZeroPattern, nil
		}
		return s.patternColor(r.Pattern), nil
	case analysis.RandomnessSuspiciouslyHigh:
		return s.c.TooRandom, nil
	case analysis.Random:
		return s.c.Random, nil
	case analysis.NotRandom:
		return s.absNotRand, nil
	case analysis.None:
		return Interpolate(s.c.NotRandom, s.c.Random, r.Randomness, 0, 1), nil
	default:
		return color.NRGBA{}, invalidFlag(s.name, r.Flag)
	}
}

func rgbPtr(r, g, b uint8) *color.NRGBA {
	c := RGB(r, g, b)
	return &c
}

func init() {
	register(NewSimple("sample", SimpleColors{
		Random:              RGB(255, 0, 255),
		NotRandom:           RGB(0, 0, 0),
		TooRandom:           RGB(255, 0, 0),
		ZeroPattern:         RGB(0, 0, 255),
		Pattern:             RGB(0, 255, 0),
		LowPattern:          rgbPtr(0, 0, 0),
		AbsoluteNotRandomAt: 0.5,
	}))
	// colorbrewer2.org
	register(NewSimple("rg", SimpleColors{
		Random:      RGB(77, 175, 74),
		NotRandom:   RGB(228, 26, 28),
		TooRandom:   RGB(152, 78, 163),
		ZeroPattern: RGB(55, 126, 184),
		Pattern:     RGB(255, 255, 51),
		LowPattern:  rgbPtr(0, 0, 0),
	}))
	register(NewSimple("photocopy-safe", SimpleColors{
		Random:      RGB(43, 131, 186),
		NotRandom:   RGB(215, 25, 28),
		TooRandom:   RGB(253, 174, 97),
		ZeroPattern: RGB(171, 221, 164),
		Pattern:     RGB(255, 255, 191),
	}))
}
