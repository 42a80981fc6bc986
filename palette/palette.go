// SPDX-License-Identifier: MIT

package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/sectormap/analysis"
)

// LegendEntry pairs a color with its human-readable meaning.
type LegendEntry struct {
	Color color.NRGBA
	Label string
}

// Palette maps classification results to colors. Implementations are pure
// and safe for concurrent use.
type Palette interface {
	// Name is the registry name, e.g. "sample".
	Name() string
	// Get returns the color of one sector.
	Get(r analysis.Result, number, offset int64) (color.NRGBA, error)
	// Legend lists every distinguishable outcome in display order.
	Legend() []LegendEntry
	// NeedsAlpha reports whether any palette color is not fully opaque.
	NeedsAlpha() bool
}

// DefaultName is the palette used when none is configured.
const DefaultName = "sample"

// Interpolate shades linearly from c1 at val == lo to c2 at val == hi.
// Every channel, alpha included, is computed as
//
//	c1 + round((c1 - c2) / (lo - hi) · (val - lo))
//
// with round-half-to-even, then clamped to [0,255].
func Interpolate(c1, c2 color.NRGBA, val, lo, hi float64) color.NRGBA {
	ch := func(a, b uint8) uint8 {
		v := float64(a) + math.RoundToEven((float64(a)-float64(b))/(lo-hi)*(val-lo))
		switch {
		case v < 0:
			return 0
		case v > 255:
			return 255
		}
		return uint8(v)
	}
	return color.NRGBA{R: ch(c1.R, c2.R), G: ch(c1.G, c2.G), B: ch(c1.B, c2.B), A: ch(c1.A, c2.A)}
}

// RGB is shorthand for an opaque color.
func RGB(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

var registry = map[string]Palette{}

func register(p Palette) {
	registry[p.Name()] = p
}

// Lookup returns the registered palette called name.
func Lookup(name string) (Palette, error) {
	if p, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("Lookup: %w: %q (available: %s)", ErrUnknownPalette, name, strings.Join(Names(), ", "))
}

// Names returns the registered palette names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func invalidFlag(name string, f analysis.ResultFlag) error {
	return fmt.Errorf("%s.Get: %w: %s", name, ErrInvalidFlag, f)
}
