// SPDX-License-Identifier: MIT

package palette

import (
	"image/color"

	"github.com/katalvlaran/sectormap/analysis"
)

var (
	asalorZeroed  = RGB(93, 132, 41)
	asalorPattern = RGB(192, 192, 192)
	asalorNotRand = RGB(186, 0, 70)
	asalorRandom  = RGB(0, 0, 0)
)

// Asalor is a four-color palette that does not separate suspiciously random
// sectors from random ones.
type Asalor struct{}

// Name implements Palette.
func (Asalor) Name() string { return "asalor" }

// NeedsAlpha implements Palette.
func (Asalor) NeedsAlpha() bool { return false }

// Legend implements Palette.
func (Asalor) Legend() []LegendEntry {
	return []LegendEntry{
		{asalorZeroed, "zeroed/discarded"},
		{asalorPattern, "nonzero byte pattern"},
		{asalorNotRand, "data (not random)"},
		{asalorRandom, "data (random)"},
	}
}

// Get implements Palette.
func (Asalor) Get(r analysis.Result, _, _ int64) (color.NRGBA, error) {
	switch r.Flag {
	case analysis.SingleBytePattern:
		if r.Pattern == 0 {
			return asalorZeroed, nil
		}
		return asalorPattern, nil
	case analysis.Random, analysis.RandomnessSuspiciouslyHigh:
		return asalorRandom, nil
	case analysis.NotRandom:
		return asalorNotRand, nil
	case analysis.None:
		return Interpolate(asalorNotRand, asalorRandom, r.Randomness, 0, 1), nil
	default:
		return color.NRGBA{}, invalidFlag("asalor", r.Flag)
	}
}

func init() {
	register(Asalor{})
}
