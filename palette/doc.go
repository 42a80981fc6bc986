// SPDX-License-Identifier: MIT

// Package palette turns a sector classification into a pixel color and
// describes the colors it uses as an ordered legend.
//
// Registered palettes:
//
//   - sample (default): magenta random, black non-random, red suspiciously
//     random, blue zero pattern, green-to-black shading of other patterns.
//   - rg: colorbrewer red/green scheme.
//   - photocopy-safe: colorbrewer scheme that survives grayscale copying.
//   - asalor: four-color scheme separating zeroed, patterned and data sectors.
//
// Score-only results (flag NONE, Shannon entropy) are shaded linearly
// between the not-random and random colors with Interpolate.
//
// Errors:
//
//   - ErrInvalidFlag: Get received a result flag the palette does not know.
//   - ErrUnknownPalette: Lookup received an unregistered name.
package palette
