// SPDX-License-Identifier: MIT

// Package render owns the output image of the image methods: the canvas the
// layout addresses, the optional legend to its right, and PNG encoding.
//
// What:
//
//   - Canvas: visualization area plus legend, filled with a background color.
//   - ParseColor: hex color syntax with optional opacity
//     ("#rrggbb", "#rrggbbaa", "#rrggbb[0.5]", "#rrggbb[50%]",
//     "[0.5]#rrggbb", "[50%]#rrggbb", white, black, transparent).
//   - ContrastColor: black or white text for a background, using the WCAG
//     relative luminance.
//   - LoadFace: TrueType legend font; the built-in Go Regular face is used
//     when no font file is configured.
//
// The canvas is encoded as PNG. Opaque canvases are written as RGB, canvases
// with any transparent pixel as RGBA.
//
// Errors:
//
//   - ErrInvalidColor: unparsable color string.
//   - ErrInvalidFont: font file unreadable or not a TrueType font.
//   - ErrEmptyCanvas: zero-sized visualization area.
//   - ErrOutOfBounds: pixel outside the visualization area.
package render
