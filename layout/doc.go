// SPDX-License-Identifier: MIT

// Package layout maps a sequential sector index onto a 2-D canvas coordinate.
//
// What:
//
//   - RasterScan: row-major, left to right, top to bottom.
//   - SweepingBlocks: the canvas is cut into block×block tiles filled
//     row-major; inside a tile, sectors are placed in raster order.
//   - HilbertCurve: sectors follow a discrete Hilbert curve, so sectors
//     close on disk stay close on the canvas in both dimensions.
//
// Why:
//
//   - A plain raster line of a large image is one very long strip; tiles and
//     space-filling curves keep runs of neighbouring sectors visually compact.
//
// Usage:
//
//	l, err := layout.New(layout.SweepingBlocks, total, layout.DefaultOptions())
//	if err != nil { ... }
//	for i := 0; i < total; i++ {
//		x, y, _ := l.Coords(i)
//		img.Set(x, y, colorOf(i))
//	}
//
// Canvas size is computed once in the constructor from the total sector count.
// Coords is a pure function of the index; the Cursor adapter serves strictly
// sequential writers.
//
// Concurrency:
//
//   - Layouts are immutable after construction; Coords may be called from any
//     number of goroutines. A Cursor is single-owner.
//   - Distinct indices never share a coordinate, so concurrent pixel writers
//     need no locking.
//
// Complexity:
//
//   - RasterScan, SweepingBlocks Coords: O(1).
//   - HilbertCurve Coords: O(log side).
//
// Errors:
//
//   - ErrNoSectors: total sector count < 1.
//   - ErrInvalidDimension: negative width or block size.
//   - ErrWidthNotMultiple: explicit width not a multiple of explicit block size.
//   - ErrIndexOutOfRange: Coords called outside [0, total).
//   - ErrUnknownKind: unrecognized layout name.
//   - ErrDegenerateBlockSize: warning only, see SweepingBlocks.
package layout
