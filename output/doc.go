// SPDX-License-Identifier: MIT

// Package output turns the ordered record stream into the requested artifact.
//
// Image methods place every record on a canvas with a layout and a palette
// and write one PNG on Close:
//
//   - raster-scan (alias sweeping), sweeping-blocks, hilbert-curve.
//
// Text methods write one line per record as records arrive:
//
//   - csv: interchange format, optional header, custom separator;
//   - sample-output: human-readable lines;
//   - json: one JSON object per line;
//   - template: user-defined line with {tag} placeholders.
//
// Text methods skip records whose randomness exceeds EntropyLimit.
//
// A reader that goes away (EPIPE on the destination) is reported as
// ErrConsumerGone; drivers stop and exit successfully on it.
package output
