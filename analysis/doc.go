// SPDX-License-Identifier: MIT

// Package analysis classifies fixed-size sectors of a disk image by how
// random their content looks.
//
// What:
//
//   - Shannon: normalized byte-level Shannon entropy, a continuous score.
//   - ChiSquare(N): Pearson-style chi-square statistic over N-bit symbols
//     (N ∈ {1,3,4,8}) compared against two critical values, yielding a
//     three-level signal (NOT_RANDOM / RANDOM / RANDOMNESS_SUSPICIOUSLY_HIGH).
//   - KSTest: one-sample Kolmogorov–Smirnov test of the byte values against
//     the continuous Uniform[0,255] distribution (asymptotic p-value).
//
// Every classifier detects sectors made of one repeated byte value and
// reports them as SINGLE_BYTE_PATTERN together with that value.
//
// Why:
//
//   - Encrypted or well-compressed data is statistically random; zeroed,
//     discarded or plaintext sectors are not. Sectors that are "too uniform"
//     (statistic far below its expectation) are flagged separately: real
//     random data almost never fits the expected distribution that well.
//
// Usage:
//
//	m, _ := analysis.ParseMethod("chi2-4")
//	c, err := analysis.New(m, 512, analysis.DefaultOptions())
//	if err != nil { ... }
//	res, err := c.Calc(sector)
//
// Concurrency:
//
//	Classifiers are immutable after construction; a single instance may be
//	shared by any number of goroutines.
//
// Complexity:
//
//   - Construction: O(1) (critical values are computed once).
//   - Calc: O(sector_size) time, O(2^N) extra memory.
//
// Errors:
//
//   - ErrSectorSize: Calc received a buffer whose length is not the sector size.
//   - ErrInvalidSectorSize, ErrInvalidLimits, ErrUnknownMethod: construction.
//   - ErrTooSmallExpectedCount: non-fatal, reported through Warnings().
package analysis
