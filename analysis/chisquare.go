// SPDX-License-Identifier: MIT

package analysis

import (
	"math/bits"

	"gonum.org/v1/gonum/stat/distuv"
)

// Score levels of the chi-square family. They form a coarse
// three-level signal, not a continuous confidence.
const (
	scoreSuspicious = 0.0
	scoreNotRandom  = 0.5
	scoreRandom     = 1.0
)

// ChiSquare compares the distribution of N-bit symbols in a sector with the
// uniform distribution.
//
// Symbol extraction per N:
//   - 8: every byte is one symbol (sector_size symbols).
//   - 4: both nibbles of every byte (2·sector_size symbols).
//   - 3: the bit stream cut into consecutive 3-bit groups, most significant
//     bit first; a trailing partial group is dropped (⌊8·sector_size/3⌋ symbols).
//   - 1: single bits; only the Hamming weight is needed (8·sector_size symbols).
//
// The statistic is Σ(observed - expected)² without the usual division by the
// expected count; the critical values are scaled by the expected count instead.
type ChiSquare struct {
	bits         int
	sectorSize   int
	symbols      int
	expected     float64
	randLimit    float64
	susRandLimit float64
	warnings     []error
}

// NewChiSquare builds a chi-square classifier over n-bit symbols, n ∈ {1,3,4,8}.
//
// Critical values:
//
//	random_limit     = χ²⁻¹(opts.RandLimit,    2^n - 1) · expected
//	sus_random_limit = χ²⁻¹(opts.SusRandLimit, 2^n - 1) · expected
//
// A warning ErrTooSmallExpectedCount is recorded when expected < 5.
func NewChiSquare(n, sectorSize int, opts Options) (*ChiSquare, error) {
	const op = "NewChiSquare"
	if err := validateSectorSize(op, sectorSize); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var symbols int
	switch n {
	case 8:
		symbols = sectorSize
	case 4:
		symbols = 2 * sectorSize
	case 3:
		symbols = sectorSize * 8 / 3
	case 1:
		symbols = sectorSize * 8
	default:
		return nil, analysisErrorf(op, ErrUnknownMethod, "unsupported symbol width %d", n)
	}

	buckets := 1 << n
	expected := float64(symbols) / float64(buckets)
	dist := distuv.ChiSquared{K: float64(buckets - 1)}

	c := &ChiSquare{
		bits:         n,
		sectorSize:   sectorSize,
		symbols:      symbols,
		expected:     expected,
		randLimit:    dist.Quantile(opts.RandLimit) * expected,
		susRandLimit: dist.Quantile(opts.SusRandLimit) * expected,
	}
	if expected < minExpectedCount {
		c.warnings = append(c.warnings, analysisErrorf(op, ErrTooSmallExpectedCount,
			"expected %.3g symbols per bucket with chi2-%d and sector size %d", expected, n, sectorSize))
	}
	return c, nil
}

// Calc classifies buf.
//
// Order of checks:
//  1. length precondition (ErrSectorSize);
//  2. one repeated byte value → SINGLE_BYTE_PATTERN with that value;
//  3. all symbols in the all-zero / all-one bucket → pattern 0x00 / 0xff
//     (only reachable for N=3, where trailing bits are ignored);
//  4. statistic against both critical values.
//
// Complexity: O(n) time, O(2^N) memory.
func (c *ChiSquare) Calc(buf []byte) (Result, error) {
	if err := checkLen("ChiSquare.Calc", buf, c.sectorSize); err != nil {
		return Result{}, err
	}
	if b, ok := singleByte(buf); ok {
		return PatternResult(b), nil
	}

	var stat float64
	switch c.bits {
	case 1:
		set := 0
		for _, b := range buf {
			set += bits.OnesCount8(b)
		}
		d := float64(set) - c.expected
		stat = 2 * d * d
	case 3:
		var vals [8]int
		count3(buf, &vals)
		if vals[0] == c.symbols {
			return PatternResult(0x00), nil
		}
		if vals[7] == c.symbols {
			return PatternResult(0xff), nil
		}
		stat = c.sumSquares(vals[:])
	case 4:
		var vals [16]int
		for _, b := range buf {
			vals[b&0x0f]++
			vals[b>>4]++
		}
		stat = c.sumSquares(vals[:])
	default:
		var vals [256]int
		for _, b := range buf {
			vals[b]++
		}
		stat = c.sumSquares(vals[:])
	}

	return c.classify(stat), nil
}

func (c *ChiSquare) classify(stat float64) Result {
	switch {
	case stat < c.susRandLimit:
		return Result{Randomness: scoreSuspicious, Flag: RandomnessSuspiciouslyHigh}
	case stat <= c.randLimit:
		return Result{Randomness: scoreRandom, Flag: Random}
	default:
		return Result{Randomness: scoreNotRandom, Flag: NotRandom}
	}
}

func (c *ChiSquare) sumSquares(vals []int) float64 {
	var s float64
	for _, o := range vals {
		d := float64(o) - c.expected
		s += d * d
	}
	return s
}

// count3 tallies consecutive 3-bit groups of the MSB-first bit stream.
func count3(buf []byte, vals *[8]int) {
	var acc uint32
	var n uint
	for _, b := range buf {
		acc = acc<<8 | uint32(b)
		n += 8
		for n >= 3 {
			n -= 3
			vals[(acc>>n)&7]++
		}
		acc &= 1<<n - 1
	}
}

// Limits returns the scaled critical values (sus_random_limit, random_limit).
func (c *ChiSquare) Limits() (sus, random float64) { return c.susRandLimit, c.randLimit }

// Expected returns the expected count per bucket.
func (c *ChiSquare) Expected() float64 { return c.expected }

// Bits returns the symbol width N.
func (c *ChiSquare) Bits() int { return c.bits }

// SectorSize implements Classifier.
func (c *ChiSquare) SectorSize() int { return c.sectorSize }

// Warnings implements Classifier.
func (c *ChiSquare) Warnings() []error { return c.warnings }
