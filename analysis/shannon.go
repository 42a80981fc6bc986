// SPDX-License-Identifier: MIT

package analysis

import "math"

// Shannon scores a sector by its byte-level Shannon entropy divided by 8,
// the maximum entropy of one byte. The flag is always None except for
// single-byte patterns, which short-circuit to score 0.
type Shannon struct {
	sectorSize int
	log2Size   float64
}

// NewShannon builds a Shannon classifier for sectors of sectorSize bytes.
func NewShannon(sectorSize int) (*Shannon, error) {
	if err := validateSectorSize("NewShannon", sectorSize); err != nil {
		return nil, err
	}
	return &Shannon{sectorSize: sectorSize, log2Size: math.Log2(float64(sectorSize))}, nil
}

// Calc computes -Σ p·log2(p) over the observed byte frequencies.
//
// Implementation:
//   - Σ p·log2(p) = (Σ f·log2(f))/n - log2(n) for counts f, so the sum runs
//     over integer counts and the division happens once.
//
// Complexity: O(n + 256).
func (s *Shannon) Calc(buf []byte) (Result, error) {
	if err := checkLen("Shannon.Calc", buf, s.sectorSize); err != nil {
		return Result{}, err
	}

	var counts [256]int
	for _, b := range buf {
		counts[b]++
	}

	distinct, last := 0, 0
	var sum float64
	for v, f := range counts {
		if f == 0 {
			continue
		}
		distinct++
		last = v
		ff := float64(f)
		sum += ff * math.Log2(ff)
	}
	if distinct == 1 {
		return PatternResult(byte(last)), nil
	}

	entropy := sum/float64(s.sectorSize) - s.log2Size
	return Result{Randomness: math.Abs(entropy) / 8, Flag: None}, nil
}

// SectorSize implements Classifier.
func (s *Shannon) SectorSize() int { return s.sectorSize }

// Warnings implements Classifier; Shannon has none.
func (s *Shannon) Warnings() []error { return nil }
