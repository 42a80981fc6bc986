// SPDX-License-Identifier: MIT

package analysis

import "math"

// KSTest runs a one-sample, two-sided Kolmogorov–Smirnov test of the sector's
// byte values against the continuous Uniform[0,255] distribution and maps the
// asymptotic p-value onto a flag:
//
//	p > 1 - sus_rand_lim → RANDOMNESS_SUSPICIOUSLY_HIGH (score 0.0)
//	p < 1 - rand_lim     → NOT_RANDOM                   (score 0.5)
//	otherwise            → RANDOM                       (score 0.5)
type KSTest struct {
	sectorSize  int
	pRandLim    float64
	pSusRandLim float64
	sqrtN       float64
}

// NewKSTest builds a KSTest classifier.
func NewKSTest(sectorSize int, opts Options) (*KSTest, error) {
	if err := validateSectorSize("NewKSTest", sectorSize); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &KSTest{
		sectorSize:  sectorSize,
		pRandLim:    1 - opts.RandLimit,
		pSusRandLim: 1 - opts.SusRandLimit,
		sqrtN:       math.Sqrt(float64(sectorSize)),
	}, nil
}

// Calc classifies buf.
// Complexity: O(n + 256); the empirical CDF is built from a histogram, not a sort.
func (k *KSTest) Calc(buf []byte) (Result, error) {
	if err := checkLen("KSTest.Calc", buf, k.sectorSize); err != nil {
		return Result{}, err
	}
	if b, ok := singleByte(buf); ok {
		return PatternResult(b), nil
	}

	p := kolmogorovSurvival(ksStatistic(buf) * k.sqrtN)
	switch {
	case p > k.pSusRandLim:
		return Result{Randomness: scoreSuspicious, Flag: RandomnessSuspiciouslyHigh}, nil
	case p < k.pRandLim:
		return Result{Randomness: scoreNotRandom, Flag: NotRandom}, nil
	default:
		return Result{Randomness: scoreNotRandom, Flag: Random}, nil
	}
}

// PValue returns the asymptotic two-sided p-value for buf without classifying it.
func (k *KSTest) PValue(buf []byte) (float64, error) {
	if err := checkLen("KSTest.PValue", buf, k.sectorSize); err != nil {
		return 0, err
	}
	return kolmogorovSurvival(ksStatistic(buf) * k.sqrtN), nil
}

// SectorSize implements Classifier.
func (k *KSTest) SectorSize() int { return k.sectorSize }

// Warnings implements Classifier; KSTest has none.
func (k *KSTest) Warnings() []error { return nil }

// ksStatistic returns D = sup|F_n(x) - x/255| for the bytes of buf.
//
// With tied samples the extremes of the sorted-sample formulas
// D+ = max(i/n - F(x_i)) and D- = max(F(x_i) - (i-1)/n) are reached at the
// last and first occurrence of each value, i.e. at the cumulative counts.
func ksStatistic(buf []byte) float64 {
	var counts [256]int
	for _, b := range buf {
		counts[b]++
	}
	n := float64(len(buf))
	var d float64
	below := 0
	for v, c := range counts {
		if c == 0 {
			continue
		}
		cdf := float64(v) / 255
		if dm := cdf - float64(below)/n; dm > d {
			d = dm
		}
		below += c
		if dp := float64(below)/n - cdf; dp > d {
			d = dp
		}
	}
	return d
}

// kolmogorovSurvival returns P(K > x) for the limiting Kolmogorov distribution.
//
// Two series are used, each where it converges fast:
//   - x < 1.18: K(x) = √(2π)/x · Σ_{k≥1} exp(-(2k-1)²π²/(8x²)), result 1 - K(x);
//   - otherwise: Q(x) = 2 Σ_{k≥1} (-1)^(k-1) exp(-2k²x²).
func kolmogorovSurvival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	if x < 1.18 {
		t := -math.Pi * math.Pi / (8 * x * x)
		var s float64
		for k := 1; k <= 10; k++ {
			m := float64(2*k - 1)
			term := math.Exp(m * m * t)
			s += term
			if term < 1e-17 {
				break
			}
		}
		return clamp01(1 - math.Sqrt(2*math.Pi)/x*s)
	}
	var s float64
	sign := 1.0
	for k := 1; k <= 100; k++ {
		kk := float64(k)
		term := math.Exp(-2 * kk * kk * x * x)
		s += sign * term
		if term < 1e-17 {
			break
		}
		sign = -sign
	}
	return clamp01(2 * s)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
