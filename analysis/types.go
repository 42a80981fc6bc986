// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"math"
)

// ResultFlag is the discrete outcome of a classification.
// The integer codes are part of the CSV interchange format and must not change.
type ResultFlag int

const (
	// None means the score alone carries the result (Shannon entropy).
	None ResultFlag = iota
	// SingleBytePattern means the sector is one byte value repeated.
	SingleBytePattern
	// NotRandom means the statistic exceeded the "random" critical value.
	NotRandom
	// Random means the statistic lies between both critical values.
	Random
	// RandomnessSuspiciouslyHigh means the statistic fell below the lower
	// critical value: the sector fits uniformity better than chance allows.
	RandomnessSuspiciouslyHigh
)

var flagNames = [...]string{
	None:                       "NONE",
	SingleBytePattern:          "SINGLE_BYTE_PATTERN",
	NotRandom:                  "NOT_RANDOM",
	Random:                     "RANDOM",
	RandomnessSuspiciouslyHigh: "RANDOMNESS_SUSPICIOUSLY_HIGH",
}

// String returns the upper-case flag name, e.g. "SINGLE_BYTE_PATTERN".
func (f ResultFlag) String() string {
	if f.Valid() {
		return flagNames[f]
	}
	return fmt.Sprintf("ResultFlag(%d)", int(f))
}

// Valid reports whether f is one of the known flags.
func (f ResultFlag) Valid() bool {
	return f >= None && f <= RandomnessSuspiciouslyHigh
}

// Result is the transient outcome of classifying one sector.
//
// Invariant: HasPattern is true if and only if Flag == SingleBytePattern,
// and Pattern then holds the repeated byte value.
type Result struct {
	Randomness float64
	Flag       ResultFlag
	Pattern    byte
	HasPattern bool
}

// PatternResult builds the SINGLE_BYTE_PATTERN result for byte value b.
func PatternResult(b byte) Result {
	return Result{Randomness: 0, Flag: SingleBytePattern, Pattern: b, HasPattern: true}
}

// DefaultSignificanceLevel is the two-sided significance level used when
// neither a level nor explicit limits are configured.
const DefaultSignificanceLevel = 0.0002

// minExpectedCount is the usual validity threshold of the chi-square approximation.
const minExpectedCount = 5

// Options holds the hypothesis-test limits shared by all classifiers.
//
// Fields:
//   - RandLimit    - cumulative probability above which a statistic is "not random".
//   - SusRandLimit - cumulative probability below which randomness is "suspiciously high".
//
// Shannon ignores both; KSTest compares its p-value against 1-RandLimit and
// 1-SusRandLimit.
type Options struct {
	RandLimit    float64
	SusRandLimit float64
}

// DefaultOptions returns limits derived from DefaultSignificanceLevel.
func DefaultOptions() Options {
	opts, _ := OptionsFromSignificance(DefaultSignificanceLevel)
	return opts
}

// OptionsFromSignificance splits a two-sided significance level evenly
// between both tails: RandLimit = 1 - level/2, SusRandLimit = level/2.
func OptionsFromSignificance(level float64) (Options, error) {
	if math.IsNaN(level) || level < 0 || level > 1 {
		return Options{}, analysisErrorf("OptionsFromSignificance", ErrInvalidSignificance, "got %v", level)
	}
	return Options{RandLimit: 1 - level/2, SusRandLimit: level / 2}, nil
}

// Validate checks both limits lie in [0,1] and RandLimit > SusRandLimit.
func (o Options) Validate() error {
	if !inUnit(o.RandLimit) || !inUnit(o.SusRandLimit) {
		return analysisErrorf("Options", ErrInvalidLimits,
			"limits must be within [0,1], got rand_lim=%v sus_rand_lim=%v", o.RandLimit, o.SusRandLimit)
	}
	if o.RandLimit <= o.SusRandLimit {
		return analysisErrorf("Options", ErrInvalidLimits,
			"rand_lim (%v) must be greater than sus_rand_lim (%v)", o.RandLimit, o.SusRandLimit)
	}
	return nil
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
