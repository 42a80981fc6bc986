// SPDX-License-Identifier: MIT

package analysis

import "strings"

// Classifier turns one sector-sized buffer into a Result.
// Implementations are immutable after construction and safe for concurrent use.
type Classifier interface {
	// Calc classifies buf. It returns ErrSectorSize if len(buf) != SectorSize().
	Calc(buf []byte) (Result, error)
	// SectorSize is the exact buffer length Calc accepts.
	SectorSize() int
	// Warnings lists non-fatal conditions detected at construction.
	Warnings() []error
}

// Method selects one classifier variant.
type Method int

const (
	// MethodShannon is normalized Shannon entropy.
	MethodShannon Method = iota
	// MethodChiSquare1 is chi-square over single bits.
	MethodChiSquare1
	// MethodChiSquare3 is chi-square over 3-bit groups.
	MethodChiSquare3
	// MethodChiSquare4 is chi-square over nibbles.
	MethodChiSquare4
	// MethodChiSquare8 is chi-square over bytes.
	MethodChiSquare8
	// MethodKSTest is the Kolmogorov–Smirnov test against Uniform[0,255].
	MethodKSTest
)

// DefaultMethod is used when no analysis method is configured.
const DefaultMethod = MethodChiSquare4

var methodNames = [...]string{
	MethodShannon:    "shannon",
	MethodChiSquare1: "chi2-1",
	MethodChiSquare3: "chi2-3",
	MethodChiSquare4: "chi2-4",
	MethodChiSquare8: "chi2-8",
	MethodKSTest:     "kstest",
}

// String returns the configuration name of the method.
func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return "unknown"
}

// Methods returns every method in declaration order.
func Methods() []Method {
	out := make([]Method, len(methodNames))
	for i := range methodNames {
		out[i] = Method(i)
	}
	return out
}

// ParseMethod resolves a configuration name such as "chi2-4".
func ParseMethod(name string) (Method, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range methodNames {
		if s == n {
			return Method(i), nil
		}
	}
	return 0, analysisErrorf("ParseMethod", ErrUnknownMethod, "%q (available: %s)", name, strings.Join(methodNames[:], ", "))
}

// New builds the classifier for method m.
//
// Errors:
//   - ErrInvalidSectorSize if sectorSize is not a positive power of two.
//   - ErrInvalidLimits if opts fail validation (Shannon ignores opts entirely).
//   - ErrUnknownMethod for an out-of-range Method value.
func New(m Method, sectorSize int, opts Options) (Classifier, error) {
	switch m {
	case MethodShannon:
		return NewShannon(sectorSize)
	case MethodChiSquare1:
		return NewChiSquare(1, sectorSize, opts)
	case MethodChiSquare3:
		return NewChiSquare(3, sectorSize, opts)
	case MethodChiSquare4:
		return NewChiSquare(4, sectorSize, opts)
	case MethodChiSquare8:
		return NewChiSquare(8, sectorSize, opts)
	case MethodKSTest:
		return NewKSTest(sectorSize, opts)
	default:
		return nil, analysisErrorf("New", ErrUnknownMethod, "method %d", int(m))
	}
}

func validateSectorSize(op string, n int) error {
	if n <= 0 || n&(n-1) != 0 {
		return analysisErrorf(op, ErrInvalidSectorSize, "got %d", n)
	}
	return nil
}

func checkLen(op string, buf []byte, want int) error {
	if len(buf) != want {
		return analysisErrorf(op, ErrSectorSize, "got %d bytes, want %d", len(buf), want)
	}
	return nil
}

// singleByte reports whether buf consists of one repeated byte value.
// Complexity: O(n), stops at the first differing byte.
func singleByte(buf []byte) (byte, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	b := buf[0]
	for _, v := range buf[1:] {
		if v != b {
			return 0, false
		}
	}
	return b, true
}
