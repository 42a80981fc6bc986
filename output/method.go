// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sectormap/layout"
)

// Method selects an output format.
type Method int

const (
	// RasterScan is an image laid out row by row.
	RasterScan Method = iota
	// SweepingBlocks is an image laid out in square tiles.
	SweepingBlocks
	// HilbertCurve is an image laid out along a Hilbert curve.
	HilbertCurve
	// CSV writes the interchange format.
	CSV
	// SampleOutput writes human-readable lines.
	SampleOutput
	// JSON writes JSON lines.
	JSON
	// Template writes user-formatted lines.
	Template
)

// DefaultMethod is used when no output method is configured.
const DefaultMethod = SweepingBlocks

var methodNames = [...]string{
	RasterScan:     "raster-scan",
	SweepingBlocks: "sweeping-blocks",
	HilbertCurve:   "hilbert-curve",
	CSV:            "csv",
	SampleOutput:   "sample-output",
	JSON:           "json",
	Template:       "template",
}

// String returns the configuration name of m.
func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return "unknown"
}

// Methods returns every output method in declaration order.
func Methods() []Method {
	out := make([]Method, len(methodNames))
	for i := range out {
		out[i] = Method(i)
	}
	return out
}

// IsImage reports whether m renders a PNG.
func (m Method) IsImage() bool {
	return m == RasterScan || m == SweepingBlocks || m == HilbertCurve
}

// LayoutKind returns the layout of an image method.
func (m Method) LayoutKind() (layout.Kind, bool) {
	switch m {
	case RasterScan:
		return layout.RasterScan, true
	case SweepingBlocks:
		return layout.SweepingBlocks, true
	case HilbertCurve:
		return layout.HilbertCurve, true
	}
	return 0, false
}

// ParseMethod resolves a configuration name. Layout names, including the
// "sweeping" alias, select the matching image method.
func ParseMethod(name string) (Method, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range methodNames {
		if s == n {
			return Method(i), nil
		}
	}
	if k, err := layout.ParseKind(n); err == nil {
		for _, m := range Methods() {
			if lk, ok := m.LayoutKind(); ok && lk == k {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("ParseMethod: %w: %q (available: %s)", ErrUnknownMethod, name, strings.Join(methodNames[:], ", "))
}
