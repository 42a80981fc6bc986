// SPDX-License-Identifier: MIT

package layout

import (
	"math"
	"strings"
)

// Kind selects one layout strategy.
type Kind int

const (
	// RasterScan places sectors row by row.
	RasterScan Kind = iota
	// SweepingBlocks places sectors row by row inside square tiles.
	SweepingBlocks
	// HilbertCurve places sectors along a Hilbert curve.
	HilbertCurve
)

// DefaultKind is used when no layout is configured.
const DefaultKind = SweepingBlocks

// DefaultBlockSize is the preferred SweepingBlocks tile side.
const DefaultBlockSize = 32

var kindNames = [...]string{
	RasterScan:     "raster-scan",
	SweepingBlocks: "sweeping-blocks",
	HilbertCurve:   "hilbert-curve",
}

// kindAliases holds accepted alternative spellings.
var kindAliases = map[string]Kind{
	"sweeping": RasterScan,
}

// String returns the configuration name of k.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns every layout kind in declaration order.
func Kinds() []Kind {
	return []Kind{RasterScan, SweepingBlocks, HilbertCurve}
}

// ParseKind resolves a configuration name such as "hilbert-curve".
// "sweeping" is accepted as an alias of "raster-scan".
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range kindNames {
		if s == n {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}
	return 0, layoutErrorf("ParseKind", ErrUnknownKind, "%q (available: %s)", name, strings.Join(kindNames[:], ", "))
}

// Options holds the user-facing layout parameters. Zero means automatic.
//
//   - Width: canvas width in pixels (RasterScan, SweepingBlocks).
//   - BlockSize: tile side (SweepingBlocks only).
//
// HilbertCurve derives its canvas from the sector count alone and ignores both.
type Options struct {
	Width     int
	BlockSize int
}

// DefaultOptions returns automatic width and block size.
func DefaultOptions() Options {
	return Options{}
}

// Layout maps sector indices onto a fixed canvas.
type Layout interface {
	// Kind reports the strategy.
	Kind() Kind
	// Width and Height are the canvas size, fixed at construction.
	Width() int
	Height() int
	// Total is the sector count the canvas was sized for.
	Total() int
	// Coords returns the pixel of sector i, or ErrIndexOutOfRange.
	Coords(i int) (x, y int, err error)
	// Warnings lists non-fatal conditions detected at construction.
	Warnings() []error
}

// New builds the layout of kind k for total sectors.
func New(k Kind, total int, opts Options) (Layout, error) {
	switch k {
	case RasterScan:
		return NewRasterScan(total, opts.Width)
	case SweepingBlocks:
		return NewSweepingBlocks(total, opts.Width, opts.BlockSize)
	case HilbertCurve:
		return NewHilbertCurve(total)
	default:
		return nil, layoutErrorf("New", ErrUnknownKind, "kind %d", int(k))
	}
}

// canvas carries the state shared by every layout.
type canvas struct {
	total, width, height int
	warnings             []error
}

func (c *canvas) Width() int        { return c.width }
func (c *canvas) Height() int       { return c.height }
func (c *canvas) Total() int        { return c.total }
func (c *canvas) Warnings() []error { return c.warnings }

func (c *canvas) check(op string, i int) error {
	if i < 0 || i >= c.total {
		return layoutErrorf(op, ErrIndexOutOfRange, "index %d, total %d", i, c.total)
	}
	return nil
}

func checkTotal(op string, total int) error {
	if total < 1 {
		return layoutErrorf(op, ErrNoSectors, "got %d", total)
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// isqrtCeil returns ⌈√n⌉ for n >= 0.
func isqrtCeil(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for r*r < n {
		r++
	}
	return r
}
