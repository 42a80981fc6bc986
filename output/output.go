// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/sectormap/layout"
	"github.com/katalvlaran/sectormap/palette"
	"github.com/katalvlaran/sectormap/record"
	"github.com/katalvlaran/sectormap/render"
)

// Sink consumes records in index order.
type Sink interface {
	// Write handles one record. ErrConsumerGone asks the driver to stop.
	Write(r record.Record) error
	// Close flushes buffered output; image sinks encode their PNG here.
	Close() error
	// Warnings lists non-fatal conditions detected at construction.
	Warnings() []error
}

// Options configures every output method; each method reads the fields it needs.
type Options struct {
	// Image methods.
	Layout  layout.Options
	Palette palette.Palette
	Render  render.Options

	// Text methods.
	NoHeader     bool
	Separator    string
	EntropyLimit float64
	Template     string
}

// DefaultOptions returns the default palette, a white background with a
// legend, comma-separated CSV with header, and no entropy filtering.
func DefaultOptions() Options {
	p, _ := palette.Lookup(palette.DefaultName)
	return Options{
		Palette:      p,
		Render:       render.DefaultOptions(),
		Separator:    record.DefaultSeparator,
		EntropyLimit: math.Inf(1),
	}
}

// Validate checks the options relevant to m.
func (o Options) Validate(m Method) error {
	switch {
	case m.IsImage():
		if o.Palette == nil {
			return fmt.Errorf("Options.Validate: %w", ErrNoPalette)
		}
	case math.IsNaN(o.EntropyLimit) || (!math.IsInf(o.EntropyLimit, 1) && (o.EntropyLimit < 0 || o.EntropyLimit > 1)):
		return fmt.Errorf("Options.Validate: %w: got %v", ErrInvalidEntropyLimit, o.EntropyLimit)
	case m == Template:
		if _, err := compileTemplate(o.Template); err != nil {
			return err
		}
	}
	return nil
}

// New opens a sink of method m writing to w.
// total is the number of sector slots image methods size their canvas for.
func New(m Method, total int, w io.Writer, opts Options) (Sink, error) {
	if err := opts.Validate(m); err != nil {
		return nil, err
	}
	switch m {
	case RasterScan, SweepingBlocks, HilbertCurve:
		k, _ := m.LayoutKind()
		s, err := newImageSink(k, total, w, opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	case CSV:
		s, err := newCSVSink(w, opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	case SampleOutput:
		return newLineSink(w, opts.EntropyLimit, func(r record.Record) (string, error) {
			return r.SampleLine(), nil
		}), nil
	case JSON:
		return newLineSink(w, opts.EntropyLimit, jsonLine), nil
	case Template:
		t, _ := compileTemplate(opts.Template)
		return newLineSink(w, opts.EntropyLimit, t.line), nil
	default:
		return nil, fmt.Errorf("New: %w: method %d", ErrUnknownMethod, int(m))
	}
}
