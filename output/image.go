// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/katalvlaran/sectormap/layout"
	"github.com/katalvlaran/sectormap/palette"
	"github.com/katalvlaran/sectormap/record"
	"github.com/katalvlaran/sectormap/render"
)

// ImageSink colors one pixel per record and encodes the PNG on Close.
type ImageSink struct {
	w      io.Writer
	layout layout.Layout
	pal    palette.Palette
	canvas *render.Canvas
	closed bool
}

func newImageSink(k layout.Kind, total int, w io.Writer, opts Options) (*ImageSink, error) {
	l, err := layout.New(k, total, opts.Layout)
	if err != nil {
		return nil, err
	}
	ro := opts.Render
	ro.Alpha = ro.Alpha || NeedsAlpha(opts)
	c, err := render.NewCanvas(l.Width(), l.Height(), opts.Palette.Legend(), ro)
	if err != nil {
		return nil, err
	}
	return &ImageSink{w: w, layout: l, pal: opts.Palette, canvas: c}, nil
}

// NeedsAlpha reports whether an image method must keep an alpha channel:
// the palette or one of the configured colors is not fully opaque.
func NeedsAlpha(opts Options) bool {
	if opts.Palette != nil && opts.Palette.NeedsAlpha() {
		return true
	}
	if opts.Render.Background.A != 0xff {
		return true
	}
	return opts.Render.TextColor != nil && opts.Render.TextColor.A != 0xff
}

// Write colors the pixel of r.Number.
func (s *ImageSink) Write(r record.Record) error {
	x, y, err := s.layout.Coords(int(r.Number))
	if err != nil {
		return err
	}
	col, err := s.pal.Get(r.Result, r.Number, r.Offset)
	if err != nil {
		return err
	}
	return s.canvas.Set(x, y, col)
}

// Close encodes the canvas once; later calls are no-ops.
func (s *ImageSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.canvas.EncodePNG(s.w); err != nil {
		return consumerError("ImageSink.Close", err)
	}
	return nil
}

// Warnings returns the layout warnings.
func (s *ImageSink) Warnings() []error { return s.layout.Warnings() }

// Layout returns the layout in use.
func (s *ImageSink) Layout() layout.Layout { return s.layout }

// Canvas returns the canvas being drawn.
func (s *ImageSink) Canvas() *render.Canvas { return s.canvas }

// String describes the sink for logs.
func (s *ImageSink) String() string {
	return fmt.Sprintf("%s %dx%d (%s)", s.layout.Kind(), s.layout.Width(), s.layout.Height(), s.pal.Name())
}
