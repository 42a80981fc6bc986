// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/sectormap/palette"
)

// Options controls the canvas outside the visualization area.
type Options struct {
	NoLegend   bool
	Background color.NRGBA
	// TextColor of the legend; nil picks ContrastColor(Background).
	TextColor *color.NRGBA
	// FontPath as accepted by LoadFace.
	FontPath string
	// FontSize in pixels; 0 selects AutoFontSize.
	FontSize float64
	// Alpha keeps the alpha channel of the background and text colors.
	// Without it the canvas is opaque and encodes as an RGB PNG.
	Alpha bool
}

// DefaultOptions returns a white background with a legend in the built-in font.
func DefaultOptions() Options {
	return Options{Background: namedColors["white"]}
}

// Canvas is the output image: a width×height visualization area at the
// origin and, unless disabled, a vertically centered legend to its right.
type Canvas struct {
	img        *image.NRGBA
	visW, visH int
	legendW    int
	legendH    int
}

// NewCanvas allocates the image, fills it with the background and draws the
// legend entries. An empty legend is treated as NoLegend.
func NewCanvas(width, height int, legend []palette.LegendEntry, opts Options) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("NewCanvas: %w: %dx%d", ErrEmptyCanvas, width, height)
	}
	c := &Canvas{visW: width, visH: height}
	if !opts.Alpha {
		opts.Background.A = 0xff
		if opts.TextColor != nil {
			tc := *opts.TextColor
			tc.A = 0xff
			opts.TextColor = &tc
		}
	}

	var lg *legendGeometry
	if !opts.NoLegend && len(legend) > 0 {
		size := opts.FontSize
		if size <= 0 {
			size = AutoFontSize(height, len(legend))
		}
		face, err := LoadFace(opts.FontPath, size)
		if err != nil {
			return nil, err
		}
		lg = measureLegend(face, legend)
		c.legendW, c.legendH = lg.width, lg.height
	}

	bounds := image.Rect(0, 0, width+c.legendW, max(height, c.legendH))
	c.img = image.NewNRGBA(bounds)
	draw.Draw(c.img, bounds, image.NewUniform(opts.Background), image.Point{}, draw.Src)

	if lg != nil {
		text := ContrastColor(opts.Background)
		if opts.TextColor != nil {
			text = *opts.TextColor
		}
		c.drawLegend(lg, legend, text, ContrastColor(opts.Background))
	}
	return c, nil
}

// Set colors the pixel (x, y) of the visualization area.
// Distinct pixels may be set from distinct goroutines.
func (c *Canvas) Set(x, y int, col color.NRGBA) error {
	if x < 0 || y < 0 || x >= c.visW || y >= c.visH {
		return fmt.Errorf("Canvas.Set: %w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, c.visW, c.visH)
	}
	c.img.SetNRGBA(x, y, col)
	return nil
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// LegendSize returns the legend area, (0,0) without a legend.
func (c *Canvas) LegendSize() (w, h int) { return c.legendW, c.legendH }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, c.img)
}

// legendGeometry is the measured legend layout.
//
//	square  = line height of the face
//	spacing = square/2
//	width   = 3·spacing + square + widest label
//	height  = Σ line heights + (entries+1)·spacing
type legendGeometry struct {
	face          font.Face
	square        int
	spacing       int
	ascent        int
	width, height int
}

func measureLegend(face font.Face, legend []palette.LegendEntry) *legendGeometry {
	m := face.Metrics()
	line := m.Ascent.Ceil() + m.Descent.Ceil()
	g := &legendGeometry{face: face, square: line, spacing: line / 2, ascent: m.Ascent.Ceil()}

	widest := 0
	for _, e := range legend {
		widest = max(widest, font.MeasureString(face, e.Label).Ceil())
	}
	g.width = 3*g.spacing + g.square + widest
	g.height = len(legend)*line + (len(legend)+1)*g.spacing
	return g
}

func (c *Canvas) drawLegend(g *legendGeometry, legend []palette.LegendEntry, text, outline color.NRGBA) {
	b := c.img.Bounds()
	squareX := b.Dx() - g.width + g.spacing
	textX := squareX + g.square + g.spacing
	y := b.Dy()/2 - g.height/2 + g.spacing

	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(text), Face: g.face}
	for _, e := range legend {
		sq := image.Rect(squareX, y, squareX+g.square+1, y+g.square+1)
		draw.Draw(c.img, sq, image.NewUniform(e.Color), image.Point{}, draw.Src)
		strokeRect(c.img, sq, outline)

		d.Dot = fixed.Point26_6{X: fixed.I(textX), Y: fixed.I(y + g.ascent)}
		d.DrawString(e.Label)
		y += g.square + g.spacing
	}
}

// strokeRect draws a one-pixel border along the inside of r.
func strokeRect(img *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetNRGBA(x, r.Min.Y, col)
		img.SetNRGBA(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetNRGBA(r.Min.X, y, col)
		img.SetNRGBA(r.Max.X-1, y, col)
	}
}
