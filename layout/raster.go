// SPDX-License-Identifier: MIT

package layout

// Raster places sector i at (i mod width, i div width).
type Raster struct {
	canvas
}

// NewRasterScan builds a raster layout. width 0 selects the smallest square
// canvas, ⌈√total⌉ pixels wide.
func NewRasterScan(total, width int) (*Raster, error) {
	const op = "NewRasterScan"
	if err := checkTotal(op, total); err != nil {
		return nil, err
	}
	if width < 0 {
		return nil, layoutErrorf(op, ErrInvalidDimension, "width %d", width)
	}
	if width == 0 {
		width = isqrtCeil(total)
	}
	return &Raster{canvas{total: total, width: width, height: ceilDiv(total, width)}}, nil
}

// Kind implements Layout.
func (r *Raster) Kind() Kind { return RasterScan }

// Coords implements Layout.
func (r *Raster) Coords(i int) (x, y int, err error) {
	if err = r.check("Raster.Coords", i); err != nil {
		return 0, 0, err
	}
	return i % r.width, i / r.width, nil
}
