// SPDX-License-Identifier: MIT

package layout

// Sweeping fills block×block tiles row-major, each tile in raster order.
//
//	tile = i / block²
//	x    = (tile·block) mod width + i mod block
//	y    = (i / block) mod block + (i / (block·width))·block
type Sweeping struct {
	canvas
	block int
}

// NewSweepingBlocks builds a tiled layout.
//
// Parameter resolution:
//   - width and block both set: width must be a multiple of block.
//   - only width set: block is the smallest divisor of width in
//     [32, ⌈√width⌉], else the largest divisor below 32. A result of 1 is
//     recorded as ErrDegenerateBlockSize.
//   - width unset: block defaults to 32 and width is the nearest multiple of
//     block that gives a square canvas, ⌈⌈√total⌉/block⌉·block.
//
// When the last tile row holds less than one complete tile, the canvas ends
// right below the last used pixel row instead of a full tile row.
func NewSweepingBlocks(total, width, block int) (*Sweeping, error) {
	const op = "NewSweepingBlocks"
	if err := checkTotal(op, total); err != nil {
		return nil, err
	}
	if width < 0 || block < 0 {
		return nil, layoutErrorf(op, ErrInvalidDimension, "width %d, block size %d", width, block)
	}

	s := &Sweeping{}
	switch {
	case width > 0 && block > 0:
		if width%block != 0 {
			return nil, layoutErrorf(op, ErrWidthNotMultiple, "width %d, block size %d", width, block)
		}
	case width > 0:
		block = pickBlockSize(width)
		if block == 1 {
			s.warnings = append(s.warnings, layoutErrorf(op, ErrDegenerateBlockSize, "width %d", width))
		}
	default:
		if block == 0 {
			block = DefaultBlockSize
		}
		width = ceilDiv(isqrtCeil(total), block) * block
	}

	s.total, s.width, s.block = total, width, block
	row := block * width
	if total%row < block*block {
		s.height = total/row*block + ceilDiv(total%row, block)
	} else {
		s.height = ceilDiv(total, row) * block
	}
	return s, nil
}

// pickBlockSize searches divisors of width ascending from DefaultBlockSize up
// to ⌈√width⌉, then descending below DefaultBlockSize. It never returns 0.
func pickBlockSize(width int) int {
	for b := DefaultBlockSize; b <= isqrtCeil(width); b++ {
		if width%b == 0 {
			return b
		}
	}
	for b := DefaultBlockSize - 1; b > 1; b-- {
		if width%b == 0 {
			return b
		}
	}
	return 1
}

// Kind implements Layout.
func (s *Sweeping) Kind() Kind { return SweepingBlocks }

// BlockSize returns the resolved tile side.
func (s *Sweeping) BlockSize() int { return s.block }

// Coords implements Layout.
func (s *Sweeping) Coords(i int) (x, y int, err error) {
	if err = s.check("Sweeping.Coords", i); err != nil {
		return 0, 0, err
	}
	b := s.block
	x = (i%b + (i/(b*b))*b) % s.width
	y = (i/b)%b + i/(b*s.width)*b
	return x, y, nil
}
