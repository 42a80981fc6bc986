// SPDX-License-Identifier: MIT

package layout

// Hilbert places sectors along one Hilbert curve, or along up to three
// stacked copies of the next smaller curve when a single curve would stay
// more than three quarters empty.
type Hilbert struct {
	canvas
	side int
}

// NewHilbertCurve sizes the canvas for total sectors.
//
// With k the smallest order such that 4^k >= total:
//   - total > 3·4^(k-1) (or k == 0): one curve of side 2^k;
//   - otherwise: copies of side s = 2^(k-1) stacked vertically, the height
//     rounded up to half a copy, ⌈2·total/s²⌉·s/2.
func NewHilbertCurve(total int) (*Hilbert, error) {
	if err := checkTotal("NewHilbertCurve", total); err != nil {
		return nil, err
	}
	k, capacity := 0, 1
	for capacity < total {
		k++
		capacity <<= 2
	}

	h := &Hilbert{canvas: canvas{total: total}}
	if k == 0 || total > 3*(capacity>>2) {
		h.side = 1 << k
		h.width, h.height = h.side, h.side
		return h, nil
	}
	s := 1 << (k - 1)
	h.side = s
	h.width = s
	h.height = ceilDiv(2*total, s*s) * s / 2
	return h, nil
}

// Kind implements Layout.
func (h *Hilbert) Kind() Kind { return HilbertCurve }

// Side returns the side of one curve copy.
func (h *Hilbert) Side() int { return h.side }

// Coords implements Layout.
func (h *Hilbert) Coords(i int) (x, y int, err error) {
	if err = h.check("Hilbert.Coords", i); err != nil {
		return 0, 0, err
	}
	area := h.side * h.side
	x, y = HilbertPoint(h.side, i%area)
	return x, y + (i/area)*h.side, nil
}

// HilbertPoint returns the point at distance d along the Hilbert curve
// filling an n×n square, n a power of two and 0 <= d < n².
//
// The distance is consumed two bits at a time, least significant first. Each
// pair picks a quadrant (qx, qy); the point accumulated so far is transposed
// in quadrant (0,0) and transposed plus mirrored in quadrant (0,1).
func HilbertPoint(n, d int) (x, y int) {
	for s := 1; s < n; s <<= 1 {
		qy := 1 & (d >> 1)
		qx := 1 & (d ^ qy)
		switch {
		case qx == 0 && qy == 1:
			x, y = s-1-y, s-1-x
		case qx == 0:
			x, y = y, x
		}
		x += s * qx
		y += s * qy
		d >>= 2
	}
	return x, y
}

// HilbertDistance is the inverse of HilbertPoint.
func HilbertDistance(n, x, y int) int {
	d := 0
	for s := n >> 1; s > 0; s >>= 1 {
		qx, qy := 0, 0
		if x&s != 0 {
			qx = 1
		}
		if y&s != 0 {
			qy = 1
		}
		d += s * s * ((3 * qy) ^ qx)
		x &= s - 1
		y &= s - 1
		switch {
		case qx == 0 && qy == 1:
			x, y = s-1-y, s-1-x
		case qx == 0:
			x, y = y, x
		}
	}
	return d
}
