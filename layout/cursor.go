// SPDX-License-Identifier: MIT

package layout

// Cursor walks a Layout in index order for push-style writers.
// Next is equivalent to Coords(i) with i incremented by one per call.
// A Cursor must not be shared between goroutines.
type Cursor struct {
	l    Layout
	next int
}

// NewCursor returns a cursor positioned at index 0.
func NewCursor(l Layout) *Cursor {
	return &Cursor{l: l}
}

// Next returns the coordinate of the next index.
// After the last index it returns ErrIndexOutOfRange and does not advance.
func (c *Cursor) Next() (x, y int, err error) {
	x, y, err = c.l.Coords(c.next)
	if err != nil {
		return 0, 0, err
	}
	c.next++
	return x, y, nil
}

// Index returns the index the next call to Next will place.
func (c *Cursor) Index() int { return c.next }
