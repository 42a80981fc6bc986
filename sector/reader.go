// SPDX-License-Identifier: MIT

package sector

import (
	"fmt"
	"io"
)

// Sector is one whole sector of an image.
type Sector struct {
	Number int64
	Offset int64
	Data   []byte // points into the Reader's buffer
}

// Reader hands out the sectors of an image one at a time, for callers that
// want the raw bytes in order. Scanner is the concurrent classifying path.
type Reader struct {
	src        io.ReaderAt
	sectorSize int
	buf        []byte
	next       int64
	whole      int64
	tail       int
}

// NewReader returns a Reader over size bytes of src.
func NewReader(src io.ReaderAt, size int64, sectorSize int) (*Reader, error) {
	if sectorSize < 1 {
		return nil, fmt.Errorf("NewReader: %w: got %d", ErrInvalidSectorSize, sectorSize)
	}
	whole, tail := Count(size, sectorSize)
	return &Reader{
		src:        src,
		sectorSize: sectorSize,
		buf:        make([]byte, sectorSize),
		whole:      whole,
		tail:       tail,
	}, nil
}

// Next returns the next whole sector.
//
// After the last whole sector it returns io.EOF, or ErrNotMultiple when a
// partial sector remains. Sector.Data is valid until the next call.
func (r *Reader) Next() (Sector, error) {
	if r.next >= r.whole {
		if r.tail > 0 {
			return Sector{}, tailError(r.sectorSize, r.tail)
		}
		return Sector{}, io.EOF
	}
	if err := readSector(r.src, r.buf, r.next); err != nil {
		return Sector{}, err
	}
	s := Sector{Number: r.next, Offset: r.next * int64(r.sectorSize), Data: r.buf}
	r.next++
	return s, nil
}

// Whole returns the number of whole sectors.
func (r *Reader) Whole() int64 { return r.whole }

// readSector fills buf with sector num; the sector size is len(buf).
// Reader and Scanner share it so both report failures the same way.
func readSector(src io.ReaderAt, buf []byte, num int64) error {
	if _, err := src.ReadAt(buf, num*int64(len(buf))); err != nil && err != io.EOF {
		return fmt.Errorf("sector: read sector %d: %w", num, err)
	}
	return nil
}

// tailError reports the partial sector left after the whole ones.
func tailError(sectorSize, tail int) error {
	return fmt.Errorf("%w %d (%d trailing bytes)", ErrNotMultiple, sectorSize, tail)
}
