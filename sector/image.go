// SPDX-License-Identifier: MIT

package sector

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

// Image is a read-only random-access view of a disk image.
type Image struct {
	r    io.ReaderAt
	size int64
	name string
	m    *mmap.ReaderAt
}

// Open memory-maps the file at path. StdinPath reads standard input into
// memory, since a pipe cannot be mapped.
func Open(path string) (*Image, error) {
	if path == StdinPath {
		return readAll(os.Stdin, "stdin")
	}
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sector: open %s: %w", path, err)
	}
	return &Image{r: m, size: int64(m.Len()), name: path, m: m}, nil
}

// FromReaderAt wraps an existing random-access source of size bytes.
func FromReaderAt(r io.ReaderAt, size int64, name string) *Image {
	return &Image{r: r, size: size, name: name}
}

// FromBytes wraps an in-memory image.
func FromBytes(b []byte, name string) *Image {
	return FromReaderAt(bytes.NewReader(b), int64(len(b)), name)
}

func readAll(r io.Reader, name string) (*Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sector: read %s: %w", name, err)
	}
	return FromBytes(b, name), nil
}

// ReadAt implements io.ReaderAt.
func (img *Image) ReadAt(p []byte, off int64) (int, error) { return img.r.ReadAt(p, off) }

// Size returns the image size in bytes.
func (img *Image) Size() int64 { return img.size }

// Name returns the path or a descriptive name of the image.
func (img *Image) Name() string { return img.name }

// Close unmaps the file. It is a no-op for in-memory images.
func (img *Image) Close() error {
	if img.m == nil {
		return nil
	}
	return img.m.Close()
}

// Count splits size into whole sectors and the length of the trailing partial sector.
func Count(size int64, sectorSize int) (whole int64, tail int) {
	ss := int64(sectorSize)
	return size / ss, int(size % ss)
}

// CanvasTotal is the sector count an output is sized for: every whole
// sector plus one slot for a trailing partial sector.
func CanvasTotal(size int64, sectorSize int) int64 {
	whole, tail := Count(size, sectorSize)
	if tail > 0 {
		whole++
	}
	return whole
}
