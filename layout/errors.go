// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSectors indicates a layout was requested for an empty image.
	ErrNoSectors = errors.New("layout: total sector count must be at least 1")
	// ErrInvalidDimension indicates a negative width or block size.
	ErrInvalidDimension = errors.New("layout: width and block size must be non-negative")
	// ErrWidthNotMultiple indicates an explicit width that block size does not divide.
	ErrWidthNotMultiple = errors.New("layout: width needs to be a multiple of block size")
	// ErrIndexOutOfRange indicates a sector index outside [0, total).
	ErrIndexOutOfRange = errors.New("layout: sector index out of range")
	// ErrUnknownKind indicates an unrecognized layout name.
	ErrUnknownKind = errors.New("layout: unknown layout")
	// ErrDegenerateBlockSize is a warning: no sensible block size divides the
	// requested width, so SweepingBlocks falls back to a block size of 1.
	ErrDegenerateBlockSize = errors.New("layout: no sensible block size for width, falling back to raster scan")
)

func layoutErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
