// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrInvalidColor indicates a color string that matches no accepted syntax.
	ErrInvalidColor = errors.New("render: invalid color")
	// ErrInvalidFont indicates an unreadable or unparsable font file.
	ErrInvalidFont = errors.New("render: invalid font")
	// ErrEmptyCanvas indicates a visualization area without pixels.
	ErrEmptyCanvas = errors.New("render: canvas must be at least 1x1")
	// ErrOutOfBounds indicates a pixel write outside the visualization area.
	ErrOutOfBounds = errors.New("render: pixel outside canvas")
)
