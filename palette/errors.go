// SPDX-License-Identifier: MIT

package palette

import "errors"

var (
	// ErrInvalidFlag indicates a classification result with an unknown flag.
	ErrInvalidFlag = errors.New("palette: invalid result flag")
	// ErrUnknownPalette indicates an unregistered palette name.
	ErrUnknownPalette = errors.New("palette: unknown palette")
)
