// SPDX-License-Identifier: MIT

package sector

import "errors"

var (
	// ErrNotMultiple indicates a trailing partial sector.
	ErrNotMultiple = errors.New("sector: the size of provided image was not a multiple of sector size")
	// ErrInvalidSectorSize indicates a sector size below 1.
	ErrInvalidSectorSize = errors.New("sector: sector size must be positive")
	// ErrInvalidWorkers indicates a negative worker or batch count.
	ErrInvalidWorkers = errors.New("sector: worker and batch counts must be non-negative")
)
