// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrSectorSize is returned by Calc when the buffer length differs from
	// the configured sector size. Drivers must never pass a short tail buffer.
	ErrSectorSize = errors.New("analysis: buffer length does not match sector size")

	// ErrInvalidSectorSize indicates a sector size that is not a positive power of two.
	ErrInvalidSectorSize = errors.New("analysis: sector size must be a positive power of two")

	// ErrInvalidLimits indicates limits outside [0,1] or rand_lim <= sus_rand_lim.
	ErrInvalidLimits = errors.New("analysis: invalid randomness limits")

	// ErrInvalidSignificance indicates a significance level outside [0,1].
	ErrInvalidSignificance = errors.New("analysis: significance level must be within [0,1]")

	// ErrUnknownMethod indicates an analysis method name that is not registered.
	ErrUnknownMethod = errors.New("analysis: unknown analysis method")

	// ErrTooSmallExpectedCount is a warning: the expected count per bucket is
	// below 5, so the chi-square approximation is unreliable for this sector size.
	ErrTooSmallExpectedCount = errors.New("analysis: expected count per bucket is too small")
)

// analysisErrorf attaches an operation tag to a sentinel, keeping errors.Is intact.
func analysisErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
