// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/katalvlaran/sectormap/output"
)

// ErrNoRecords indicates a csv without data rows given to an image method.
var ErrNoRecords = errors.New("cli: no records in csv")

// ExitCode maps the error of a command onto the process status: a reader
// that went away is a normal end, anything else fails.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, output.ErrConsumerGone):
		return 0
	default:
		return 1
	}
}
