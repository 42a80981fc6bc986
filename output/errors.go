// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrUnknownMethod indicates an unrecognized output method name.
	ErrUnknownMethod = errors.New("output: unknown output method")
	// ErrConsumerGone indicates the destination stopped accepting data.
	ErrConsumerGone = errors.New("output: consumer gone")
	// ErrInvalidEntropyLimit indicates an entropy limit outside [0,1].
	ErrInvalidEntropyLimit = errors.New("output: entropy limit must be within [0,1]")
	// ErrInvalidTemplate indicates an empty template or one with unknown tags.
	ErrInvalidTemplate = errors.New("output: invalid template")
	// ErrNoPalette indicates an image method configured without a palette.
	ErrNoPalette = errors.New("output: image methods need a palette")
)

// consumerError maps a broken pipe onto ErrConsumerGone and passes any other
// error through.
func consumerError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EPIPE) {
		return fmt.Errorf("%s: %w: %v", op, ErrConsumerGone, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
