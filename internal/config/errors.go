// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig wraps every configuration error detected before a run.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrSectorSizeNotPowerOfTwo indicates a sector size that is not 2^k.
	ErrSectorSizeNotPowerOfTwo = errors.New("config: sector size is not a power of two")
	// ErrExclusiveLimits indicates significance_level combined with rand_lim or sus_rand_lim.
	ErrExclusiveLimits = errors.New("config: significance_level cannot be combined with rand_lim or sus_rand_lim")
	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("config: workers must be >= 0")
)

// invalid tags err with ErrInvalidConfig and the offending key.
func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
}
