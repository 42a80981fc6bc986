// SPDX-License-Identifier: MIT
// Package record: sentinel errors of the interchange codec.

package record

import "errors"

var (
	// ErrMalformed indicates a CSV row that cannot be decoded into a Record:
	// wrong field count, non-numeric fields, or an unknown flag code.
	ErrMalformed = errors.New("record: malformed row")

	// ErrInvalidDelimiter indicates a delimiter the CSV reader cannot use
	// (line breaks, double quote, or an invalid rune).
	ErrInvalidDelimiter = errors.New("record: invalid delimiter")
)
