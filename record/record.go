// SPDX-License-Identifier: MIT

// Package record holds the per-sector output tuple and its text encodings:
// the CSV interchange format and the human-readable sample line.
//
// A CSV stream written here can be decoded back into the identical record
// sequence, so images can be rendered later without the original disk image.
package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/sectormap/analysis"
)

// Header lists the CSV column names in order.
var Header = []string{"SECTOR_NUM", "SECTOR_OFFSET", "SECTOR_RANDOMNESS", "RESULT_FLAG", "PATTERN"}

// Record is the classification of one sector together with its position.
type Record struct {
	Number int64
	Offset int64
	analysis.Result
}

// New builds the record of sector number for sectors of sectorSize bytes.
func New(number int64, sectorSize int, r analysis.Result) Record {
	return Record{Number: number, Offset: number * int64(sectorSize), Result: r}
}

// Fields returns the five CSV fields of r. The flag is written as its
// integer code and an absent pattern as an empty field.
func (r Record) Fields() []string {
	pattern := ""
	if r.HasPattern {
		pattern = strconv.Itoa(int(r.Pattern))
	}
	return []string{
		strconv.FormatInt(r.Number, 10),
		strconv.FormatInt(r.Offset, 10),
		FormatFloat(r.Randomness),
		strconv.Itoa(int(r.Flag)),
		pattern,
	}
}

// SampleLine renders r for humans, e.g.
//
//	3 (0x600) - 0.0000, SINGLE_BYTE_PATTERN (pattern of 0x00)
func (r Record) SampleLine() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d (0x%x) - %.4f, %s", r.Number, r.Offset, r.Randomness, r.Flag)
	if r.HasPattern {
		fmt.Fprintf(&sb, " (pattern of 0x%02x)", r.Pattern)
	}
	return sb.String()
}

// FormatFloat writes the shortest decimal that parses back to v and always
// keeps a fractional part for integral values ("0.0", "1.0").
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
