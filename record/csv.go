// SPDX-License-Identifier: MIT

package record

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/sectormap/analysis"
)

// DefaultSeparator separates CSV fields unless configured otherwise.
const DefaultSeparator = ","

// Writer writes records as separator-joined lines.
//
// Fields are numeric or empty, so no quoting is ever needed and the
// separator may be any string, including multi-character ones.
type Writer struct {
	w   *bufio.Writer
	sep string
}

// NewWriter returns a Writer on w. An empty sep selects DefaultSeparator.
func NewWriter(w io.Writer, sep string) *Writer {
	if sep == "" {
		sep = DefaultSeparator
	}
	return &Writer{w: bufio.NewWriter(w), sep: sep}
}

// WriteHeader writes the column names line.
func (w *Writer) WriteHeader() error {
	return w.line(Header)
}

// Write writes one record line.
func (w *Writer) Write(r Record) error {
	return w.line(r.Fields())
}

func (w *Writer) line(fields []string) error {
	if _, err := w.w.WriteString(strings.Join(fields, w.sep)); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Reader decodes records from CSV produced by Writer (or compatible tools).
//
// A first line whose first character is not a digit is taken as a header
// and skipped; files written with the header switched off are read as-is.
type Reader struct {
	r       *csv.Reader
	started bool
}

// NewReader returns a Reader on r with the given single-rune delimiter.
func NewReader(r io.Reader, delimiter rune) (*Reader, error) {
	if delimiter == '\r' || delimiter == '\n' || delimiter == '"' || delimiter == utf8.RuneError || !utf8.ValidRune(delimiter) {
		return nil, fmt.Errorf("NewReader: %w: %q", ErrInvalidDelimiter, delimiter)
	}
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = len(Header)
	cr.ReuseRecord = true
	return &Reader{r: cr}, nil
}

// ParseDelimiter converts a one-character delimiter string to a rune.
func ParseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("ParseDelimiter: %w: %q must be exactly one character", ErrInvalidDelimiter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Read returns the next record, or io.EOF at the end of input.
func (rd *Reader) Read() (Record, error) {
	for {
		fields, err := rd.r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Record{}, io.EOF
			}
			return Record{}, fmt.Errorf("Reader.Read: %w: %v", ErrMalformed, err)
		}
		first := !rd.started
		rd.started = true
		if first && !startsWithDigit(fields[0]) {
			continue
		}
		line, _ := rd.r.FieldPos(0)
		rec, err := ParseFields(fields)
		if err != nil {
			return Record{}, fmt.Errorf("line %d: %w", line, err)
		}
		return rec, nil
	}
}

// ReadAll decodes every remaining record.
func (rd *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// ParseFields decodes the five fields of one CSV row.
func ParseFields(fields []string) (Record, error) {
	if len(fields) != len(Header) {
		return Record{}, fmt.Errorf("ParseFields: %w: %d fields, want %d", ErrMalformed, len(fields), len(Header))
	}
	var (
		rec Record
		err error
	)
	if rec.Number, err = strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64); err != nil {
		return Record{}, malformed("sector number", fields[0])
	}
	if rec.Offset, err = strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64); err != nil {
		return Record{}, malformed("sector offset", fields[1])
	}
	if rec.Randomness, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64); err != nil {
		return Record{}, malformed("randomness", fields[2])
	}
	code, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil || !analysis.ResultFlag(code).Valid() {
		return Record{}, malformed("result flag", fields[3])
	}
	rec.Flag = analysis.ResultFlag(code)
	if p := strings.TrimSpace(fields[4]); p != "" {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return Record{}, malformed("pattern", fields[4])
		}
		rec.Pattern, rec.HasPattern = byte(v), true
	}
	return rec, nil
}

func malformed(what, got string) error {
	return fmt.Errorf("ParseFields: %w: %s %q", ErrMalformed, what, got)
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
