// SPDX-License-Identifier: MIT

package output

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"
	"github.com/valyala/fasttemplate"

	"github.com/katalvlaran/sectormap/record"
)

// keep reports whether a record passes the entropy_limit filter.
func keep(limit float64, r record.Record) bool {
	return math.IsInf(limit, 1) || r.Randomness <= limit
}

// CSVSink writes the interchange format.
type CSVSink struct {
	w     *record.Writer
	limit float64
}

func newCSVSink(w io.Writer, opts Options) (*CSVSink, error) {
	s := &CSVSink{w: record.NewWriter(w, opts.Separator), limit: opts.EntropyLimit}
	if !opts.NoHeader {
		if err := s.w.WriteHeader(); err != nil {
			return nil, consumerError("newCSVSink", err)
		}
	}
	return s, nil
}

// Write appends r unless it is filtered out.
func (s *CSVSink) Write(r record.Record) error {
	if !keep(s.limit, r) {
		return nil
	}
	return consumerError("CSVSink.Write", s.w.Write(r))
}

// Close flushes buffered lines.
func (s *CSVSink) Close() error { return consumerError("CSVSink.Close", s.w.Flush()) }

// Warnings implements Sink; CSVSink has none.
func (s *CSVSink) Warnings() []error { return nil }

// LineSink writes one formatted line per kept record.
type LineSink struct {
	w      *bufio.Writer
	limit  float64
	format func(record.Record) (string, error)
}

func newLineSink(w io.Writer, limit float64, format func(record.Record) (string, error)) *LineSink {
	return &LineSink{w: bufio.NewWriter(w), limit: limit, format: format}
}

// Write formats and appends r unless it is filtered out.
func (s *LineSink) Write(r record.Record) error {
	if !keep(s.limit, r) {
		return nil
	}
	line, err := s.format(r)
	if err != nil {
		return err
	}
	if _, err = s.w.WriteString(line); err == nil {
		err = s.w.WriteByte('\n')
	}
	return consumerError("LineSink.Write", err)
}

// Close flushes buffered lines.
func (s *LineSink) Close() error { return consumerError("LineSink.Close", s.w.Flush()) }

// Warnings implements Sink; LineSink has none.
func (s *LineSink) Warnings() []error { return nil }

// jsonRecord is the JSON-lines shape of a record.
type jsonRecord struct {
	Number     int64   `json:"sector_num"`
	Offset     int64   `json:"sector_offset"`
	Randomness float64 `json:"sector_randomness"`
	Flag       string  `json:"result_flag"`
	Code       int     `json:"result_code"`
	Pattern    *uint8  `json:"pattern"`
}

func jsonLine(r record.Record) (string, error) {
	jr := jsonRecord{
		Number:     r.Number,
		Offset:     r.Offset,
		Randomness: r.Randomness,
		Flag:       r.Flag.String(),
		Code:       int(r.Flag),
	}
	if r.HasPattern {
		p := r.Pattern
		jr.Pattern = &p
	}
	b, err := json.Marshal(jr)
	if err != nil {
		return "", fmt.Errorf("jsonLine: %w", err)
	}
	return string(b), nil
}

// Template tags, written as {tag}.
var templateTags = map[string]func(r record.Record) string{
	"number":     func(r record.Record) string { return strconv.FormatInt(r.Number, 10) },
	"offset":     func(r record.Record) string { return strconv.FormatInt(r.Offset, 10) },
	"offset_hex": func(r record.Record) string { return "0x" + strconv.FormatInt(r.Offset, 16) },
	"randomness": func(r record.Record) string { return record.FormatFloat(r.Randomness) },
	"flag":       func(r record.Record) string { return r.Flag.String() },
	"flag_code":  func(r record.Record) string { return strconv.Itoa(int(r.Flag)) },
	"pattern": func(r record.Record) string {
		if !r.HasPattern {
			return ""
		}
		return strconv.Itoa(int(r.Pattern))
	},
	"pattern_hex": func(r record.Record) string {
		if !r.HasPattern {
			return ""
		}
		return fmt.Sprintf("0x%02x", r.Pattern)
	},
}

// TemplateTags returns the supported template tag names, sorted.
func TemplateTags() []string {
	return []string{"flag", "flag_code", "number", "offset", "offset_hex", "pattern", "pattern_hex", "randomness"}
}

type lineTemplate struct {
	t *fasttemplate.Template
}

// compileTemplate parses src and rejects unknown tags by rendering it once.
func compileTemplate(src string) (*lineTemplate, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("compileTemplate: %w: empty template", ErrInvalidTemplate)
	}
	t, err := fasttemplate.NewTemplate(src, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("compileTemplate: %w: %v", ErrInvalidTemplate, err)
	}
	lt := &lineTemplate{t: t}
	if _, err := lt.line(record.Record{}); err != nil {
		return nil, err
	}
	return lt, nil
}

func (lt *lineTemplate) line(r record.Record) (string, error) {
	return lt.t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		f, ok := templateTags[strings.TrimSpace(tag)]
		if !ok {
			return 0, fmt.Errorf("%w: unknown tag {%s} (available: %s)", ErrInvalidTemplate, tag, strings.Join(TemplateTags(), ", "))
		}
		return io.WriteString(w, f(r))
	})
}
