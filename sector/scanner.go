// SPDX-License-Identifier: MIT

package sector

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sectormap/analysis"
	"github.com/katalvlaran/sectormap/record"
)

// DefaultBatchPerWorker is the number of sectors each worker classifies per batch.
const DefaultBatchPerWorker = 256

// ScanOptions tunes the Scanner.
//
//   - Workers: concurrent classifiers; 0 selects GOMAXPROCS.
//   - BatchPerWorker: sectors per worker per batch; 0 selects DefaultBatchPerWorker.
//
// Results of one batch are held in memory until they are emitted, so memory
// use is bounded by Workers·BatchPerWorker results.
type ScanOptions struct {
	Workers        int
	BatchPerWorker int
}

// DefaultScanOptions returns automatic worker and batch sizes.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{}
}

// EmitFunc receives records in index order. A non-nil error stops the scan
// and is returned by Scan unchanged.
type EmitFunc func(record.Record) error

// Scanner classifies every whole sector of an image.
type Scanner struct {
	src     io.ReaderAt
	c       analysis.Classifier
	whole   int64
	tail    int
	workers int
	batch   int
	bufs    sync.Pool
}

// NewScanner prepares a scan of size bytes of src with classifier c.
func NewScanner(src io.ReaderAt, size int64, c analysis.Classifier, opts ScanOptions) (*Scanner, error) {
	ss := c.SectorSize()
	if ss < 1 {
		return nil, fmt.Errorf("NewScanner: %w: got %d", ErrInvalidSectorSize, ss)
	}
	if opts.Workers < 0 || opts.BatchPerWorker < 0 {
		return nil, fmt.Errorf("NewScanner: %w: workers %d, batch %d", ErrInvalidWorkers, opts.Workers, opts.BatchPerWorker)
	}
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	per := opts.BatchPerWorker
	if per == 0 {
		per = DefaultBatchPerWorker
	}
	whole, tail := Count(size, ss)

	s := &Scanner{src: src, c: c, whole: whole, tail: tail, workers: workers, batch: workers * per}
	s.bufs.New = func() any {
		b := make([]byte, ss)
		return &b
	}
	return s, nil
}

// Workers returns the resolved worker count.
func (s *Scanner) Workers() int { return s.workers }

// Whole returns the number of whole sectors that Scan will emit.
func (s *Scanner) Whole() int64 { return s.whole }

// Scan classifies all whole sectors and calls emit once per sector in index
// order. Classification of a batch runs on up to Workers goroutines;
// emission is sequential on the calling goroutine.
//
// Scan returns nil after the last sector, ErrNotMultiple if a partial
// sector remains, the first error of emit, or ctx.Err() once the context is
// done (checked between batches).
func (s *Scanner) Scan(ctx context.Context, emit EmitFunc) error {
	ss := s.c.SectorSize()
	results := make([]analysis.Result, s.batch)

	for start := int64(0); start < s.whole; start += int64(s.batch) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := s.batch
		if rest := s.whole - start; rest < int64(n) {
			n = int(rest)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		chunk := (n + s.workers - 1) / s.workers
		for lo := 0; lo < n; lo += chunk {
			lo := lo // per-iteration copy; module targets go 1.21 loop semantics
			hi := min(lo+chunk, n)
			g.Go(func() error {
				return s.classify(gctx, start, results[lo:hi], lo, ss)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err := emit(record.New(start+int64(i), ss, results[i])); err != nil {
				return err
			}
		}
	}

	if s.tail > 0 {
		return tailError(ss, s.tail)
	}
	return nil
}

// classify fills out with the results of sectors base+lo .. base+lo+len(out)-1.
func (s *Scanner) classify(ctx context.Context, base int64, out []analysis.Result, lo, ss int) error {
	bp := s.bufs.Get().(*[]byte)
	defer s.bufs.Put(bp)
	buf := *bp

	for i := range out {
		if i&63 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		num := base + int64(lo+i)
		if err := readSector(s.src, buf, num); err != nil {
			return err
		}
		r, err := s.c.Calc(buf)
		if err != nil {
			return fmt.Errorf("sector: classify sector %d: %w", num, err)
		}
		out[i] = r
	}
	return nil
}
