// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/katalvlaran/sectormap/analysis"
	"github.com/katalvlaran/sectormap/internal/build"
	"github.com/katalvlaran/sectormap/internal/config"
	"github.com/katalvlaran/sectormap/internal/logging"
	"github.com/katalvlaran/sectormap/internal/metrics"
	"github.com/katalvlaran/sectormap/output"
	"github.com/katalvlaran/sectormap/record"
	"github.com/katalvlaran/sectormap/sector"
)

// openOutput returns the destination of the sink: path, or stdout when empty.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == sector.StdinPath {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: creating output file: %w", err)
	}
	return f, f.Close, nil
}

// setup installs logging and GOMAXPROCS; the returned func releases the log file.
func setup(s config.Settings) (func(), error) {
	release, err := logging.Setup(s.Log)
	if err != nil {
		return nil, err
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(f string, args ...any) {
		log.Debug().Msgf(strings.ToLower(f), args...)
	}))
	return release, nil
}

// scan classifies the image at path and writes the configured output.
func scan(ctx context.Context, s config.Settings, path string, stdout io.Writer) error {
	img, err := sector.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = img.Close() }()

	c, err := analysis.New(s.Analysis, s.SectorSize, s.Limits)
	if err != nil {
		return err
	}
	logging.Warnings(&log.Logger, "analysis", c.Warnings())

	var m *metrics.Registry
	if s.MetricsFile != "" {
		m, err = metrics.New(metrics.Config{ConstLabels: map[string]string{
			"analysis": s.Analysis.String(),
			"method":   s.Method.String(),
		}})
		if err != nil {
			return err
		}
	}

	scanner, err := sector.NewScanner(img, img.Size(), c, sector.ScanOptions{Workers: s.Workers})
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(s.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	total := sector.CanvasTotal(img.Size(), s.SectorSize)
	sink, err := output.New(s.Method, int(total), out, s.Output)
	if err != nil {
		return err
	}
	logging.Warnings(&log.Logger, "output", sink.Warnings())

	log.Info().
		Str("version", build.Version).
		Str("image", img.Name()).
		Int64("size", img.Size()).
		Int("sector_size", s.SectorSize).
		Str("analysis", s.Analysis.String()).
		Str("method", s.Method.String()).
		Int("workers", scanner.Workers()).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Msg("scanning")

	scanErr := scanner.Scan(ctx, func(r record.Record) error {
		if m != nil {
			m.Observe(r, s.SectorSize)
		}
		return sink.Write(r)
	})
	return finish(s, sink, m, scanErr)
}

// finish closes the sink after a scan or replay ended with runErr.
//
// A short tail is logged and still closes the sink, so the image of every
// whole sector is written before the run fails. A consumer that went away
// ends the run without closing.
func finish(s config.Settings, sink output.Sink, m *metrics.Registry, runErr error) error {
	if errors.Is(runErr, output.ErrConsumerGone) {
		log.Debug().Err(runErr).Msg("output consumer gone")
		return runErr
	}
	if runErr != nil && !errors.Is(runErr, sector.ErrNotMultiple) {
		return runErr
	}
	if errors.Is(runErr, sector.ErrNotMultiple) {
		log.Error().Err(runErr).Int("sector_size", s.SectorSize).Msg("image size is not a multiple of sector size")
	}
	if err := sink.Close(); err != nil {
		return err
	}
	if m != nil {
		if err := m.WriteFile(s.MetricsFile); err != nil {
			return err
		}
	}
	return runErr
}

// replay renders a CSV record file with the configured output method.
func replay(s config.Settings, path string, delimiter rune, stdin io.Reader, stdout io.Writer) error {
	var src io.Reader = stdin
	if path != sector.StdinPath {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cli: opening csv: %w", err)
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	rd, err := record.NewReader(src, delimiter)
	if err != nil {
		return err
	}
	records, err := rd.ReadAll()
	if err != nil {
		return err
	}

	// An empty file still replays through text methods as a bare header.
	if len(records) == 0 && s.Method.IsImage() {
		return fmt.Errorf("%w: %s", ErrNoRecords, path)
	}

	// Filtered files may skip sectors; the canvas covers the highest number.
	total := 0
	for _, r := range records {
		total = max(total, int(r.Number)+1)
	}

	out, closeOut, err := openOutput(s.OutputFile, stdout)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	sink, err := output.New(s.Method, total, out, s.Output)
	if err != nil {
		return err
	}
	logging.Warnings(&log.Logger, "output", sink.Warnings())
	log.Info().Str("file", path).Int("records", len(records)).Str("method", s.Method.String()).Msg("rendering")

	for _, r := range records {
		if err := sink.Write(r); err != nil {
			return finish(s, sink, nil, err)
		}
	}
	return finish(s, sink, nil, nil)
}
