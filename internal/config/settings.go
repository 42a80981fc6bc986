// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sectormap/analysis"
	"github.com/katalvlaran/sectormap/internal/logging"
	"github.com/katalvlaran/sectormap/layout"
	"github.com/katalvlaran/sectormap/output"
	"github.com/katalvlaran/sectormap/palette"
	"github.com/katalvlaran/sectormap/render"
)

// Settings is a validated Config in typed form.
type Settings struct {
	SectorSize int
	Analysis   analysis.Method
	Limits     analysis.Options

	Method output.Method
	Output output.Options

	OutputFile  string
	Workers     int
	MetricsFile string
	Log         logging.Config
}

// Validate reports the first configuration error, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	_, err := c.Resolve()
	return err
}

// Resolve validates c and converts it into Settings.
//
// Limits: significance_level derives both limits and cannot be combined
// with rand_lim or sus_rand_lim; a limit that is not configured takes its
// default from DefaultSignificanceLevel. Every configured value is validated.
func (c Config) Resolve() (Settings, error) {
	s := Settings{
		SectorSize:  c.SectorSize,
		OutputFile:  c.OutputFile,
		Workers:     c.Workers,
		MetricsFile: c.MetricsFile,
		Log:         c.Log,
	}

	if c.SectorSize <= 0 || c.SectorSize&(c.SectorSize-1) != 0 {
		return Settings{}, invalid("sector_size", fmt.Errorf("%w: %d", ErrSectorSizeNotPowerOfTwo, c.SectorSize))
	}
	if c.Workers < 0 {
		return Settings{}, invalid("workers", fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return Settings{}, invalid("log.level", err)
	}

	var err error
	if s.Analysis, err = analysis.ParseMethod(c.Analysis); err != nil {
		return Settings{}, invalid("analysis", err)
	}
	if s.Limits, err = c.limits(); err != nil {
		return Settings{}, err
	}

	if s.Method, err = output.ParseMethod(c.Method); err != nil {
		return Settings{}, invalid("method", err)
	}
	if s.Output, err = c.outputOptions(s.Method); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (c Config) limits() (analysis.Options, error) {
	explicit := c.RandLim != nil || c.SusRandLim != nil
	if c.SignificanceLevel != nil {
		if explicit {
			return analysis.Options{}, invalid("significance_level", ErrExclusiveLimits)
		}
		opts, err := analysis.OptionsFromSignificance(*c.SignificanceLevel)
		if err != nil {
			return analysis.Options{}, invalid("significance_level", err)
		}
		return opts, nil
	}
	opts := analysis.DefaultOptions()
	if c.RandLim != nil {
		opts.RandLimit = *c.RandLim
	}
	if c.SusRandLim != nil {
		opts.SusRandLimit = *c.SusRandLim
	}
	if err := opts.Validate(); err != nil {
		return analysis.Options{}, invalid("rand_lim", err)
	}
	return opts, nil
}

func (c Config) outputOptions(m output.Method) (output.Options, error) {
	opts := output.DefaultOptions()
	opts.Layout = layout.Options{Width: c.Width, BlockSize: c.BlockSize}
	opts.NoHeader = c.NoHeader
	opts.Separator = c.Separator
	opts.EntropyLimit = c.EntropyLimit
	opts.Template = c.Template

	if c.Width < 0 || c.BlockSize < 0 {
		return output.Options{}, invalid("width", fmt.Errorf("%w: width %d, block size %d", layout.ErrInvalidDimension, c.Width, c.BlockSize))
	}
	if m == output.SweepingBlocks && c.Width > 0 && c.BlockSize > 0 && c.Width%c.BlockSize != 0 {
		return output.Options{}, invalid("width", fmt.Errorf("%w: width %d, block size %d", layout.ErrWidthNotMultiple, c.Width, c.BlockSize))
	}

	p, err := palette.Lookup(c.Palette)
	if err != nil {
		return output.Options{}, invalid("palette", err)
	}
	opts.Palette = p

	r := render.DefaultOptions()
	r.NoLegend = c.NoLegend
	r.FontPath = c.Font
	r.FontSize = c.FontSize
	if r.Background, err = render.ParseColor(c.Background); err != nil {
		return output.Options{}, invalid("background", err)
	}
	if c.TextColor != "" {
		tc, err := render.ParseColor(c.TextColor)
		if err != nil {
			return output.Options{}, invalid("text_color", err)
		}
		r.TextColor = &tc
	}
	if c.FontSize < 0 {
		return output.Options{}, invalid("font_size", fmt.Errorf("%w: size %v", render.ErrInvalidFont, c.FontSize))
	}
	if m.IsImage() && !c.NoLegend && c.Font != "" {
		if _, err := render.LoadFace(c.Font, 12); err != nil {
			return output.Options{}, invalid("font", err)
		}
	}
	opts.Render = r

	if err := opts.Validate(m); err != nil {
		key := "entropy_limit"
		if errors.Is(err, output.ErrInvalidTemplate) {
			key = "template"
		}
		return output.Options{}, invalid(key, err)
	}
	return opts, nil
}
