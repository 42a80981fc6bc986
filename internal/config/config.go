// SPDX-License-Identifier: MIT

// Package config loads the run configuration from flags, SECTORMAP_* env
// vars, an optional config file and a best-effort .env file, and resolves
// it into validated, typed settings.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sectormap/analysis"
	"github.com/katalvlaran/sectormap/internal/logging"
	"github.com/katalvlaran/sectormap/output"
)

// EnvPrefix prefixes every environment variable, e.g. SECTORMAP_SECTOR_SIZE.
const EnvPrefix = "SECTORMAP"

// DefaultSectorSize is the sector size when none is configured.
const DefaultSectorSize = 512

// Config mirrors the configuration keys.
type Config struct {
	SectorSize int    `mapstructure:"sector_size"`
	Analysis   string `mapstructure:"analysis"`

	// Limits are nil unless configured.
	SignificanceLevel *float64 `mapstructure:"significance_level"`
	RandLim           *float64 `mapstructure:"rand_lim"`
	SusRandLim        *float64 `mapstructure:"sus_rand_lim"`

	Method    string `mapstructure:"method"`
	Width     int    `mapstructure:"width"`
	BlockSize int    `mapstructure:"block_size"`

	Palette    string  `mapstructure:"palette"`
	OutputFile string  `mapstructure:"output_file"`
	NoLegend   bool    `mapstructure:"no_legend"`
	Background string  `mapstructure:"background"`
	TextColor  string  `mapstructure:"text_color"`
	Font       string  `mapstructure:"font"`
	FontSize   float64 `mapstructure:"font_size"`

	NoHeader     bool    `mapstructure:"no_header"`
	Separator    string  `mapstructure:"separator"`
	EntropyLimit float64 `mapstructure:"entropy_limit"`
	Template     string  `mapstructure:"template"`

	Workers     int    `mapstructure:"workers"`
	MetricsFile string `mapstructure:"metrics_file"`

	Log logging.Config `mapstructure:"log"`
}

// defaults are registered on every viper instance so env vars and config
// files are seen by Unmarshal even without a matching flag. The limits have
// no default: they are decided by presence in Load.
var defaults = map[string]any{
	"sector_size":        DefaultSectorSize,
	"analysis":           analysis.DefaultMethod.String(),
	"method":             output.DefaultMethod.String(),
	"width":              0,
	"block_size":         0,
	"palette":            "sample",
	"output_file":        "",
	"no_legend":          false,
	"background":         "white",
	"text_color":         "",
	"font":               "",
	"font_size":          0.0,
	"no_header":          false,
	"separator":          ",",
	"entropy_limit":      math.Inf(1),
	"template":           "",
	"workers":            0,
	"metrics_file":       "",
	"log.level":          "info",
	"log.file":           "",
}

// flagNames maps configuration keys to command-line flags.
var flagNames = map[string]string{
	"sector_size":        "sector-size",
	"analysis":           "analysis",
	"significance_level": "significance-level",
	"rand_lim":           "rand-lim",
	"sus_rand_lim":       "sus-rand-lim",
	"method":             "method",
	"width":              "width",
	"block_size":         "block-size",
	"palette":            "palette",
	"output_file":        "output-file",
	"no_legend":          "no-legend",
	"background":         "background",
	"text_color":         "text-color",
	"font":               "font",
	"font_size":          "font-size",
	"no_header":          "no-header",
	"separator":          "separator",
	"entropy_limit":      "entropy-limit",
	"template":           "template",
	"workers":            "workers",
	"metrics_file":       "metrics-file",
	"log.level":          "log-level",
	"log.file":           "log-file",
}

// DefineFlags registers the output, rendering and logging flags shared by
// every command that produces output.
func DefineFlags(f *pflag.FlagSet) {
	f.StringP("method", "m", output.DefaultMethod.String(), "output method: "+methodNames())
	f.Int("width", 0, "canvas width in pixels, 0 = automatic (raster-scan, sweeping-blocks)")
	f.Int("block-size", 0, "tile side in pixels, 0 = automatic (sweeping-blocks)")
	f.String("palette", "sample", "palette of image methods")
	f.StringP("output-file", "o", "", "write output to this file instead of stdout")
	f.Bool("no-legend", false, "do not draw the legend")
	f.String("background", "white", "background color: name, #rrggbb, #rrggbbaa, #rrggbb[0.5], #rrggbb[50%]")
	f.String("text-color", "", "legend text color (default: contrast to background)")
	f.String("font", "", "TTF font file for the legend, or 7x13 for the bitmap font")
	f.Float64("font-size", 0, "legend font size in pixels, 0 = automatic")
	f.Bool("no-header", false, "omit the csv header")
	f.String("separator", ",", "csv field separator")
	f.Float64("entropy-limit", math.Inf(1), "text methods only print sectors with randomness <= this limit")
	f.String("template", "", "line template for the template method, tags: {"+strings.Join(output.TemplateTags(), "} {")+"}")
	f.String("log-level", "info", "log level: "+strings.Join(logging.Levels(), ", "))
	f.String("log-file", "", "write logs to this file instead of stderr")
}

// DefineAnalysisFlags registers the flags of commands that read a disk image.
func DefineAnalysisFlags(f *pflag.FlagSet) {
	f.IntP("sector-size", "s", DefaultSectorSize, "sector size in bytes, a power of two")
	f.StringP("analysis", "a", analysis.DefaultMethod.String(), "analysis method: "+analysisNames())
	f.Float64P("significance-level", "l", 0, fmt.Sprintf("significance level, cannot be combined with --rand-lim/--sus-rand-lim (default %g)", analysis.DefaultSignificanceLevel))
	f.Float64("rand-lim", 0, "random significance limit (default from significance level)")
	f.Float64("sus-rand-lim", 0, "suspiciously random significance limit (default from significance level)")
	f.Int("workers", 0, "classification workers, 0 = GOMAXPROCS")
	f.String("metrics-file", "", "write run metrics in Prometheus text format to this file")
}

// Load builds the configuration of cmd. Precedence: flags, env vars, config
// file, defaults. A .env file in the working directory is loaded first when present.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("config.Load: loading .env: %w", err)
		}
	}

	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)))
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, name := range flagNames {
			if fl := cmd.Flags().Lookup(name); fl != nil {
				if err := v.BindPFlag(key, fl); err != nil {
					return Config{}, fmt.Errorf("config.Load: binding --%s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound *os.PathError
			if errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config.Load: config file %s not found: %w", configFile, err)
			}
			return Config{}, fmt.Errorf("config.Load: reading config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: unmarshaling config: %w", err)
	}
	// Unmarshal sees the default of a bound flag; IsSet does not.
	for key, p := range map[string]**float64{
		"significance_level": &cfg.SignificanceLevel,
		"rand_lim":           &cfg.RandLim,
		"sus_rand_lim":       &cfg.SusRandLim,
	} {
		if !v.IsSet(key) {
			*p = nil
		}
	}
	return cfg, nil
}

// Default returns the configuration with every key at its default.
func Default() Config {
	return Config{
		SectorSize:   DefaultSectorSize,
		Analysis:     analysis.DefaultMethod.String(),
		Method:       output.DefaultMethod.String(),
		Palette:      "sample",
		Background:   "white",
		Separator:    ",",
		EntropyLimit: math.Inf(1),
		Log:          logging.Config{Level: "info"},
	}
}

func methodNames() string {
	var names []string
	for _, m := range output.Methods() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

func analysisNames() string {
	var names []string
	for _, m := range analysis.Methods() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}
