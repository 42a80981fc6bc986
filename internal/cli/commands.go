// SPDX-License-Identifier: MIT

// Package cli wires the sectormap commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sectormap/analysis"
	"github.com/katalvlaran/sectormap/internal/build"
	"github.com/katalvlaran/sectormap/internal/config"
	"github.com/katalvlaran/sectormap/layout"
	"github.com/katalvlaran/sectormap/output"
	"github.com/katalvlaran/sectormap/palette"
	"github.com/katalvlaran/sectormap/record"
	"github.com/katalvlaran/sectormap/render"
)

// Root returns the sectormap command tree.
func Root() *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:   "sectormap [flags] DISK_IMAGE",
		Short: "Visualize the randomness of disk image sectors",
		Long: `Classify every sector of a disk image (use - for stdin) by how random its
bytes look and render the result as an image or as text records.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, release, err := load(cmd, configFile)
			if err != nil {
				return err
			}
			defer release()
			return scan(cmd.Context(), s, args[0], cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a json, yaml or toml config file")
	config.DefineFlags(root.Flags())
	config.DefineAnalysisFlags(root.Flags())

	root.AddCommand(FromCSV(&configFile), Version(), List())
	return root
}

// FromCSV re-renders a record file written by the csv method.
func FromCSV(configFile *string) *cobra.Command {
	var delimiter string
	cmd := &cobra.Command{
		Use:   "from-csv [flags] FILE",
		Short: "Render a csv record file with any output method",
		Long: `Render records written by the csv output method (use - for stdin).
A header line is detected and skipped.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := record.ParseDelimiter(delimiter)
			if err != nil {
				return err
			}
			s, release, err := load(cmd, *configFile)
			if err != nil {
				return err
			}
			defer release()
			return replay(s, args[0], d, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", record.DefaultSeparator, "delimiter of the source csv file")
	config.DefineFlags(cmd.Flags())
	return cmd
}

// Version prints build information.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print sectormap version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sectormap v%s (Go version: %s)\n", build.Version, runtime.Version())
		},
	}
}

// List prints every selectable method, layout and palette.
func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List analysis methods, output methods, layouts and palettes",
		Run: func(cmd *cobra.Command, args []string) {
			writeList(cmd.OutOrStdout())
		},
	}
}

func writeList(w io.Writer) {
	var names []string
	for _, m := range analysis.Methods() {
		names = append(names, m.String())
	}
	fmt.Fprintf(w, "analysis methods: %s (default %s)\n", strings.Join(names, ", "), analysis.DefaultMethod)

	names = names[:0]
	for _, m := range output.Methods() {
		names = append(names, m.String())
	}
	fmt.Fprintf(w, "output methods: %s (default %s)\n", strings.Join(names, ", "), output.DefaultMethod)

	names = names[:0]
	for _, k := range layout.Kinds() {
		names = append(names, k.String())
	}
	fmt.Fprintf(w, "layouts: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "template tags: {%s}\n", strings.Join(output.TemplateTags(), "} {"))

	fmt.Fprintln(w, "palettes:")
	for _, n := range palette.Names() {
		p, _ := palette.Lookup(n)
		fmt.Fprintf(w, "  %s\n", n)
		for _, e := range p.Legend() {
			fmt.Fprintf(w, "    %s  %s\n", render.FormatColor(e.Color), e.Label)
		}
	}
}

// load reads and validates the configuration and sets up logging.
func load(cmd *cobra.Command, configFile string) (config.Settings, func(), error) {
	cfg, err := config.Load(cmd, configFile)
	if err != nil {
		return config.Settings{}, nil, err
	}
	s, err := cfg.Resolve()
	if err != nil {
		return config.Settings{}, nil, err
	}
	release, err := setup(s)
	if err != nil {
		return config.Settings{}, nil, err
	}
	return s, release, nil
}

// Execute runs the command tree with args and returns the process status.
//
// SIGPIPE is caught so writes to a closed stdout fail with EPIPE instead of
// killing the process. SIGINT and SIGTERM cancel the scan.
func Execute(args []string, stdout, stderr io.Writer) int {
	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := Root()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if code := ExitCode(err); code != 0 {
		fmt.Fprintf(stderr, "sectormap: %v\n", err)
		return code
	}
	return 0
}
