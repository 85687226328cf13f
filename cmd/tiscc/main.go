// Command tiscc compiles node assembly into 16-bit instruction words.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/tiscc/api"
	"github.com/sarchlab/tiscc/config"
	"github.com/sarchlab/tiscc/core"
	"github.com/sarchlab/tiscc/encoding"
)

// errCompileFailed marks a run whose source had compile errors. The
// diagnostics are already printed when it is returned.
var errCompileFailed = errors.New("compilation failed")

type options struct {
	configPath string
	format     string
	overflow   string
	lint       bool
	listing    bool
	logLevel   string
	output     string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tiscc [flags] SOURCE",
		Short: "Compile node assembly into instruction words",
		Long: `Tiscc compiles a source file holding one program per node into
16-bit instruction words. A line "@N" starts node N; every node gets
exactly 16 words, unused slots jump to slot 0.

All diagnostics are printed before tiscc exits. The exit status is 1 if
any compile error was found.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is only useful for command line mistakes.
			cmd.SilenceUsage = true
			return run(cmd, opts, args[0], stdout, stderr)
		},
	}

	// Standard output carries compiled nodes only.
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.format, "format", "", "output format: hex, yaml or prog")
	flags.StringVar(&opts.overflow, "overflow", "", "code past slot 15: wrap or discard")
	flags.BoolVar(&opts.lint, "lint", false, "report lint warnings")
	flags.BoolVar(&opts.listing, "listing", false, "print a listing of every node to stderr")
	flags.StringVar(&opts.logLevel, "log-level", "", "trace, debug, info, warn or error")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = encoding.Format(opts.format)
	}
	if flags.Changed("overflow") {
		cfg.Overflow = core.OverflowPolicy(opts.overflow)
	}
	if flags.Changed("lint") {
		cfg.Lint = opts.lint
	}
	if flags.Changed("listing") {
		cfg.Listing = opts.listing
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, opts *options, sourcePath string, stdout, stderr io.Writer) (err error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	})))

	source, err := os.Open(sourcePath)
	if err != nil {
		return errors.Wrap(err, "failed to open file for compiling")
	}
	defer source.Close()

	out := stdout
	if opts.output != "" {
		f, createErr := os.Create(opts.output)
		if createErr != nil {
			return errors.Wrap(createErr, "create output")
		}
		defer closeOutput(f, &err)
		out = f
	}

	emitter, err := encoding.NewEmitter(cfg.Format, out)
	if err != nil {
		return err
	}

	builder := api.DriverBuilder{}.
		WithEmitter(emitter).
		WithOverflow(cfg.Overflow).
		WithLint(cfg.Lint)
	if cfg.Listing {
		builder = builder.WithListing(stderr)
	}

	result, err := builder.Build().Compile(cmd.Context(), source)
	if result != nil {
		result.Log.WriteReport(stderr)
	}
	if err != nil {
		return err
	}

	if result.Failed() {
		return errCompileFailed
	}
	return nil
}

// closeOutput closes c and reports its error unless an earlier one is set.
func closeOutput(c io.Closer, err *error) {
	if closeErr := c.Close(); closeErr != nil && *err == nil {
		*err = errors.Wrap(closeErr, "close output")
	}
}

// execute runs the command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errCompileFailed):
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func main() {
	atexit.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
