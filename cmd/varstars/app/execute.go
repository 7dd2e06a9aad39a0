package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/varstars"
	"github.com/agentstation/varstars/internal/cmd/output"
	"github.com/agentstation/varstars/pkg/errors"
	"github.com/agentstation/varstars/pkg/logging"
)

// Execute runs the varstars CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "varstars <gcvs-file> <krakow-file> <eclipsing-out> <pulsating-out>",
		Short:   "Convert the GCVS and Krakow catalogs to variable star sets",
		Version: a.version,
		Long: `varstars reads the General Catalogue of Variable Stars and the Krakow
eclipsing binary ephemerides, merges refined Krakow ephemerides into matching
GCVS stars, and writes two star sets: eclipsing binaries and bright pulsating
variables. Epochs are advanced to the reference Julian date.

An output path of "-" writes that set to standard output.

Undecodable catalog lines are logged and skipped. Nothing is written when an
input file cannot be read.`,
		Args:              cobra.ExactArgs(4),
		PersistentPreRunE: a.setupCommand,
		RunE:              a.run,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.varstars.yaml)")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.StringVarP(&a.config.Format, "format", "f", a.config.Format, "star set format: json, yaml")
	flags.Float64Var(&a.config.ReferenceJD, "reference-jd", a.config.ReferenceJD, "Julian date epochs are advanced to")
	flags.StringVar(&a.config.ReferenceDate, "reference-date", a.config.ReferenceDate, "reference as RFC 3339 timestamp or YYYY-MM-DD (overrides --reference-jd)")
	flags.Float64Var(&a.config.MaxMagnitude, "max-magnitude", a.config.MaxMagnitude, "faintest maximum magnitude kept in the pulsating set")
	flags.StringVar(&a.config.Summary, "summary", a.config.Summary, "run summary on stdout: none, table, json, yaml, auto")

	rootCmd.SetVersionTemplate("varstars {{.Version}}\n")

	return rootCmd
}

// setupCommand is called before the command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		if err := a.reloadConfig(cmd); err != nil {
			return err
		}
	}

	if !a.loggerFixed {
		logger, err := NewLogger(a.config)
		if err != nil {
			return err
		}
		a.logger = &logger
	}

	return nil
}

// reloadConfig reads the explicit config file, then reapplies the flags
// given on the command line so they keep precedence.
func (a *App) reloadConfig(cmd *cobra.Command) error {
	config, err := LoadConfig(a.config.ConfigFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		config.Verbose = mustGetBool(cmd, "verbose")
	}
	if flags.Changed("quiet") {
		config.Quiet = mustGetBool(cmd, "quiet")
	}
	if flags.Changed("no-color") {
		config.NoColor = mustGetBool(cmd, "no-color")
	}
	if flags.Changed("log-level") {
		config.LogLevel = mustGetString(cmd, "log-level")
	}
	if flags.Changed("format") {
		config.Format = mustGetString(cmd, "format")
	}
	if flags.Changed("reference-jd") {
		config.ReferenceJD = mustGetFloat64(cmd, "reference-jd")
	}
	if flags.Changed("reference-date") {
		config.ReferenceDate = mustGetString(cmd, "reference-date")
	}
	if flags.Changed("max-magnitude") {
		config.MaxMagnitude = mustGetFloat64(cmd, "max-magnitude")
	}
	if flags.Changed("summary") {
		config.Summary = mustGetString(cmd, "summary")
	}

	*a.config = *config
	return nil
}

// run converts the catalogs named by the four positional arguments.
func (a *App) run(cmd *cobra.Command, args []string) error {
	summary, err := a.summaryFormat()
	if err != nil {
		return err
	}

	conv, err := a.Converter()
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	result, err := conv.ConvertFiles(ctx, varstars.Paths{
		GCVS:      args[0],
		Krakow:    args[1],
		Eclipsing: args[2],
		Pulsating: args[3],
	})
	if err != nil {
		return err
	}

	return output.Summary(a.stdout, summary, result.Stats)
}

// summaryFormat resolves the --summary setting; "auto" picks table on a
// terminal and JSON otherwise.
func (a *App) summaryFormat() (output.Format, error) {
	switch a.config.Summary {
	case "", string(output.FormatNone):
		return output.FormatNone, nil
	case "auto":
		return output.DetectFormat(a.stdout), nil
	}

	format, err := output.ParseFormat(a.config.Summary)
	if err != nil {
		return "", errors.NewConfigError("summary", err.Error(), err)
	}
	return format, nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetFloat64 retrieves a float flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetFloat64(cmd *cobra.Command, name string) float64 {
	val, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
