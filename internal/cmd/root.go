package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"pdef-example-generator/internal/config"
	"pdef-example-generator/internal/output"
)

// globalOptions holds flags shared by every command.
type globalOptions struct {
	configFile string
	verbose    bool
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "pdef-example",
		Short: "Generate example artifacts from pdef packages",
		Long: `pdef-example renders one example artifact per enum, message and interface
of a pdef package, plus one artifact per module, into a directory tree that
mirrors the module names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			output.SetupLogging(output.LogConfig{Verbose: opts.verbose, Writer: cmd.ErrOrStderr()})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"Path to a YAML or TOML config file (default ./pdef-example.{yaml,toml})")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging (env: PDEF_EXAMPLE_VERBOSE)")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig merges flags, environment and the config file. Logging is
// reconfigured when the config enables verbose output.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg, err := loader.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	if cfg.Verbose && !opts.verbose {
		output.SetupLogging(output.LogConfig{Verbose: true, Writer: cmd.ErrOrStderr()})
	}

	if used := loader.ConfigFileUsed(); used != "" {
		output.Debug("loaded config", "file", used)
	}

	return cfg, nil
}

// Execute runs the root command with args and returns the process exit code.
// Errors and their hints are reported on stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		fmt.Fprintln(stderr, "Error: "+err.Error())
	}

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(stderr, "hint: "+hint)
	}

	return ExitCodeFromError(err)
}
