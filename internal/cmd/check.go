package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check PACKAGE",
		Short: "Validate a package without generating anything",
		Long: `Load and link PACKAGE, reporting unknown types, duplicate names and
invalid enum values. Exits with status 2 when the package is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd, opts); err != nil {
				return err
			}

			pkg, diags, err := loadPackage(cmd, args[0])
			if err != nil {
				return err
			}

			definitions := 0
			for _, m := range pkg.Modules {
				definitions += len(m.Definitions)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d module(s), %d definition(s), %d warning(s)\n",
				len(pkg.Modules), definitions, len(diags.Warnings))

			return nil
		},
	}
}
