package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func newDumpCmd(opts *globalOptions) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "dump PACKAGE",
		Short: "Print the linked package tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd, opts); err != nil {
				return err
			}

			pkg, _, err := loadPackage(cmd, args[0])
			if err != nil {
				return err
			}

			// Definitions point back at their module; the depth limit keeps output finite.
			cfg := spew.ConfigState{
				Indent:                  "  ",
				MaxDepth:                depth,
				DisablePointerAddresses: true,
				DisableCapacities:       true,
				DisableMethods:          true,
				SortKeys:                true,
			}
			cfg.Fdump(cmd.OutOrStdout(), pkg)

			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 8, "Maximum nesting depth")

	return cmd
}
