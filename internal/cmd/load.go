package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdef-example-generator/internal/diagnostic"
	"pdef-example-generator/internal/lang"
	"pdef-example-generator/internal/output"
)

// loadPackage loads and links a package file. Diagnostics are printed to
// stderr; error diagnostics fail with ExitInvalidInput.
func loadPackage(cmd *cobra.Command, path string) (*lang.Package, *diagnostic.Diagnostics, error) {
	pkg, diags, err := lang.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	for _, w := range diags.Warnings {
		output.Warn(w.String())
	}

	if diags.HasErrors() {
		for _, e := range diags.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), "error: "+e.String())
		}

		return nil, diags, &ExitError{Err: diags.Err(), Code: ExitInvalidInput, Printed: true}
	}

	output.Debug("loaded package", "file", path, "modules", len(pkg.Modules))

	return pkg, diags, nil
}
