package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdef-example-generator/internal/gen"
	"pdef-example-generator/internal/output"
	"pdef-example-generator/internal/templates"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate PACKAGE",
		Short: "Render example artifacts for a package",
		Long: `Render one artifact per definition and one per module of PACKAGE.

Definitions are written to <out>/<module dir>/<prefix><Name>.json and modules
to <out>/<module dir>.json, where <module dir> is the mapped module name with
dots replaced by slashes.`,
		Example: `  pdef-example generate package.yaml --out build \
    --module pdef.example:io.sample --prefix pdef.example:T`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args[0], dryRun)
		},
	}

	flags := cmd.Flags()
	flags.StringP("out", "o", "out", "Output directory (env: PDEF_EXAMPLE_OUT)")
	flags.StringSliceP("module", "m", nil, "Module renaming rule from:to, repeatable (env: PDEF_EXAMPLE_MODULES)")
	flags.StringSliceP("prefix", "p", nil, "Namespace prefix rule namespace:prefix, repeatable (env: PDEF_EXAMPLE_PREFIXES)")
	flags.IntP("workers", "w", 1, "Artifacts rendered concurrently (env: PDEF_EXAMPLE_WORKERS)")
	flags.String("templates", "", "Directory with enum, message, interface and module templates")
	flags.BoolVar(&dryRun, "dry-run", false, "Print the artifact paths without writing files")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *globalOptions, path string, dryRun bool) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	mapper, err := cfg.Mapper()
	if err != nil {
		return err
	}

	output.Debug("naming rules", "modules", mapper.ModuleRules(), "prefixes", mapper.PrefixRules())

	pkg, _, err := loadPackage(cmd, path)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cfg.Templates)
	if err != nil {
		return err
	}

	var sink gen.Sink

	memory := &gen.MemorySink{}
	if dryRun {
		sink = memory
	} else {
		sink = gen.NewDirSink(cfg.Out)
	}

	g := gen.NewGenerator(gen.GeneratorConfig{Mapper: mapper, Workers: cfg.Workers}, renderer, sink,
		gen.WithLogger(output.Logger()))

	if err := g.Generate(cmd.Context(), pkg); err != nil {
		return err
	}

	if dryRun {
		for _, p := range memory.Paths() {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	}

	return nil
}

func newRenderer(dir string) (*templates.Renderer, error) {
	if dir == "" {
		return templates.New()
	}

	output.Debug("using templates", "dir", dir)

	return templates.NewFromDir(dir)
}
