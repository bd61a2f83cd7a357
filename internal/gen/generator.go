package gen

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"pdef-example-generator/internal/lang"
	"pdef-example-generator/internal/naming"
)

// GeneratorConfig holds configuration for artifact generation.
type GeneratorConfig struct {
	// Mapper holds module renaming and namespace prefix rules. Nil maps nothing.
	Mapper *naming.Mapper
	// Workers is the number of artifacts rendered concurrently. Values below 2
	// render and write one artifact at a time.
	Workers int
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Mapper:  &naming.Mapper{},
		Workers: 1,
	}
}

// Artifact is one rendered output file.
type Artifact struct {
	// Path is slash-separated and relative, e.g. "pdef/example/Sex.json".
	Path    string
	Content []byte
}

// Generator renders example artifacts for every definition and module of a package.
type Generator struct {
	config   GeneratorConfig
	refs     *Resolver
	renderer Renderer
	sink     Sink
	logger   *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. By default the generator logs nothing.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator rendering through renderer and writing to sink.
func NewGenerator(config GeneratorConfig, renderer Renderer, sink Sink, opts ...Option) *Generator {
	if config.Mapper == nil {
		config.Mapper = &naming.Mapper{}
	}

	g := &Generator{
		config:   config,
		refs:     NewResolver(config.Mapper),
		renderer: renderer,
		sink:     sink,
		logger:   log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// job is one artifact to produce: a definition, or a module when def is nil.
type job struct {
	module *lang.Module
	def    *lang.Definition
}

// jobs lists artifacts in output order: each module's definitions, then the module.
func jobs(pkg *lang.Package) []job {
	var out []job

	for _, module := range pkg.Modules {
		for _, def := range module.Definitions {
			out = append(out, job{module: module, def: def})
		}

		out = append(out, job{module: module})
	}

	return out
}

// Generate renders and writes one artifact per definition and one per module,
// in input order. It stops at the first error; artifacts already written stay.
func (g *Generator) Generate(ctx context.Context, pkg *lang.Package) error {
	if g.config.Workers > 1 {
		artifacts, err := g.Render(ctx, pkg)
		if err != nil {
			return err
		}

		if err := WriteArtifacts(artifacts, g.sink); err != nil {
			return err
		}

		g.logger.Info("generation complete", "modules", len(pkg.Modules), "artifacts", len(artifacts))

		return nil
	}

	all := jobs(pkg)
	for _, j := range all {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "generation canceled")
		}

		artifact, err := g.render(j)
		if err != nil {
			return err
		}

		if err := g.write(artifact); err != nil {
			return err
		}
	}

	g.logger.Info("generation complete", "modules", len(pkg.Modules), "artifacts", len(all))

	return nil
}

// Render renders every artifact of the package without writing anything.
// With more than one worker, artifacts render concurrently; the result keeps
// input order and the error, if any, is the one of the earliest artifact.
func (g *Generator) Render(ctx context.Context, pkg *lang.Package) ([]Artifact, error) {
	all := jobs(pkg)
	artifacts := make([]Artifact, len(all))
	errs := make([]error, len(all))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, g.config.Workers))

	for i, j := range all {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			artifacts[i], errs[i] = g.render(j)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "generation canceled")
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return artifacts, nil
}

// render dispatches a job to its template and renders it.
func (g *Generator) render(j job) (Artifact, error) {
	rc := &RenderContext{
		Definition: j.def,
		Module:     j.module,
		Refs:       g.refs,
	}

	if j.def == nil {
		rc.Kind = TemplateModule
		rc.Path = ModulePath(g.config.Mapper, j.module)
	} else {
		kind, err := templateKindFor(j.def)
		if err != nil {
			return Artifact{}, err
		}

		rc.Kind = kind
		rc.Path = DefinitionPath(g.config.Mapper, j.def)
	}

	content, err := g.renderer.Render(rc.Kind, rc)
	if err != nil {
		return Artifact{}, errors.Wrapf(err, "rendering %s %s", rc.Kind, rc.Path)
	}

	g.logger.Debug("rendered artifact", "kind", rc.Kind, "path", rc.Path)

	return Artifact{Path: rc.Path, Content: content}, nil
}

func (g *Generator) write(a Artifact) error {
	if err := g.sink.Write(a.Path, a.Content); err != nil {
		return errors.Mark(errors.Wrapf(err, "writing %s", a.Path), ErrArtifactWrite)
	}

	g.logger.Debug("wrote artifact", "path", a.Path, "bytes", len(a.Content))

	return nil
}
