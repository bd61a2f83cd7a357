package gen

import (
	"github.com/cockroachdb/errors"

	"pdef-example-generator/internal/lang"
)

// TemplateKind selects which template renders an artifact.
type TemplateKind int

const (
	TemplateEnum TemplateKind = iota + 1
	TemplateMessage
	TemplateInterface
	TemplateModule
)

// String returns the template name ("enum", "message", "interface", "module").
func (k TemplateKind) String() string {
	switch k {
	case TemplateEnum:
		return "enum"
	case TemplateMessage:
		return "message"
	case TemplateInterface:
		return "interface"
	case TemplateModule:
		return "module"
	default:
		return "unknown"
	}
}

// TemplateKinds returns every template kind a Renderer must support.
func TemplateKinds() []TemplateKind {
	return []TemplateKind{TemplateEnum, TemplateMessage, TemplateInterface, TemplateModule}
}

// RenderContext is everything a template may use to render one artifact.
type RenderContext struct {
	Kind TemplateKind
	// Definition is nil for module artifacts.
	Definition *lang.Definition
	Module     *lang.Module
	// Refs renders type references and names.
	Refs *Resolver
	// Path is the artifact output path.
	Path string
}

// Renderer renders one artifact. Implementations must be safe for concurrent
// use when the generator runs with more than one worker.
type Renderer interface {
	Render(kind TemplateKind, rc *RenderContext) ([]byte, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(kind TemplateKind, rc *RenderContext) ([]byte, error)

// Render calls f(kind, rc).
func (f RendererFunc) Render(kind TemplateKind, rc *RenderContext) ([]byte, error) {
	return f(kind, rc)
}

// templateKindFor dispatches a definition to its template kind.
func templateKindFor(def *lang.Definition) (TemplateKind, error) {
	switch def.Kind {
	case lang.DefinitionEnum:
		return TemplateEnum, nil
	case lang.DefinitionMessage:
		return TemplateMessage, nil
	case lang.DefinitionInterface:
		return TemplateInterface, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedDefinition, "%s %s", def.Kind, def.FullName())
	}
}
