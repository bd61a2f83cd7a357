package templates

import (
	"bytes"
	"io/fs"
	"encoding/json"
	"os"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"pdef-example-generator/internal/gen"
)

// funcs are available in every template besides the render context methods.
var funcs = template.FuncMap{
	"quote": quote,
}

// quote renders s as a JSON string literal. Invalid UTF-8 becomes U+FFFD.
func quote(s string) (string, error) {
	var b strings.Builder

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return "", errors.Wrap(err, "quoting string")
	}

	return strings.TrimSuffix(b.String(), "\n"), nil
}

// Renderer implements gen.Renderer. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

var _ gen.Renderer = (*Renderer)(nil)

// New returns a Renderer over the embedded templates.
func New() (*Renderer, error) {
	return NewFromFS(defaultFS)
}

// NewFromDir returns a Renderer over the *.tmpl files in dir.
func NewFromDir(dir string) (*Renderer, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading template directory")
	}

	if !info.IsDir() {
		return nil, errors.Newf("template path %s is not a directory", dir)
	}

	return NewFromFS(os.DirFS(dir))
}

// NewFromFS parses the *.tmpl files of fsys. Every template kind must be present.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(fsys, "*"+templateExt)
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}

	for _, kind := range gen.TemplateKinds() {
		if tmpl.Lookup(FileName(kind)) == nil {
			return nil, errors.WithHintf(errors.Newf("missing template %s", FileName(kind)),
				"provide %s for every kind", templateNames())
		}
	}

	return &Renderer{tmpl: tmpl}, nil
}

// FileName returns the template file name of a kind, e.g. "message.tmpl".
func FileName(kind gen.TemplateKind) string {
	return kind.String() + templateExt
}

// Render implements gen.Renderer.
func (r *Renderer) Render(kind gen.TemplateKind, rc *gen.RenderContext) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, FileName(kind), rc); err != nil {
		return nil, errors.Wrapf(err, "executing %s template", kind)
	}

	return buf.Bytes(), nil
}

func templateNames() []string {
	kinds := gen.TemplateKinds()

	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, FileName(kind))
	}

	return names
}
