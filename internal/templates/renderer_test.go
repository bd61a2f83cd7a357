package templates

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdef-example-generator/internal/gen"
	"pdef-example-generator/internal/lang"
	"pdef-example-generator/internal/naming"
)

func loadExample(t *testing.T) *lang.Package {
	t.Helper()

	pkg, diags, err := lang.LoadFile(filepath.Join("..", "lang", "testdata", "example.yaml"))
	require.NoError(t, err)
	require.False(t, diags.HasErrors(), "diagnostics: %v", diags.Errors)

	return pkg
}

func generate(t *testing.T, pkg *lang.Package, mapper *naming.Mapper) map[string]string {
	t.Helper()

	renderer, err := New()
	require.NoError(t, err)

	config := gen.DefaultGeneratorConfig()
	config.Mapper = mapper

	sink := &gen.MemorySink{}
	require.NoError(t, gen.NewGenerator(config, renderer, sink).Generate(context.Background(), pkg))

	out := make(map[string]string)
	for _, a := range sink.Artifacts() {
		out[a.Path] = string(a.Content)
	}

	return out
}

func TestRenderer_ExamplePackage(t *testing.T) {
	artifacts := generate(t, loadExample(t), nil)

	assert.Len(t, artifacts, 8)

	for path, content := range artifacts {
		assert.True(t, json.Valid([]byte(content)), "%s is not valid JSON:\n%s", path, content)
	}

	assert.Equal(t, `{
  "enum": "pdef.example.Sex",
  "module": "pdef.example",
  "name": "Sex",
  "doc": "Human sex.",
  "values": [
    "pdef.example.Sex.MALE",
    "pdef.example.Sex.FEMALE"
  ]
}`, strings.TrimSpace(artifacts["pdef/example/Sex.json"]))

	human := artifacts["pdef/example/Human.json"]
	assert.Contains(t, human, `"message": "pdef.example.Human"`)
	assert.Contains(t, human, `"exception": false`)
	assert.Contains(t, human, `{"name": "sex", "type": "pdef.example.Sex", "discriminator": true}`)
	assert.Contains(t, human, `{"name": "tags", "type": "set<string>", "discriminator": false}`)
	assert.Contains(t, human, `{"name": "scores", "type": "map<string, list<double>>", "discriminator": false}`)

	man := artifacts["pdef/example/Man.json"]
	assert.Contains(t, man, `"base": "pdef.example.Human"`)
	assert.Contains(t, man, `"discriminatorValue": "pdef.example.Sex.MALE"`)

	assert.Contains(t, artifacts["pdef/example/NotFound.json"], `"exception": true`)

	humans := artifacts["pdef/example/Humans.json"]
	assert.Contains(t, humans, `"exc": "pdef.example.NotFound"`)
	assert.Contains(t, humans, `"result": "pdef.example.Human"`)
	assert.Contains(t, humans, `"result": "void"`)
	assert.Contains(t, humans, `"post": true`)

	group := artifacts["pdef/example/social/Group.json"]
	assert.Contains(t, group, `"type": "list<pdef.example.Human>"`)
	assert.Contains(t, group, `"type": "map<int64, pdef.example.Man>"`)

	module := artifacts["pdef/example.json"]
	assert.Contains(t, module, `"module": "pdef.example"`)
	assert.Contains(t, module, `{"kind": "enum", "ref": "pdef.example.Sex", "path": "pdef/example/Sex.json"}`)
	assert.Contains(t, module, `{"kind": "interface", "ref": "pdef.example.Humans", "path": "pdef/example/Humans.json"}`)
}

func TestRenderer_ExamplePackage_Mapped(t *testing.T) {
	mapper := naming.NewMapper(
		[]naming.Rule{{From: "pdef.example", To: "io.sample"}},
		[]naming.Rule{{From: "social", To: "S"}},
	)

	artifacts := generate(t, loadExample(t), mapper)

	group, ok := artifacts["pdef/example/social/SGroup.json"]
	require.True(t, ok, "paths: %v", keys(artifacts))
	assert.Contains(t, group, `"message": "pdef.example.social.SGroup"`)
	assert.Contains(t, group, `"type": "list<io.sample.Human>"`)

	sex, ok := artifacts["io/sample/Sex.json"]
	require.True(t, ok)
	assert.Contains(t, sex, `"io.sample.Sex.MALE"`)

	assert.Contains(t, artifacts, "io/sample.json")
}

func TestRenderer_UnsupportedTypePropagates(t *testing.T) {
	renderer, err := New()
	require.NoError(t, err)

	module := &lang.Module{Name: "m"}
	def := &lang.Definition{
		Kind:      lang.DefinitionMessage,
		Name:      "Broken",
		Namespace: "m",
		Module:    module,
		Fields:    []*lang.Field{{Name: "x", Type: lang.ListOf(&lang.Type{})}},
	}

	_, err = renderer.Render(gen.TemplateMessage, &gen.RenderContext{
		Kind:       gen.TemplateMessage,
		Definition: def,
		Module:     module,
		Refs:       gen.NewResolver(nil),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, gen.ErrUnsupportedType))
}

func TestNewFromFS_MissingTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"enum.tmpl":      {Data: []byte("enum")},
		"message.tmpl":   {Data: []byte("message")},
		"interface.tmpl": {Data: []byte("interface")},
	}

	_, err := NewFromFS(fsys)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing template module.tmpl")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestNewFromFS_InvalidTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"enum.tmpl": {Data: []byte("{{ .Broken ")},
	}

	_, err := NewFromFS(fsys)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing templates")
}

func TestNewFromDir(t *testing.T) {
	dir := t.TempDir()

	for _, kind := range gen.TemplateKinds() {
		content := kind.String() + " {{ .Path }}"
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(kind)), []byte(content), 0o644))
	}

	renderer, err := NewFromDir(dir)
	require.NoError(t, err)

	out, err := renderer.Render(gen.TemplateModule, &gen.RenderContext{Path: "pdef/example.json"})
	require.NoError(t, err)
	assert.Equal(t, "module pdef/example.json", string(out))
}

func TestNewFromDir_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFromDir(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading template directory")

	file := filepath.Join(dir, "file.tmpl")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err = NewFromDir(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "enum.tmpl", FileName(gen.TemplateEnum))
	assert.Equal(t, "module.tmpl", FileName(gen.TemplateModule))
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

func TestRenderer_ControlCharactersStayValidJSON(t *testing.T) {
	renderer, err := New()
	require.NoError(t, err)

	module := &lang.Module{Name: "m"}

	for _, doc := range []string{"vertical\vtab", "del\x7f", "bell\a", "bad\xffutf8", "quote\" and \\ slash", "list<a> & b"} {
		t.Run(doc, func(t *testing.T) {
			def := &lang.Definition{
				Kind:      lang.DefinitionEnum,
				Name:      "E",
				Namespace: "m",
				Module:    module,
				Doc:       doc,
				Values:    []string{"A"},
			}

			out, err := renderer.Render(gen.TemplateEnum, &gen.RenderContext{
				Kind:       gen.TemplateEnum,
				Definition: def,
				Module:     module,
				Refs:       gen.NewResolver(nil),
			})
			require.NoError(t, err)
			require.True(t, json.Valid(out), "invalid JSON:\n%s", out)

			var decoded struct {
				Doc string `json:"doc"`
			}
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.Equal(t, strings.ToValidUTF8(doc, "�"), decoded.Doc)
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{"map<int32, string>", `"map<int32, string>"`},
		{"bell\a", `"bell\u0007"`},
		{"tab\t", `"tab\t"`},
		{"bad\xff", `"bad\ufffd"`},
	}

	for _, tt := range tests {
		got, err := quote(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
