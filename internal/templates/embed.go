// Package templates renders example artifacts with text/template.
//
// The default templates (enum.tmpl, message.tmpl, interface.tmpl and
// module.tmpl) are embedded; a directory holding files with the same names
// can replace them. Each template executes against a *gen.RenderContext and
// reaches type references through .Refs, for example:
//
//	{{ quote (.Refs.TypeRef $field.Type) }}
package templates

import (
	"embed"
)

//go:embed *.tmpl
var defaultFS embed.FS

// templateExt is the file extension of template files.
const templateExt = ".tmpl"
