package lang

import (
	"fmt"
	"strings"

	"pdef-example-generator/internal/diagnostic"
	"pdef-example-generator/internal/match"
)

// Diagnostic codes reported by Link.
const (
	CodeDuplicateModule     = "duplicate_module"
	CodeDuplicateDefinition = "duplicate_definition"
	CodeDuplicateEnumValue  = "duplicate_enum_value"
	CodeMissingName         = "missing_name"
	CodeMissingKind         = "missing_kind"
	CodeAmbiguousKind       = "ambiguous_kind"
	CodeInvalidType         = "invalid_type"
	CodeUnknownType         = "unknown_type"
	CodeNotAnEnum           = "not_an_enum"
	CodeUnknownEnumValue    = "unknown_enum_value"
	CodeInvalidBase         = "invalid_base"
	CodeNoDiscriminator     = "no_discriminator"
)

// Link builds a Package from a parsed PackageFile, resolving every type
// string. It returns a nil package when the diagnostics contain errors.
func Link(pf *PackageFile) (*Package, *diagnostic.Diagnostics) {
	l := &linker{
		diags: &diagnostic.Diagnostics{},
		index: make(map[string]*Definition),
	}

	pkg := &Package{Name: pf.Package}

	var pending []pendingDefinition

	seenModules := make(map[string]struct{}, len(pf.Modules))

	for i := range pf.Modules {
		spec := &pf.Modules[i]

		if spec.Name == "" {
			l.diags.AddError(CodeMissingName, fmt.Sprintf("module #%d has no name", i+1), "", "")
			continue
		}

		if _, ok := seenModules[spec.Name]; ok {
			l.diags.AddError(CodeDuplicateModule, fmt.Sprintf("duplicate module %q", spec.Name), spec.Name, "")
			continue
		}

		seenModules[spec.Name] = struct{}{}

		module := &Module{Name: spec.Name}
		pkg.Modules = append(pkg.Modules, module)

		for j := range spec.Definitions {
			if def := l.declare(module, &spec.Definitions[j], j); def != nil {
				pending = append(pending, pendingDefinition{def: def, spec: &spec.Definitions[j]})
			}
		}
	}

	for _, p := range pending {
		l.resolveMembers(p.def, p.spec)
	}

	// Bases may be declared after their subtypes, so check once all fields exist.
	for _, p := range pending {
		l.checkDiscriminator(p.def)
	}

	if l.diags.HasErrors() {
		return nil, l.diags
	}

	return pkg, l.diags
}

type pendingDefinition struct {
	def  *Definition
	spec *DefinitionSpec
}

type linker struct {
	diags *diagnostic.Diagnostics
	// index maps "module.Name" to its definition.
	index map[string]*Definition
	// names holds the index keys in declaration order.
	names []string
}

// declare registers a definition so that later types can reference it.
func (l *linker) declare(module *Module, spec *DefinitionSpec, pos int) *Definition {
	kind, name, n := spec.kindAndName()

	switch {
	case n == 0:
		l.diags.AddError(CodeMissingKind,
			fmt.Sprintf("definition #%d sets none of enum, message, exception, interface", pos+1),
			module.Name, "")

		return nil
	case n > 1:
		l.diags.AddError(CodeAmbiguousKind,
			fmt.Sprintf("definition %q sets more than one of enum, message, exception, interface", name),
			module.Name, name)

		return nil
	}

	if module.LookupDefinition(name) != nil {
		l.diags.AddError(CodeDuplicateDefinition, fmt.Sprintf("duplicate definition %q", name), module.Name, name)
		return nil
	}

	def := &Definition{
		Kind:        kind,
		Name:        name,
		Namespace:   spec.Namespace,
		Module:      module,
		Doc:         spec.Doc,
		IsException: spec.Exception != "",
	}

	if kind == DefinitionEnum {
		seen := make(map[string]struct{}, len(spec.Values))
		for _, v := range spec.Values {
			if _, ok := seen[v]; ok {
				l.diags.AddError(CodeDuplicateEnumValue, fmt.Sprintf("duplicate enum value %q", v),
					module.Name, name+".values")

				continue
			}

			seen[v] = struct{}{}
			def.Values = append(def.Values, v)
		}
	}

	module.Definitions = append(module.Definitions, def)
	l.index[def.FullName()] = def
	l.names = append(l.names, def.FullName())

	return def
}

// resolveMembers resolves the type strings of a declared definition.
func (l *linker) resolveMembers(def *Definition, spec *DefinitionSpec) {
	module := def.Module

	switch def.Kind {
	case DefinitionMessage:
		if spec.Base != "" {
			def.Base = l.resolve(module, spec.Base, def.Name+".base")
			if def.Base != nil && !isMessageRef(def.Base) {
				l.diags.AddError(CodeInvalidBase,
					fmt.Sprintf("base %s is not a message", spec.Base), module.Name, def.Name+".base")
			}
		}

		for _, f := range spec.Fields {
			def.Fields = append(def.Fields, &Field{
				Name:            f.Name,
				Type:            l.resolve(module, f.Type, def.Name+".fields."+f.Name),
				IsDiscriminator: f.Discriminator,
			})
		}

		if spec.DiscriminatorValue != "" {
			def.DiscriminatorValue = l.resolveEnumValue(module, spec.DiscriminatorValue,
				def.Name+".discriminator_value")
		}

	case DefinitionInterface:
		if spec.Exc != "" {
			def.Exception = l.resolve(module, spec.Exc, def.Name+".exc")
		}

		for _, m := range spec.Methods {
			path := def.Name + ".methods." + m.Name
			method := &Method{
				Name:   m.Name,
				Doc:    m.Doc,
				Result: l.resolve(module, m.Result, path+".result"),
				IsPost: m.Post,
			}

			for _, a := range m.Args {
				method.Args = append(method.Args, &Argument{
					Name: a.Name,
					Type: l.resolve(module, a.Type, path+".args."+a.Name),
				})
			}

			def.Methods = append(def.Methods, method)
		}

	case DefinitionEnum, DefinitionUnknown:
	}
}

// resolve parses and resolves a type string in the scope of a module.
// Problems are recorded as diagnostics and yield nil.
func (l *linker) resolve(module *Module, s, path string) *Type {
	node, err := parseTypeString(s)
	if err != nil {
		l.diags.AddError(CodeInvalidType, fmt.Sprintf("invalid type %q: %v", s, err), module.Name, path)
		return nil
	}

	return l.resolveNode(module, node, path)
}

func (l *linker) resolveNode(module *Module, node *typeNode, path string) *Type {
	arity := func(want int) bool {
		if len(node.args) == want {
			return true
		}

		l.diags.AddError(CodeInvalidType,
			fmt.Sprintf("%s takes %d type argument(s), got %d", node.name, want, len(node.args)),
			module.Name, path)

		return false
	}

	switch node.name {
	case "void":
		if !arity(0) {
			return nil
		}

		return Void()

	case "list", "set":
		if !arity(1) {
			return nil
		}

		elem := l.resolveNode(module, node.args[0], path)
		if elem == nil {
			return nil
		}

		if node.name == "list" {
			return ListOf(elem)
		}

		return SetOf(elem)

	case "map":
		if !arity(2) {
			return nil
		}

		key := l.resolveNode(module, node.args[0], path)
		value := l.resolveNode(module, node.args[1], path)

		if key == nil || value == nil {
			return nil
		}

		return MapOf(key, value)
	}

	if !arity(0) {
		return nil
	}

	if k, ok := LookupPrimitive(node.name); ok {
		return Primitive(k)
	}

	def := l.lookup(module, node.name)
	if def == nil {
		l.diags.AddError(CodeUnknownType, fmt.Sprintf("unknown type %q", node.name), module.Name, path,
			match.Suggest(node.name, l.candidates(module), match.DefaultMaxSuggestions)...)

		return nil
	}

	return RefTo(def)
}

// resolveEnumValue resolves "Enum.VALUE" or "module.Enum.VALUE".
func (l *linker) resolveEnumValue(module *Module, s, path string) *Type {
	dot := strings.LastIndex(s, ".")
	if dot <= 0 || dot == len(s)-1 {
		l.diags.AddError(CodeInvalidType, fmt.Sprintf("invalid enum value %q, want Enum.VALUE", s), module.Name, path)
		return nil
	}

	enumName, value := s[:dot], s[dot+1:]

	def := l.lookup(module, enumName)
	if def == nil {
		l.diags.AddError(CodeUnknownType, fmt.Sprintf("unknown enum %q", enumName), module.Name, path,
			match.Suggest(enumName, l.candidates(module), match.DefaultMaxSuggestions)...)

		return nil
	}

	if !def.IsEnum() {
		l.diags.AddError(CodeNotAnEnum, fmt.Sprintf("%s is a %s, not an enum", enumName, def.Kind), module.Name, path)
		return nil
	}

	if !def.HasValue(value) {
		l.diags.AddError(CodeUnknownEnumValue, fmt.Sprintf("enum %s has no value %q", enumName, value),
			module.Name, path, match.Suggest(value, def.Values, match.DefaultMaxSuggestions)...)

		return nil
	}

	return EnumValueOf(def, value)
}

// lookup finds a definition by qualified name, then by name local to module.
func (l *linker) lookup(module *Module, name string) *Definition {
	if def, ok := l.index[name]; ok {
		return def
	}

	if def, ok := l.index[module.Name+"."+name]; ok {
		return def
	}

	return nil
}

// candidates lists names a reference from module could have meant.
func (l *linker) candidates(module *Module) []string {
	out := make([]string, 0, len(l.names)+len(module.Definitions)+len(primitiveKeywords)+1)
	for _, def := range module.Definitions {
		out = append(out, def.Name)
	}

	out = append(out, l.names...)
	for _, k := range Primitives() {
		out = append(out, k.Keyword())
	}

	return append(out, "void")
}

// checkDiscriminator warns when a subtype selects a discriminator value but
// no base in its chain declares a discriminator field.
func (l *linker) checkDiscriminator(def *Definition) {
	if def.DiscriminatorValue == nil || def.Base == nil || !isMessageRef(def.Base) {
		return
	}

	if inheritedDiscriminator(def.Base.Definition) == nil {
		l.diags.AddWarning(CodeNoDiscriminator,
			fmt.Sprintf("base %s declares no discriminator field", def.Base.Definition.FullName()),
			def.Module.Name, def.Name)
	}
}

func isMessageRef(t *Type) bool {
	return t.Kind == TypeKindDefinition && t.Definition.IsMessage()
}

// inheritedDiscriminator walks the base chain looking for a discriminator field.
func inheritedDiscriminator(def *Definition) *Field {
	seen := make(map[*Definition]struct{})

	for def != nil {
		if _, ok := seen[def]; ok {
			return nil
		}

		seen[def] = struct{}{}

		if f := def.Discriminator(); f != nil {
			return f
		}

		if def.Base == nil || !isMessageRef(def.Base) {
			return nil
		}

		def = def.Base.Definition
	}

	return nil
}
