package gen

import (
	"github.com/cockroachdb/errors"

	"pdef-example-generator/internal/lang"
	"pdef-example-generator/internal/naming"
)

// Resolver renders type references for templates.
type Resolver struct {
	mapper *naming.Mapper
}

// NewResolver creates a Resolver. A nil mapper maps nothing.
func NewResolver(mapper *naming.Mapper) *Resolver {
	if mapper == nil {
		mapper = &naming.Mapper{}
	}

	return &Resolver{mapper: mapper}
}

// Mapper returns the naming rules used by the resolver.
func (r *Resolver) Mapper() *naming.Mapper {
	return r.mapper
}

// TypeRef returns the canonical reference of a type expression, e.g.
// "list<set<int32>>", "map<string, pdef.example.User>" or "pdef.example.Sex.MALE".
func (r *Resolver) TypeRef(t *lang.Type) (string, error) {
	if t == nil {
		return "", errors.Wrap(ErrUnsupportedType, "nil type")
	}

	switch t.Kind {
	case lang.TypeKindPrimitive:
		if !t.Primitive.IsValid() {
			return "", errors.Wrapf(ErrUnsupportedType, "primitive kind %d", int(t.Primitive))
		}

		return t.Primitive.Keyword(), nil

	case lang.TypeKindVoid:
		return "void", nil

	case lang.TypeKindList:
		elem, err := r.TypeRef(t.Element)
		if err != nil {
			return "", err
		}

		return "list<" + elem + ">", nil

	case lang.TypeKindSet:
		elem, err := r.TypeRef(t.Element)
		if err != nil {
			return "", err
		}

		return "set<" + elem + ">", nil

	case lang.TypeKindMap:
		key, err := r.TypeRef(t.Key)
		if err != nil {
			return "", err
		}

		value, err := r.TypeRef(t.Value)
		if err != nil {
			return "", err
		}

		return "map<" + key + ", " + value + ">", nil

	case lang.TypeKindEnumValue:
		if t.Definition == nil || !t.Definition.IsEnum() {
			return "", errors.Wrapf(ErrUnsupportedType, "enum value %q without an enum", t.ValueName)
		}

		return r.DefinitionRef(t.Definition) + "." + t.ValueName, nil

	case lang.TypeKindDefinition:
		if t.Definition == nil {
			return "", errors.Wrap(ErrUnsupportedType, "reference without a definition")
		}

		return r.DefinitionRef(t.Definition), nil

	default:
		return "", errors.Wrapf(ErrUnsupportedType, "type kind %s", t.Kind)
	}
}

// EnumValueRef returns the reference of one value of an enum, e.g. "pdef.example.Sex.MALE".
func (r *Resolver) EnumValueRef(enum *lang.Definition, value string) (string, error) {
	return r.TypeRef(lang.EnumValueOf(enum, value))
}

// DefinitionRef returns the mapped module name joined with the prefixed
// definition name, e.g. "pdef.example.TUser".
func (r *Resolver) DefinitionRef(def *lang.Definition) string {
	return r.ModuleName(def.Module) + "." + r.LocalName(def)
}

// ModuleName returns the mapped module name.
func (r *Resolver) ModuleName(module *lang.Module) string {
	return r.mapper.ResolveModuleName(module.Name)
}

// LocalName returns the prefixed definition name without its module.
func (r *Resolver) LocalName(def *lang.Definition) string {
	return r.mapper.LocalName(def)
}

// Bool renders a boolean as "true" or "false".
func (r *Resolver) Bool(v bool) string {
	if v {
		return "true"
	}

	return "false"
}
