package lang

import "strings"

// Package is the root of a compiled schema: an ordered list of modules.
type Package struct {
	Name    string
	Modules []*Module
}

// Module is a named unit of definitions, e.g. "pdef.example".
type Module struct {
	// Name is the fully-qualified dotted module name.
	Name        string
	Definitions []*Definition
}

// LookupDefinition returns the module definition with the given local name, or nil.
func (m *Module) LookupDefinition(name string) *Definition {
	for _, def := range m.Definitions {
		if def.Name == name {
			return def
		}
	}

	return nil
}

//go:generate go tool stringer -type=DefinitionKind -linecomment -output=kind_string.go

// DefinitionKind tells which of the definition variants a Definition holds.
type DefinitionKind int

const (
	DefinitionUnknown   DefinitionKind = iota // unknown
	DefinitionEnum                            // enum
	DefinitionMessage                         // message
	DefinitionInterface                       // interface
)

// Definition is a named schema element owned by exactly one module.
type Definition struct {
	Kind DefinitionKind
	Name string
	// Namespace scopes the optional output name prefix.
	Namespace string
	// Module is the owning module (back reference).
	Module *Module
	Doc    string

	// Enum.
	Values []string

	// Message.
	Base               *Type
	DiscriminatorValue *Type
	Fields             []*Field
	IsException        bool

	// Interface.
	Exception *Type
	Methods   []*Method
}

// FullName returns the unmapped "module.Name" reference of the definition.
func (d *Definition) FullName() string {
	if d.Module == nil || d.Module.Name == "" {
		return d.Name
	}

	return d.Module.Name + "." + d.Name
}

// IsEnum reports whether the definition is an enum.
func (d *Definition) IsEnum() bool { return d.Kind == DefinitionEnum }

// IsMessage reports whether the definition is a message.
func (d *Definition) IsMessage() bool { return d.Kind == DefinitionMessage }

// IsInterface reports whether the definition is an interface.
func (d *Definition) IsInterface() bool { return d.Kind == DefinitionInterface }

// HasValue reports whether an enum declares the given value.
func (d *Definition) HasValue(name string) bool {
	for _, v := range d.Values {
		if v == name {
			return true
		}
	}

	return false
}

// Discriminator returns the discriminator field of a message, or nil.
func (d *Definition) Discriminator() *Field {
	for _, f := range d.Fields {
		if f.IsDiscriminator {
			return f
		}
	}

	return nil
}

// Field is a message field.
type Field struct {
	Name            string
	Type            *Type
	IsDiscriminator bool
}

// Method is an interface method.
type Method struct {
	Name   string
	Doc    string
	Args   []*Argument
	Result *Type
	// IsPost marks methods that mutate state.
	IsPost bool
}

// Argument is a method argument.
type Argument struct {
	Name string
	Type *Type
}

// TypeKind represents the variant held by a Type.
type TypeKind int

const (
	TypeKindUnknown    TypeKind = iota
	TypeKindPrimitive           // bool, int32, string, etc.
	TypeKindVoid                // void
	TypeKindList                // list<T>
	TypeKindSet                 // set<T>
	TypeKindMap                 // map<K, V>
	TypeKindEnumValue           // Enum.VALUE
	TypeKindDefinition          // enum, message or interface reference
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindVoid:
		return "void"
	case TypeKindList:
		return "list"
	case TypeKindSet:
		return "set"
	case TypeKindMap:
		return "map"
	case TypeKindEnumValue:
		return "enum value"
	case TypeKindDefinition:
		return "definition"
	default:
		return "unknown"
	}
}

// Type is a type expression. Only the fields of its Kind are set.
type Type struct {
	Kind      TypeKind
	Primitive PrimitiveKind // TypeKindPrimitive
	Element   *Type         // TypeKindList, TypeKindSet
	Key       *Type         // TypeKindMap
	Value     *Type         // TypeKindMap
	// Definition is the referenced definition, or the owning enum of an enum value.
	Definition *Definition
	ValueName  string // TypeKindEnumValue
}

// Primitive returns a primitive type expression.
func Primitive(k PrimitiveKind) *Type {
	return &Type{Kind: TypeKindPrimitive, Primitive: k}
}

// Void returns the void type expression.
func Void() *Type {
	return &Type{Kind: TypeKindVoid}
}

// ListOf returns list<elem>.
func ListOf(elem *Type) *Type {
	return &Type{Kind: TypeKindList, Element: elem}
}

// SetOf returns set<elem>.
func SetOf(elem *Type) *Type {
	return &Type{Kind: TypeKindSet, Element: elem}
}

// MapOf returns map<key, value>.
func MapOf(key, value *Type) *Type {
	return &Type{Kind: TypeKindMap, Key: key, Value: value}
}

// EnumValueOf returns a reference to a single enum value.
func EnumValueOf(enum *Definition, name string) *Type {
	return &Type{Kind: TypeKindEnumValue, Definition: enum, ValueName: name}
}

// RefTo returns a reference to a definition.
func RefTo(def *Definition) *Type {
	return &Type{Kind: TypeKindDefinition, Definition: def}
}

// String returns the unmapped source form of the type, e.g. "map<int32, pdef.example.User>".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	var sb strings.Builder

	switch t.Kind {
	case TypeKindPrimitive:
		sb.WriteString(t.Primitive.Keyword())
	case TypeKindVoid:
		sb.WriteString("void")
	case TypeKindList, TypeKindSet:
		sb.WriteString(t.Kind.String())
		sb.WriteString("<")
		sb.WriteString(t.Element.String())
		sb.WriteString(">")
	case TypeKindMap:
		sb.WriteString("map<")
		sb.WriteString(t.Key.String())
		sb.WriteString(", ")
		sb.WriteString(t.Value.String())
		sb.WriteString(">")
	case TypeKindEnumValue:
		sb.WriteString(t.Definition.FullName())
		sb.WriteString(".")
		sb.WriteString(t.ValueName)
	case TypeKindDefinition:
		sb.WriteString(t.Definition.FullName())
	default:
		sb.WriteString("<" + t.Kind.String() + ">")
	}

	return sb.String()
}
