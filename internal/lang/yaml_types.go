package lang

// PackageFile is the YAML document read by the front end.
type PackageFile struct {
	Package string       `yaml:"package"`
	Modules []ModuleSpec `yaml:"modules"`
}

// ModuleSpec describes one module in a PackageFile.
type ModuleSpec struct {
	Name string `yaml:"name"`
	// Namespace is inherited by definitions that don't set their own.
	// Defaults to Name.
	Namespace   string           `yaml:"namespace,omitempty"`
	Definitions []DefinitionSpec `yaml:"definitions"`
}

// DefinitionSpec describes one definition. Exactly one of Enum, Message,
// Exception or Interface names it and selects its kind.
type DefinitionSpec struct {
	Enum      string `yaml:"enum,omitempty"`
	Message   string `yaml:"message,omitempty"`
	Exception string `yaml:"exception,omitempty"`
	Interface string `yaml:"interface,omitempty"`

	Namespace string `yaml:"namespace,omitempty"`
	Doc       string `yaml:"doc,omitempty"`

	// Enum.
	Values []string `yaml:"values,omitempty"`

	// Message and exception.
	Base               string      `yaml:"base,omitempty"`
	DiscriminatorValue string      `yaml:"discriminator_value,omitempty"`
	Fields             []FieldSpec `yaml:"fields,omitempty"`

	// Interface.
	Exc     string       `yaml:"exc,omitempty"`
	Methods []MethodSpec `yaml:"methods,omitempty"`
}

// FieldSpec describes a message field.
type FieldSpec struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Discriminator bool   `yaml:"discriminator,omitempty"`
}

// MethodSpec describes an interface method. Result defaults to "void".
type MethodSpec struct {
	Name   string    `yaml:"name"`
	Doc    string    `yaml:"doc,omitempty"`
	Args   []ArgSpec `yaml:"args,omitempty"`
	Result string    `yaml:"result,omitempty"`
	Post   bool      `yaml:"post,omitempty"`
}

// ArgSpec describes a method argument.
type ArgSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// kindAndName returns the definition kind and name selected by the entry,
// and how many kind keys were set.
func (s *DefinitionSpec) kindAndName() (DefinitionKind, string, int) {
	kind, name, n := DefinitionUnknown, "", 0

	if s.Enum != "" {
		kind, name, n = DefinitionEnum, s.Enum, n+1
	}

	if s.Message != "" {
		kind, name, n = DefinitionMessage, s.Message, n+1
	}

	if s.Exception != "" {
		kind, name, n = DefinitionMessage, s.Exception, n+1
	}

	if s.Interface != "" {
		kind, name, n = DefinitionInterface, s.Interface, n+1
	}

	return kind, name, n
}
