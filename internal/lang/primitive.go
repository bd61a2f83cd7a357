package lang

// PrimitiveKind enumerates the built-in scalar types.
type PrimitiveKind int

const (
	_ PrimitiveKind = iota // zero value is not a valid primitive

	PrimitiveBool
	PrimitiveInt16
	PrimitiveInt32
	PrimitiveInt64
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveString
	PrimitiveDatetime
)

var primitiveKeywords = map[PrimitiveKind]string{
	PrimitiveBool:     "bool",
	PrimitiveInt16:    "int16",
	PrimitiveInt32:    "int32",
	PrimitiveInt64:    "int64",
	PrimitiveFloat:    "float",
	PrimitiveDouble:   "double",
	PrimitiveString:   "string",
	PrimitiveDatetime: "datetime",
}

// Primitives returns every valid primitive kind in declaration order.
func Primitives() []PrimitiveKind {
	return []PrimitiveKind{
		PrimitiveBool,
		PrimitiveInt16,
		PrimitiveInt32,
		PrimitiveInt64,
		PrimitiveFloat,
		PrimitiveDouble,
		PrimitiveString,
		PrimitiveDatetime,
	}
}

// Keyword returns the canonical lowercase keyword, or "" for an invalid kind.
func (k PrimitiveKind) Keyword() string {
	return primitiveKeywords[k]
}

// IsValid reports whether k is one of the declared primitive kinds.
func (k PrimitiveKind) IsValid() bool {
	_, ok := primitiveKeywords[k]
	return ok
}

// LookupPrimitive returns the primitive kind for a keyword.
func LookupPrimitive(keyword string) (PrimitiveKind, bool) {
	for k, kw := range primitiveKeywords {
		if kw == keyword {
			return k, true
		}
	}

	return 0, false
}
