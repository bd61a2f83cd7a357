package gen

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdef-example-generator/internal/lang"
	"pdef-example-generator/internal/naming"
)

func TestResolver_TypeRef_Primitives(t *testing.T) {
	r := NewResolver(nil)

	want := map[lang.PrimitiveKind]string{
		lang.PrimitiveBool:     "bool",
		lang.PrimitiveInt16:    "int16",
		lang.PrimitiveInt32:    "int32",
		lang.PrimitiveInt64:    "int64",
		lang.PrimitiveFloat:    "float",
		lang.PrimitiveDouble:   "double",
		lang.PrimitiveString:   "string",
		lang.PrimitiveDatetime: "datetime",
	}

	for _, k := range lang.Primitives() {
		got, err := r.TypeRef(lang.Primitive(k))
		require.NoError(t, err)
		assert.Equal(t, want[k], got)
	}
}

func TestResolver_TypeRef(t *testing.T) {
	f := newFixture()
	r := NewResolver(nil)

	int32T := lang.Primitive(lang.PrimitiveInt32)
	stringT := lang.Primitive(lang.PrimitiveString)

	tests := []struct {
		name string
		typ  *lang.Type
		want string
	}{
		{"void", lang.Void(), "void"},
		{"list", lang.ListOf(int32T), "list<int32>"},
		{"set", lang.SetOf(stringT), "set<string>"},
		{"map", lang.MapOf(int32T, stringT), "map<int32, string>"},
		{"nested containers", lang.ListOf(lang.SetOf(int32T)), "list<set<int32>>"},
		{
			"deep nesting",
			lang.MapOf(stringT, lang.ListOf(lang.MapOf(lang.Primitive(lang.PrimitiveInt64), lang.SetOf(lang.Primitive(lang.PrimitiveBool))))),
			"map<string, list<map<int64, set<bool>>>>",
		},
		{"enum", lang.RefTo(f.sex), "pdef.example.Sex"},
		{"message", lang.RefTo(f.user), "pdef.example.User"},
		{"interface", lang.RefTo(f.users), "pdef.example.Users"},
		{"other module", lang.RefTo(f.group), "pdef.example.social.Group"},
		{"enum value", lang.EnumValueOf(f.sex, "MALE"), "pdef.example.Sex.MALE"},
		{"container of refs", lang.MapOf(lang.RefTo(f.sex), lang.ListOf(lang.RefTo(f.user))), "map<pdef.example.Sex, list<pdef.example.User>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.TypeRef(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_TypeRef_Mapped(t *testing.T) {
	f := newFixture()
	r := NewResolver(naming.NewMapper(
		[]naming.Rule{{From: "pdef.example", To: "io.example"}},
		[]naming.Rule{{From: "social", To: "S"}, {From: "pdef.example", To: "T"}},
	))

	tests := []struct {
		typ  *lang.Type
		want string
	}{
		{lang.RefTo(f.user), "io.example.TUser"},
		{lang.EnumValueOf(f.sex, "FEMALE"), "io.example.TSex.FEMALE"},
		// No rule for the nested module: its original name is kept.
		{lang.RefTo(f.group), "pdef.example.social.SGroup"},
		{lang.ListOf(lang.RefTo(f.group)), "list<pdef.example.social.SGroup>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := r.TypeRef(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "io.example", r.ModuleName(f.example))
	assert.Equal(t, "TUser", r.LocalName(f.user))
	assert.Equal(t, "io.example.TUser", r.DefinitionRef(f.user))

	value, err := r.EnumValueRef(f.sex, "MALE")
	require.NoError(t, err)
	assert.Equal(t, "io.example.TSex.MALE", value)
}

func TestResolver_TypeRef_MutualReferences(t *testing.T) {
	f := newFixture()
	r := NewResolver(nil)

	// User -> Group -> User: references stay flat.
	got, err := r.TypeRef(f.user.Fields[2].Type)
	require.NoError(t, err)
	assert.Equal(t, "list<pdef.example.social.Group>", got)

	got, err = r.TypeRef(f.group.Fields[0].Type)
	require.NoError(t, err)
	assert.Equal(t, "set<pdef.example.User>", got)
}

func TestResolver_TypeRef_Unsupported(t *testing.T) {
	f := newFixture()
	r := NewResolver(nil)

	tests := []struct {
		name string
		typ  *lang.Type
	}{
		{"nil", nil},
		{"zero kind", &lang.Type{}},
		{"unknown kind", &lang.Type{Kind: lang.TypeKind(100)}},
		{"invalid primitive", &lang.Type{Kind: lang.TypeKindPrimitive}},
		{"list without element", &lang.Type{Kind: lang.TypeKindList}},
		{"nested unknown", lang.ListOf(lang.MapOf(lang.Primitive(lang.PrimitiveInt32), &lang.Type{}))},
		{"map without key", &lang.Type{Kind: lang.TypeKindMap, Value: lang.Void()}},
		{"enum value without enum", &lang.Type{Kind: lang.TypeKindEnumValue, ValueName: "X"}},
		{"enum value of a message", lang.EnumValueOf(f.user, "X")},
		{"reference without definition", &lang.Type{Kind: lang.TypeKindDefinition}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.TypeRef(tt.typ)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedType))
			assert.Empty(t, got)
		})
	}
}

func TestResolver_Bool(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, "true", r.Bool(true))
	assert.Equal(t, "false", r.Bool(false))
}
