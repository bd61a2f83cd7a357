package gen

import (
	"pdef-example-generator/internal/lang"
)

// fixture builds the pdef example schema:
//
//	module pdef.example: enum Sex, message User, interface Users
//	module pdef.example.social: message Group
type fixture struct {
	pkg     *lang.Package
	example *lang.Module
	social  *lang.Module
	sex     *lang.Definition
	user    *lang.Definition
	users   *lang.Definition
	group   *lang.Definition
}

func newFixture() *fixture {
	f := &fixture{}

	f.example = &lang.Module{Name: "pdef.example"}
	f.social = &lang.Module{Name: "pdef.example.social"}

	f.sex = &lang.Definition{
		Kind:      lang.DefinitionEnum,
		Name:      "Sex",
		Namespace: "pdef.example",
		Module:    f.example,
		Values:    []string{"MALE", "FEMALE"},
	}

	f.user = &lang.Definition{
		Kind:      lang.DefinitionMessage,
		Name:      "User",
		Namespace: "pdef.example",
		Module:    f.example,
	}

	f.users = &lang.Definition{
		Kind:      lang.DefinitionInterface,
		Name:      "Users",
		Namespace: "pdef.example",
		Module:    f.example,
	}

	f.group = &lang.Definition{
		Kind:      lang.DefinitionMessage,
		Name:      "Group",
		Namespace: "social",
		Module:    f.social,
	}

	f.user.Fields = []*lang.Field{
		{Name: "id", Type: lang.Primitive(lang.PrimitiveInt64)},
		{Name: "sex", Type: lang.RefTo(f.sex), IsDiscriminator: true},
		{Name: "groups", Type: lang.ListOf(lang.RefTo(f.group))},
	}

	f.group.Fields = []*lang.Field{
		{Name: "members", Type: lang.SetOf(lang.RefTo(f.user))},
	}

	f.users.Methods = []*lang.Method{
		{
			Name:   "find",
			Args:   []*lang.Argument{{Name: "id", Type: lang.Primitive(lang.PrimitiveInt64)}},
			Result: lang.RefTo(f.user),
		},
	}

	f.example.Definitions = []*lang.Definition{f.sex, f.user, f.users}
	f.social.Definitions = []*lang.Definition{f.group}

	f.pkg = &lang.Package{Name: "example", Modules: []*lang.Module{f.example, f.social}}

	return f
}
