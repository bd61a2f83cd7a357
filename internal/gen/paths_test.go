package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pdef-example-generator/internal/lang"
	"pdef-example-generator/internal/naming"
)

func TestPaths(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name       string
		mapper     *naming.Mapper
		def        *lang.Definition
		wantDef    string
		wantModule string
	}{
		{
			name:       "identity",
			mapper:     &naming.Mapper{},
			def:        f.sex,
			wantDef:    "pdef/example/Sex.json",
			wantModule: "pdef/example.json",
		},
		{
			name:       "nil mapper",
			def:        f.group,
			wantDef:    "pdef/example/social/Group.json",
			wantModule: "pdef/example/social.json",
		},
		{
			name:       "module renamed",
			mapper:     naming.NewMapper([]naming.Rule{{From: "pdef.example", To: "io.sample.api"}}, nil),
			def:        f.user,
			wantDef:    "io/sample/api/User.json",
			wantModule: "io/sample/api.json",
		},
		{
			name:       "namespace prefix",
			mapper:     naming.NewMapper(nil, []naming.Rule{{From: "pdef.example", To: "T"}}),
			def:        f.users,
			wantDef:    "pdef/example/TUsers.json",
			wantModule: "pdef/example.json",
		},
		{
			name:       "renamed to a single segment",
			mapper:     naming.NewMapper([]naming.Rule{{From: "pdef.example.social", To: "social"}}, []naming.Rule{{From: "social", To: "S"}}),
			def:        f.group,
			wantDef:    "social/SGroup.json",
			wantModule: "social.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDef, DefinitionPath(tt.mapper, tt.def))
			assert.Equal(t, tt.wantModule, ModulePath(tt.mapper, tt.def.Module))

			r := NewResolver(tt.mapper)
			assert.Equal(t, tt.wantDef, r.DefinitionPath(tt.def))
			assert.Equal(t, tt.wantModule, r.ModulePath(tt.def.Module))
		})
	}
}
