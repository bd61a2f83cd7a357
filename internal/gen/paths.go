package gen

import (
	"strings"

	"pdef-example-generator/internal/lang"
	"pdef-example-generator/internal/naming"
)

// artifactExt is a naming convention; the content is not guaranteed to be JSON.
const artifactExt = ".json"

// ModuleDirectory returns the mapped module name with dots turned into slashes.
func ModuleDirectory(mapper *naming.Mapper, module *lang.Module) string {
	return strings.ReplaceAll(mapper.ResolveModuleName(module.Name), ".", "/")
}

// DefinitionPath returns "<module dir>/<prefix><name>.json".
func DefinitionPath(mapper *naming.Mapper, def *lang.Definition) string {
	return ModuleDirectory(mapper, def.Module) + "/" + mapper.LocalName(def) + artifactExt
}

// ModulePath returns "<module dir>.json".
func ModulePath(mapper *naming.Mapper, module *lang.Module) string {
	return ModuleDirectory(mapper, module) + artifactExt
}

// DefinitionPath returns the artifact path of def under the resolver's rules.
func (r *Resolver) DefinitionPath(def *lang.Definition) string {
	return DefinitionPath(r.mapper, def)
}

// ModulePath returns the artifact path of module under the resolver's rules.
func (r *Resolver) ModulePath(module *lang.Module) string {
	return ModulePath(r.mapper, module)
}
