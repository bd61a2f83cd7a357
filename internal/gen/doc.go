// Package gen turns a linked schema package into example artifacts.
//
// It has three parts:
//   - Resolver renders type expressions to canonical references such as
//     "map<int32, pdef.example.User>" or "pdef.example.Sex.MALE", applying
//     module renaming and namespace prefixes from a naming.Mapper.
//   - DefinitionPath / ModulePath derive slash-separated artifact paths
//     ("pdef/example/Sex.json", "pdef/example.json").
//   - Generator walks modules and definitions in input order, renders each
//     through a Renderer and hands the result to a Sink.
//
// Definition references render to a flat dotted name and never expand the
// referenced members, so schemas with mutually recursive messages need no
// cycle tracking here.
package gen
