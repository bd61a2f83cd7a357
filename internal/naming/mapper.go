// Package naming maps schema module names and namespaces to the names used in
// generated output.
package naming

import (
	"strings"

	"github.com/cockroachdb/errors"

	"pdef-example-generator/internal/lang"
)

// ErrInvalidRule is returned for mapping rules that are not "from:to" pairs.
var ErrInvalidRule = errors.New("invalid mapping rule")

// Rule is a single exact-match mapping.
type Rule struct {
	From string
	To   string
}

// String returns the rule in its "from:to" form.
func (r Rule) String() string {
	return r.From + ":" + r.To
}

// ParseRule parses a "from:to" pair. The source must be non-empty; the target
// may be empty, which for prefix rules means no prefix.
func ParseRule(s string) (Rule, error) {
	from, to, ok := strings.Cut(s, ":")
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if !ok || from == "" {
		return Rule{}, errors.WithHint(
			errors.Mark(errors.Newf("invalid mapping rule %q", s), ErrInvalidRule),
			`rules are written as "from:to", e.g. "pdef.example:io.example"`)
	}

	return Rule{From: from, To: to}, nil
}

// ParseRules parses each "from:to" pair, keeping their order.
func ParseRules(specs []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for _, s := range specs {
		r, err := ParseRule(s)
		if err != nil {
			return nil, err
		}

		rules = append(rules, r)
	}

	return rules, nil
}

// ParseModuleRules parses module renaming rules. Unlike prefix rules, a
// module rule needs a target: an empty module name has no directory.
func ParseModuleRules(specs []string) ([]Rule, error) {
	rules, err := ParseRules(specs)
	if err != nil {
		return nil, err
	}

	for _, r := range rules {
		if r.To == "" {
			return nil, errors.WithHint(
				errors.Mark(errors.Newf("module rule %q has an empty target", r.String()), ErrInvalidRule),
				`rename to a dotted module name, e.g. "pdef.example:io.example"`)
		}
	}

	return rules, nil
}

// Mapper resolves module names and namespace prefixes. Lookups are exact
// matches and the first matching rule wins. The zero value and a nil
// *Mapper map nothing.
type Mapper struct {
	modules  []Rule
	prefixes []Rule
}

// NewMapper returns a Mapper over module renaming rules and namespace prefix rules.
func NewMapper(modules, prefixes []Rule) *Mapper {
	return &Mapper{
		modules:  append([]Rule(nil), modules...),
		prefixes: append([]Rule(nil), prefixes...),
	}
}

// ModuleRules returns a copy of the module renaming rules.
func (m *Mapper) ModuleRules() []Rule {
	return append([]Rule(nil), m.modules...)
}

// PrefixRules returns a copy of the namespace prefix rules.
func (m *Mapper) PrefixRules() []Rule {
	return append([]Rule(nil), m.prefixes...)
}

// ResolveModuleName returns the mapped module name, or fullname when no rule matches.
func (m *Mapper) ResolveModuleName(fullname string) string {
	if m == nil {
		return fullname
	}

	if to, ok := lookup(m.modules, fullname); ok {
		return to
	}

	return fullname
}

// ResolvePrefix returns the name prefix configured for a namespace, or "".
func (m *Mapper) ResolvePrefix(namespace string) string {
	if m == nil {
		return ""
	}

	to, _ := lookup(m.prefixes, namespace)
	return to
}

// LocalName returns the prefixed definition name without its module.
func (m *Mapper) LocalName(def *lang.Definition) string {
	return m.ResolvePrefix(def.Namespace) + def.Name
}

func lookup(rules []Rule, key string) (string, bool) {
	for _, r := range rules {
		if r.From == key {
			return r.To, true
		}
	}

	return "", false
}
