package lang

import (
	"github.com/cockroachdb/errors"
)

// typeNode is an unresolved type expression: a name with optional type arguments.
type typeNode struct {
	name string
	args []*typeNode
}

// parseTypeString parses strings such as "map<int32, list<pdef.example.User>>".
func parseTypeString(s string) (*typeNode, error) {
	p := &typeParser{src: s}

	node, err := p.parse()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if p.pos != len(p.src) {
		return nil, errors.Newf("unexpected %q at offset %d", p.src[p.pos:], p.pos)
	}

	return node, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) parse() (*typeNode, error) {
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}

	if start == p.pos {
		return nil, errors.Newf("expected a type name at offset %d", start)
	}

	node := &typeNode{name: p.src[start:p.pos]}

	p.skipSpace()

	if p.pos >= len(p.src) || p.src[p.pos] != '<' {
		return node, nil
	}

	p.pos++

	for {
		arg, err := p.parse()
		if err != nil {
			return nil, err
		}

		node.args = append(node.args, arg)

		p.skipSpace()

		if p.pos >= len(p.src) {
			return nil, errors.Newf("unterminated %s<", node.name)
		}

		switch p.src[p.pos] {
		case ',':
			p.pos++
		case '>':
			p.pos++
			return node, nil
		default:
			return nil, errors.Newf("unexpected %q at offset %d", p.src[p.pos:p.pos+1], p.pos)
		}
	}
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func isNameByte(c byte) bool {
	return c == '_' || c == '.' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
