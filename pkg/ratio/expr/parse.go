package expr

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse reads an expression in prefix syntax:
//
//	x
//	implies(p, q)
//	equals(add(x, 0), x)
//
// Atom names are identifiers ([A-Za-z_][A-Za-z0-9_]*) or numeric
// literals. Whitespace between tokens is ignored.
func Parse(s string) (Expr, error) {
	p := &parser{input: s}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("parse %q: trailing input at offset %d", s, p.pos)
	}
	return e, nil
}

// MustParse is Parse for literals known to be well formed; it panics on
// error. Intended for tests and examples.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *parser) parseExpr() (Expr, error) {
	p.skipSpace()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != '(' {
		return A(name), nil
	}
	p.pos++ // consume '('
	var args []Expr
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == ')' {
		p.pos++
		return C(name), nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("parse %q: unterminated argument list", p.input)
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return C(name, args...), nil
		default:
			return nil, fmt.Errorf("parse %q: unexpected %q at offset %d", p.input, p.input[p.pos], p.pos)
		}
	}
}

func (p *parser) parseName() (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		ch := rune(p.input[p.pos])
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '.' || ch == '-' {
			p.pos++
			continue
		}
		break
	}
	name := strings.TrimSpace(p.input[start:p.pos])
	if name == "" {
		return "", fmt.Errorf("parse %q: expected name at offset %d", p.input, start)
	}
	return name, nil
}
