package literal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bunch-format/bunch/ir"
)

// Eval evaluates text as a single literal. A bare comma separated sequence
// such as `1, 2` is a tuple. A comment may follow the value.
func Eval(text string, opts ...Option) (*ir.Value, error) {
	p := &parser{s: text, o: newOpts(opts)}
	p.skipSpace()
	if p.atEnd() {
		return nil, p.errf(ErrEmpty, "")
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.atEnd() && p.s[p.i] == ',' {
		vs := []*ir.Value{v}
		for !p.atEnd() && p.s[p.i] == ',' {
			p.i++
			p.skipSpace()
			if p.atEnd() {
				break
			}
			e, err := p.value()
			if err != nil {
				return nil, err
			}
			vs = append(vs, e)
			p.skipSpace()
		}
		v = ir.FromTuple(vs...)
	}
	if !p.atEnd() {
		return nil, p.unexpected()
	}
	return v, nil
}

type parser struct {
	s     string
	i     int
	depth int
	o     *evalOpts
}

func (p *parser) atEnd() bool {
	return p.i >= len(p.s)
}

func (p *parser) errf(kind error, format string, args ...any) error {
	return p.errAt(p.i, kind, format, args...)
}

func (p *parser) errAt(off int, kind error, format string, args ...any) error {
	err := kind
	if format != "" {
		err = fmt.Errorf("%w "+format, append([]any{kind}, args...)...)
	}
	return &Error{Offset: off, Err: err}
}

func (p *parser) unexpected() error {
	if p.atEnd() {
		return p.errf(ErrUnexpected, "end of input")
	}
	r, _ := utf8.DecodeRuneInString(p.s[p.i:])
	return p.errf(ErrUnexpected, "%q", r)
}

// skipSpace skips whitespace and a trailing comment.
func (p *parser) skipSpace() {
	for !p.atEnd() {
		r, sz := utf8.DecodeRuneInString(p.s[p.i:])
		if unicode.IsSpace(r) {
			p.i += sz
			continue
		}
		if p.o.comment != "" && strings.HasPrefix(p.s[p.i:], p.o.comment) {
			p.i = len(p.s)
		}
		return
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.o.maxDepth {
		return p.errf(ErrTooDeep, "(max %d)", p.o.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) value() (*ir.Value, error) {
	p.skipSpace()
	if p.atEnd() {
		return nil, p.unexpected()
	}
	c := p.s[p.i]
	switch {
	case c == '[':
		return p.list()
	case c == '(':
		return p.paren()
	case c == '{':
		return p.brace()
	case c == '"' || c == '\'':
		return p.str()
	case c == '+' || c == '-':
		return p.signed()
	case isDigit(c) || c == '.':
		return p.number("")
	case isNameStart(c):
		return p.name()
	default:
		return nil, p.unexpected()
	}
}

var keywords = map[string]func() *ir.Value{
	"true":  func() *ir.Value { return ir.FromBool(true) },
	"True":  func() *ir.Value { return ir.FromBool(true) },
	"false": func() *ir.Value { return ir.FromBool(false) },
	"False": func() *ir.Value { return ir.FromBool(false) },
	"null":  ir.Null,
	"None":  ir.Null,
}

func (p *parser) name() (*ir.Value, error) {
	start := p.i
	for !p.atEnd() && isNameChar(p.s[p.i]) {
		p.i++
	}
	word := p.s[start:p.i]
	mk, ok := keywords[word]
	if !ok {
		return nil, p.errAt(start, ErrUnexpected, "name %q", word)
	}
	return mk(), nil
}

func (p *parser) signed() (*ir.Value, error) {
	sign := p.s[p.i : p.i+1]
	p.i++
	p.skipSpace()
	if p.atEnd() || !(isDigit(p.s[p.i]) || p.s[p.i] == '.') {
		return nil, p.unexpected()
	}
	return p.number(sign)
}

func (p *parser) list() (*ir.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.i++
	vs, _, err := p.seq(']')
	if err != nil {
		return nil, err
	}
	return ir.FromList(vs...), nil
}

// paren parses a tuple, or a parenthesized single value.
func (p *parser) paren() (*ir.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.i++
	vs, comma, err := p.seq(')')
	if err != nil {
		return nil, err
	}
	if len(vs) == 1 && !comma {
		return vs[0], nil
	}
	return ir.FromTuple(vs...), nil
}

// seq parses comma separated values up to and including close. It reports
// whether any comma was seen.
func (p *parser) seq(close byte) ([]*ir.Value, bool, error) {
	vs := []*ir.Value{}
	comma := false
	for {
		p.skipSpace()
		if p.atEnd() {
			return nil, false, p.errf(ErrUnterminated, "%q", close)
		}
		if p.s[p.i] == close {
			p.i++
			return vs, comma, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, false, err
		}
		vs = append(vs, v)
		p.skipSpace()
		if p.atEnd() {
			return nil, false, p.errf(ErrUnterminated, "%q", close)
		}
		switch p.s[p.i] {
		case ',':
			p.i++
			comma = true
		case close:
		default:
			return nil, false, p.unexpected()
		}
	}
}

// brace parses a map or a non-empty set. `{}` is the empty map.
func (p *parser) brace() (*ir.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.i++
	p.skipSpace()
	if !p.atEnd() && p.s[p.i] == '}' {
		p.i++
		return ir.FromKeyVals(nil), nil
	}
	first, err := p.hashable()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.atEnd() && p.s[p.i] == ':' {
		return p.mapRest(first)
	}
	return p.setRest(first)
}

func (p *parser) hashable() (*ir.Value, error) {
	p.skipSpace()
	off := p.i
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	if !ir.Hashable(v) {
		return nil, p.errAt(off, ErrUnhashable, "%s", v.Type)
	}
	return v, nil
}

func (p *parser) mapRest(key *ir.Value) (*ir.Value, error) {
	var kvs []ir.KeyVal
	for {
		// at ':'
		p.i++
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		p.skipSpace()
		if p.atEnd() {
			return nil, p.errf(ErrUnterminated, "'}'")
		}
		switch p.s[p.i] {
		case '}':
			p.i++
			return ir.FromKeyVals(kvs), nil
		case ',':
			p.i++
		default:
			return nil, p.unexpected()
		}
		p.skipSpace()
		if p.atEnd() {
			return nil, p.errf(ErrUnterminated, "'}'")
		}
		if p.s[p.i] == '}' {
			p.i++
			return ir.FromKeyVals(kvs), nil
		}
		key, err = p.hashable()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.atEnd() || p.s[p.i] != ':' {
			return nil, p.unexpected()
		}
	}
}

func (p *parser) setRest(first *ir.Value) (*ir.Value, error) {
	elems := []*ir.Value{first}
	for {
		p.skipSpace()
		if p.atEnd() {
			return nil, p.errf(ErrUnterminated, "'}'")
		}
		switch p.s[p.i] {
		case '}':
			p.i++
			return ir.FromSet(elems...), nil
		case ',':
			p.i++
		default:
			return nil, p.unexpected()
		}
		p.skipSpace()
		if !p.atEnd() && p.s[p.i] == '}' {
			continue
		}
		e, err := p.hashable()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c >= utf8.RuneSelf
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c)
}
