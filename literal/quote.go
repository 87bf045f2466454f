package literal

import (
	"encoding/hex"
	"unicode"
	"unicode/utf8"

	"github.com/bunch-format/bunch/ir"
)

// str parses one or more adjacent quoted strings.
func (p *parser) str() (*ir.Value, error) {
	var buf []byte
	for {
		var err error
		buf, err = p.quoted(buf)
		if err != nil {
			return nil, err
		}
		save := p.i
		p.skipSpace()
		if p.atEnd() || (p.s[p.i] != '"' && p.s[p.i] != '\'') {
			p.i = save
			return ir.FromString(string(buf)), nil
		}
	}
}

func (p *parser) quoted(dst []byte) ([]byte, error) {
	start := p.i
	q := p.s[p.i]
	p.i++
	for {
		if p.atEnd() {
			return nil, p.errAt(start, ErrUnterminated, "string")
		}
		c := p.s[p.i]
		switch c {
		case q:
			p.i++
			return dst, nil
		case '\\':
			var err error
			dst, err = p.escape(dst)
			if err != nil {
				return nil, err
			}
		default:
			r, n := utf8.DecodeRuneInString(p.s[p.i:])
			if r == utf8.RuneError && n == 1 {
				return nil, p.errAt(p.i, ErrEncoding, "byte %#x", c)
			}
			dst = append(dst, p.s[p.i:p.i+n]...)
			p.i += n
		}
	}
}

func (p *parser) escape(dst []byte) ([]byte, error) {
	start := p.i
	p.i++
	if p.atEnd() {
		return nil, p.errAt(start, ErrUnterminated, "string")
	}
	c := p.s[p.i]
	p.i++
	switch c {
	case '\\', '\'', '"':
		return append(dst, c), nil
	case 'a':
		return append(dst, '\a'), nil
	case 'b':
		return append(dst, '\b'), nil
	case 'f':
		return append(dst, '\f'), nil
	case 'n':
		return append(dst, '\n'), nil
	case 'r':
		return append(dst, '\r'), nil
	case 't':
		return append(dst, '\t'), nil
	case 'v':
		return append(dst, '\v'), nil
	case '0', '1', '2', '3', '4', '5', '6', '7':
		r := rune(c - '0')
		for n := 1; n < 3 && !p.atEnd() && '0' <= p.s[p.i] && p.s[p.i] <= '7'; n++ {
			r = r*8 + rune(p.s[p.i]-'0')
			p.i++
		}
		return utf8.AppendRune(dst, r), nil
	case 'x':
		return p.hexRune(dst, start, 2)
	case 'u':
		return p.hexRune(dst, start, 4)
	case 'U':
		return p.hexRune(dst, start, 8)
	}
	return nil, p.errAt(start, ErrBadEscape, "%q", p.s[start:p.i])
}

func (p *parser) hexRune(dst []byte, start, n int) ([]byte, error) {
	if p.i+n > len(p.s) {
		return nil, p.errAt(start, ErrBadEscape, "%q", p.s[start:])
	}
	var r rune
	for _, c := range []byte(p.s[p.i : p.i+n]) {
		if !isHexDigit(c) {
			return nil, p.errAt(start, ErrBadEscape, "%q", p.s[start:p.i+n])
		}
		r = r*16 + rune(hexVal(c))
	}
	p.i += n
	if !utf8.ValidRune(r) {
		return nil, p.errAt(start, ErrBadEscape, "%q is not a valid code point", p.s[start:p.i])
	}
	return utf8.AppendRune(dst, r), nil
}

func hexVal(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// Quote renders s as a string literal. Double quotes are used unless s
// contains more double quotes than single quotes. Control characters are
// escaped, so the result is always a single line.
func Quote(s string) string {
	ndq, nsq := 0, 0
	for _, r := range s {
		switch r {
		case '"':
			ndq++
		case '\'':
			nsq++
		}
	}
	q := byte('"')
	if ndq > nsq {
		q = '\''
	}
	d := make([]byte, 1, len(s)+2)
	d[0] = q
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range s {
		switch r {
		case rune(q):
			d = append(d, '\\', q)
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(append(d, q))
}
