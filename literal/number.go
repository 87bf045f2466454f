package literal

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/bunch-format/bunch/ir"
)

func (p *parser) number(sign string) (*ir.Value, error) {
	start := p.i
	text, isFloat := p.scanNumber()
	if !p.atEnd() && (isNameChar(p.s[p.i]) || p.s[p.i] == '.') {
		for !p.atEnd() && (isNameChar(p.s[p.i]) || p.s[p.i] == '.') {
			p.i++
		}
		return nil, p.errAt(start, ErrNumber, "%q", p.s[start:p.i])
	}
	if isFloat {
		return p.floatLit(start, sign, text)
	}
	return p.intLit(start, sign, text)
}

// scanNumber consumes the longest numeric prefix and reports whether it has
// a fraction or an exponent.
func (p *parser) scanNumber() (string, bool) {
	start := p.i
	if p.hasRadixPrefix() {
		p.i += 2
		for !p.atEnd() && (isHexDigit(p.s[p.i]) || p.s[p.i] == '_') {
			p.i++
		}
		return p.s[start:p.i], false
	}
	isFloat := false
	p.digits()
	if !p.atEnd() && p.s[p.i] == '.' {
		isFloat = true
		p.i++
		p.digits()
	}
	if !p.atEnd() && (p.s[p.i] == 'e' || p.s[p.i] == 'E') {
		isFloat = true
		p.i++
		if !p.atEnd() && (p.s[p.i] == '+' || p.s[p.i] == '-') {
			p.i++
		}
		p.digits()
	}
	return p.s[start:p.i], isFloat
}

func (p *parser) digits() {
	for !p.atEnd() && (isDigit(p.s[p.i]) || p.s[p.i] == '_') {
		p.i++
	}
}

func (p *parser) hasRadixPrefix() bool {
	if p.i+1 >= len(p.s) || p.s[p.i] != '0' {
		return false
	}
	switch p.s[p.i+1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func (p *parser) intLit(start int, sign, text string) (*ir.Value, error) {
	base := 10
	digits := text
	if len(text) > 1 && text[0] == '0' && !isDigit(text[1]) && text[1] != '_' {
		// 0x, 0o or 0b; strconv checks the digits and separators
		base = 0
	} else {
		if !separatorsOK(text) {
			return nil, p.errAt(start, ErrNumber, "%q", text)
		}
		digits = strings.ReplaceAll(text, "_", "")
		if len(digits) > 1 && digits[0] == '0' && strings.Trim(digits, "0") != "" {
			return nil, p.errAt(start, ErrNumber, "%q has a leading zero", text)
		}
	}
	i, err := strconv.ParseInt(sign+digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, p.errAt(start, ErrRange, "%s%s", sign, text)
		}
		return nil, p.errAt(start, ErrNumber, "%q", text)
	}
	return ir.FromInt(i), nil
}

func (p *parser) floatLit(start int, sign, text string) (*ir.Value, error) {
	mant := text
	if i := strings.IndexAny(text, "eE"); i != -1 {
		mant = text[:i]
		exp := strings.TrimLeft(text[i+1:], "+-")
		if exp == "" || !separatorsOK(exp) {
			return nil, p.errAt(start, ErrNumber, "%q", text)
		}
	}
	if strings.Trim(mant, "._") == "" {
		return nil, p.errAt(start, ErrNumber, "%q", text)
	}
	for _, part := range strings.SplitN(mant, ".", 2) {
		if part != "" && !separatorsOK(part) {
			return nil, p.errAt(start, ErrNumber, "%q", text)
		}
	}
	f, err := strconv.ParseFloat(sign+strings.ReplaceAll(text, "_", ""), 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, p.errAt(start, ErrRange, "%s%s", sign, text)
	}
	return ir.FromFloat(f), nil
}

// separatorsOK reports whether every '_' in a digit run sits between two
// digits.
func separatorsOK(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
