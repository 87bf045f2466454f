package parse

import (
	"errors"
	"slices"
	"strings"

	"github.com/bunch-format/bunch/debug"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/literal"
	"github.com/bunch-format/bunch/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Bunch, error) {
	pOpts := newParseOpts(opts)
	if err := pOpts.markers.Validate(); err != nil {
		return nil, err
	}
	p := &parser{
		lines: token.ClassifyAll(d, pOpts.markers),
		opts:  pOpts,
		lits:  pOpts.literalOpts(),
	}
	res, _, err := p.body(0, "", nil)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Bunch, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	lines []token.Line
	opts  *parseOpts
	lits  []literal.Option
}

func (p *parser) skip(i int) int {
	for i < len(p.lines) && p.lines[i].Kind == token.Ignored {
		i++
	}
	return i
}

// body parses the lines of a block whose indentation is indent, starting
// at line index i. It returns at the end of input or at the first line
// whose indentation is a proper prefix of indent.
func (p *parser) body(i int, indent string, path []string) (*ir.Bunch, int, error) {
	res := ir.NewBunchOrder(p.opts.order)
	for {
		i = p.skip(i)
		if i == len(p.lines) {
			return res, i, nil
		}
		ln := &p.lines[i]
		if ln.Indent != indent {
			if len(ln.Indent) < len(indent) && strings.HasPrefix(indent, ln.Indent) {
				return res, i, nil
			}
			return nil, i, p.errAt(ErrIndentation, ln, 0, nil)
		}
		if debug.Parse() {
			debug.Logf("parse: line %d %s %q in %q\n", ln.Num, ln.Kind, ln.Key, ir.JoinPath(path))
		}
		switch ln.Kind {
		case token.Malformed:
			return nil, i, p.errAt(ErrSyntax, ln, len(ln.Indent), ln.Err)
		case token.Assignment:
			v, err := literal.Eval(ln.Text, p.lits...)
			if err != nil {
				col := ln.TextOff
				var le *literal.Error
				if errors.As(err, &le) {
					col += le.Offset
				}
				return nil, i, p.errAt(ErrLiteral, ln, col, err)
			}
			p.track(ln, path)
			res.Set(ln.Key, v)
			i++
		case token.BlockHeader:
			p.track(ln, path)
			sub, next, err := p.block(i+1, indent, append(slices.Clip(path), ln.Key))
			if err != nil {
				return nil, next, err
			}
			res.SetBunch(ln.Key, sub)
			i = next
		}
	}
}

// block parses the body of a block header whose own indentation is
// parentIndent. The body is empty unless the next meaningful line extends
// parentIndent.
func (p *parser) block(i int, parentIndent string, path []string) (*ir.Bunch, int, error) {
	j := p.skip(i)
	if j < len(p.lines) {
		indent := p.lines[j].Indent
		if len(indent) > len(parentIndent) && strings.HasPrefix(indent, parentIndent) {
			return p.body(j, indent, path)
		}
	}
	return ir.NewBunchOrder(p.opts.order), j, nil
}

func (p *parser) track(ln *token.Line, path []string) {
	if p.opts.paths == nil {
		return
	}
	p.opts.paths[ln.Num] = append(slices.Clone(path), ln.Key)
}

func (p *parser) errAt(kind error, ln *token.Line, col int, cause error) error {
	return &Error{
		Kind: kind,
		File: p.opts.filename,
		Line: ln.Num,
		Col:  col,
		Text: ln.Raw,
		Err:  cause,
	}
}
