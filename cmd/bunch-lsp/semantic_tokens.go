package main

import (
	"context"
	"strings"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/literal"
	"github.com/bunch-format/bunch/token"

	"go.lsp.dev/protocol"
)

// token type indices into legend.TokenTypes
const (
	tokComment uint32 = iota
	tokKeyword
	tokString
	tokNumber
	tokOperator
	tokProperty
)

var legend = protocol.SemanticTokensLegend{
	TokenTypes: []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
	},
	TokenModifiers: []protocol.SemanticTokenModifiers{},
}

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType uint32
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	toks := s.collectTokens(doc, 0, len(doc.lines))
	return &protocol.SemanticTokens{Data: encodeTokens(toks)}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	end := min(int(params.Range.End.Line)+1, len(doc.lines))
	toks := s.collectTokens(doc, int(params.Range.Start.Line), end)
	return &protocol.SemanticTokens{Data: encodeTokens(toks)}, nil
}

// collectTokens classifies lines [from, to) of doc. Tokens come out
// ordered by position.
func (s *Server) collectTokens(doc *document, from, to int) []tokenInfo {
	m := s.cfg.Markers
	var res []tokenInfo
	add := func(n int, raw string, off, length int, tt uint32) {
		if length <= 0 {
			return
		}
		res = append(res, tokenInfo{
			line:      uint32(n),
			character: uint32(utf16Len(raw[:off])),
			length:    uint32(utf16Len(raw[off : off+length])),
			tokenType: tt,
		})
	}
	for n := max(from, 0); n < to; n++ {
		ln := &doc.lines[n]
		raw := ln.Raw
		switch ln.Kind {
		case token.Ignored:
			body := strings.TrimRight(raw[len(ln.Indent):], " \t\r")
			if strings.HasPrefix(body, m.Comment) {
				add(n, raw, len(ln.Indent), len(body), tokComment)
			}
		case token.BlockHeader:
			add(n, raw, ln.KeyOff, len(ln.Key), tokProperty)
			add(n, raw, ln.MarkerOff, len(m.Block), tokOperator)
			if rest := strings.TrimRight(raw[ln.TextOff:], " \t\r"); strings.HasPrefix(rest, m.Comment) {
				add(n, raw, ln.TextOff, len(rest), tokComment)
			}
		case token.Assignment:
			add(n, raw, ln.KeyOff, len(ln.Key), tokProperty)
			add(n, raw, ln.MarkerOff, len(m.Assign), tokOperator)
			val, comment := splitComment(ln.Text, m.Comment)
			if tt, ok := valueTokenType(val); ok {
				add(n, raw, ln.TextOff, len(val), tt)
			}
			if comment != "" {
				add(n, raw, ln.TextOff+len(ln.Text)-len(comment), len(comment), tokComment)
			}
		}
	}
	return res
}

// splitComment separates a trailing comment from literal text. Comment
// markers inside quoted strings do not count.
func splitComment(text, marker string) (string, string) {
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0 && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case strings.HasPrefix(text[i:], marker):
			return strings.TrimRight(text[:i], " \t"), text[i:]
		}
	}
	return text, ""
}

func valueTokenType(text string) (uint32, bool) {
	if text == "" {
		return 0, false
	}
	v, err := literal.Eval(text)
	if err != nil {
		return 0, false
	}
	switch v.Type {
	case ir.NullType, ir.BoolType:
		return tokKeyword, true
	case ir.IntType, ir.FloatType:
		return tokNumber, true
	case ir.StringType:
		return tokString, true
	}
	return 0, false
}

// encodeTokens produces the relative line/character encoding of LSP
// semantic tokens.
func encodeTokens(toks []tokenInfo) []uint32 {
	data := make([]uint32, 0, 5*len(toks))
	var prevLine, prevChar uint32
	for _, ti := range toks {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		data = append(data, deltaLine, deltaChar, ti.length, ti.tokenType, 0)
		prevLine = ti.line
		prevChar = ti.character
	}
	return data
}
