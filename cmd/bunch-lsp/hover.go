package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/literal"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	path, ok := doc.paths[int(params.Position.Line)+1]
	if !ok {
		return nil, nil
	}
	v, err := doc.bunch.GetIn(path...)
	if err != nil {
		// a later definition replaced this one
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(path, v),
		},
	}, nil
}

func buildHoverText(path []string, v *ir.Value) string {
	parts := []string{
		fmt.Sprintf("**Path:** `%s`", ir.JoinPath(path)),
		fmt.Sprintf("**Type:** %s", v.Type),
	}
	if info := getValueInfo(v); info != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", info))
	}
	return strings.Join(parts, "\n\n")
}

func getValueInfo(v *ir.Value) string {
	switch v.Type {
	case ir.BunchType:
		return fmt.Sprintf("block with %d keys", v.Bunch.Len())
	case ir.ListType, ir.TupleType, ir.SetType:
		return fmt.Sprintf("%s with %d elements", v.Type, len(v.Values))
	case ir.MapType:
		return fmt.Sprintf("map with %d keys", len(v.Keys))
	}
	s, err := literal.Format(v)
	if err != nil {
		return ""
	}
	if len(s) > 50 {
		s = s[:50] + "..."
	}
	return "`" + s + "`"
}
