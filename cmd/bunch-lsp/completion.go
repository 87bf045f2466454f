package main

import (
	"context"

	"github.com/bunch-format/bunch/token"

	"go.lsp.dev/protocol"
)

var keywords = []struct {
	label, detail string
}{
	{"true", "boolean"},
	{"false", "boolean"},
	{"null", "null"},
	{"True", "boolean"},
	{"False", "boolean"},
	{"None", "null"},
}

// Completion offers literal keywords in value position, that is after the
// assignment marker.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	res := &protocol.CompletionList{Items: []protocol.CompletionItem{}}
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return res, nil
	}
	ln := doc.line(int(params.Position.Line))
	if ln == nil || !inValue(ln, byteOffset(ln.Raw, int(params.Position.Character)), s.cfg.Markers) {
		return res, nil
	}
	for _, kw := range keywords {
		res.Items = append(res.Items, protocol.CompletionItem{
			Label:  kw.label,
			Kind:   protocol.CompletionItemKindKeyword,
			Detail: kw.detail,
		})
	}
	return res, nil
}

func inValue(ln *token.Line, off int, m token.Markers) bool {
	return ln.Kind == token.Assignment && off >= ln.MarkerOff+len(m.Assign)
}
