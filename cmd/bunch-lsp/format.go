package main

import (
	"context"
	"strings"

	"github.com/bunch-format/bunch/encode"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	formatted, err := encode.Serialize(doc.bunch, s.encOpts(params.Options)...)
	if err != nil {
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}

// encOpts takes the indent unit from the editor when it sends one.
func (s *Server) encOpts(fo protocol.FormattingOptions) []encode.EncodeOption {
	res := s.cfg.EncodeOptions()
	switch {
	case fo.InsertSpaces && fo.TabSize > 0:
		res = append(res, encode.EncodeIndent(strings.Repeat(" ", int(fo.TabSize))))
	case !fo.InsertSpaces && fo.TabSize > 0:
		res = append(res, encode.EncodeIndent("\t"))
	}
	return res
}
