package main

import (
	"context"
	"errors"

	"github.com/bunch-format/bunch/parse"

	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: validateDocument(doc),
	})
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "bunch",
	}
	var pe *parse.Error
	if errors.As(doc.err, &pe) {
		ln := uint32(pe.Line - 1)
		start := utf16Len(pe.Text[:min(pe.Col, len(pe.Text))])
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{Line: ln, Character: uint32(start)},
			End:   protocol.Position{Line: ln, Character: uint32(utf16Len(pe.Text))},
		}
		diagnostic.Message = pe.Kind.Error()
		if pe.Err != nil {
			diagnostic.Message += ": " + pe.Err.Error()
		}
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	doc = s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

// applyChanges applies full-content changes; the server syncs whole
// documents.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		content = change.Text
	}
	return content
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
