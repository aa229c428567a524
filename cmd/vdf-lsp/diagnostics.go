package main

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/parse"
	"github.com/signadot/go-vdf/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	toks      []token.Token
	tree      *ir.Tree
	positions parse.Positions
	lines     *lineIndex
	err       error
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		positions: parse.Positions{},
		lines:     newLineIndex(content),
	}
	toks, err := token.Tokenize(nil, []byte(content))
	doc.toks = toks
	if err != nil {
		doc.err = err
		return doc
	}
	tree, err := parse.ParseTokens(toks, parse.ParsePositions(doc.positions))
	if err != nil {
		doc.err = err
		return doc
	}
	doc.tree = tree
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	off := errorOffset(doc.err)
	_, n := utf8.DecodeRuneInString(doc.content[min(off, len(doc.content)):])
	return append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: doc.lines.position(off),
			End:   doc.lines.position(off + n),
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  err2msg(doc.err),
		Source:   lsName,
	})
}

// errorOffset locates err in the document, or returns 0 when it carries
// no position.
func errorOffset(err error) int {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return te.Pos.I
	}
	var pe *parse.ParseErr
	if errors.As(err, &pe) && pe.Tok != nil && pe.Tok.Pos != nil {
		return pe.Tok.Pos.I
	}
	return 0
}

// err2msg drops position details, the diagnostic range carries them.
func err2msg(err error) string {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return te.Err.Error()
	}
	var pe *parse.ParseErr
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// DidChange replaces the document with the last change; the server
// asks for full document sync.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
