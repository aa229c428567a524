package main

import (
	"bytes"
	"context"

	"github.com/signadot/go-vdf/encode"
	"github.com/signadot/go-vdf/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return nil, nil
	}
	// the encoder does not write comments
	for i := range doc.toks {
		if doc.toks[i].Type == token.TComment {
			return nil, nil
		}
	}

	var buf bytes.Buffer
	if err := encode.Encode(doc.tree, &buf); err != nil {
		return nil, nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   doc.lines.position(len(doc.content)),
			},
			NewText: formatted,
		},
	}, nil
}
