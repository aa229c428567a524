package main

import (
	"context"

	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return nil, nil
	}
	syms := documentSymbols(doc.tree, doc.positions, doc.lines)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

func documentSymbols(t *ir.Tree, positions parse.Positions, lines *lineIndex) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	poss := positions[t]
	for i, e := range t.All() {
		if e.IsTombstone() {
			continue
		}
		sym := protocol.DocumentSymbol{
			Name: e.Key,
			Kind: protocol.SymbolKindString,
		}
		if e.Key == "" {
			sym.Name = `""`
		}
		if i < len(poss) && poss[i] != nil {
			off := poss[i].I
			r := protocol.Range{
				Start: lines.position(off),
				End:   lines.position(off + len(e.Key)),
			}
			sym.Range, sym.SelectionRange = r, r
		}
		if e.IsTree() {
			sym.Kind = protocol.SymbolKindObject
			sym.Children = documentSymbols(e.Value.Tree, positions, lines)
		} else {
			sym.Detail = e.Value.String
		}
		res = append(res, sym)
	}
	return res
}
