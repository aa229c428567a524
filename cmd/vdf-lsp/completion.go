package main

import (
	"context"

	"github.com/signadot/go-vdf/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return &protocol.CompletionList{IsIncomplete: false}, nil
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        keyCompletions(doc.tree),
	}, nil
}

// keyCompletions offers every key used in the document, in order of first
// appearance.
func keyCompletions(t *ir.Tree) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	seen := map[string]bool{}
	t.Walk(func(path []string, e *ir.Entry) bool {
		if seen[e.Key] {
			return true
		}
		seen[e.Key] = true
		item := protocol.CompletionItem{
			Label: e.Key,
			Kind:  protocol.CompletionItemKindProperty,
		}
		if e.IsTree() {
			item.Detail = "subtree"
		} else {
			item.Detail = "leaf"
		}
		items = append(items, item)
		return true
	})
	return items
}
