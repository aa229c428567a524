package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return nil, nil
	}

	line := int(params.Position.Line)
	path, e := findEntryAt(doc.tree, doc.positions, line, doc.lines.byteCol(params.Position))
	if e == nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(path, e),
		},
	}, nil
}

// findEntryAt returns the entry whose key starts closest before the byte
// column col on line, along with its key path.
func findEntryAt(root *ir.Tree, positions parse.Positions, line, col int) ([]string, *ir.Entry) {
	var (
		bestPath []string
		best     *ir.Entry
		bestCol  = -1
	)
	var visit func(t *ir.Tree, prefix []string)
	visit = func(t *ir.Tree, prefix []string) {
		poss := positions[t]
		for i, e := range t.All() {
			if e.IsTombstone() {
				continue
			}
			path := append(prefix[:len(prefix):len(prefix)], e.Key)
			if i < len(poss) && poss[i] != nil {
				l, c := poss[i].LineCol()
				if l == line && c <= col && c > bestCol {
					best, bestPath, bestCol = e, path, c
				}
			}
			if e.IsTree() {
				visit(e.Value.Tree, path)
			}
		}
	}
	visit(root, nil)
	return bestPath, best
}

func buildHoverText(path []string, e *ir.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Path:** `%s`\n\n", strings.Join(path, "."))
	fmt.Fprintf(&b, "**Type:** %s\n\n", e.Value.Type)
	if e.IsLeaf() {
		fmt.Fprintf(&b, "**Value:** `%q`\n", e.Value.String)
		return b.String()
	}
	fmt.Fprintf(&b, "**Entries:** %d\n", e.Value.Tree.Len())
	return b.String()
}
