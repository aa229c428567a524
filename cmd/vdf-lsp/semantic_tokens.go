package main

import (
	"bytes"
	"context"

	"github.com/signadot/go-vdf/token"
	"go.lsp.dev/protocol"
)

// semanticTokenTypes is the legend; indices are the token type codes.
var semanticTokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenString,
	protocol.SemanticTokenOperator,
}

const (
	semComment uint32 = iota
	semProperty
	semString
	semOperator
)

type semToken struct {
	line, char, length, typ uint32
}

// classifyTokens assigns a semantic type to each token of toks. A string
// token is a key when it starts an entry and a value when it follows a
// key. Tokens spanning lines are left out. Columns and lengths count
// UTF-16 code units.
func classifyTokens(toks []token.Token, lines *lineIndex) []semToken {
	var res []semToken
	expectKey := true
	for i := range toks {
		tok := &toks[i]
		if tok.Pos == nil || tok.Type == token.TEnd {
			continue
		}
		var typ, n uint32
		switch tok.Type {
		case token.TComment:
			typ, n = semComment, uint32(len(tok.Bytes)+2)
		case token.TOpenBrace, token.TCloseBrace:
			typ, n = semOperator, 1
			expectKey = true
		case token.TString:
			n = uint32(len(tok.Bytes))
			if tok.Quoted() {
				n += 2
			}
			if expectKey {
				typ = semProperty
			} else {
				typ = semString
			}
			expectKey = !expectKey
		}
		if bytes.IndexByte(tok.Bytes, '\n') != -1 {
			continue
		}
		p := lines.position(tok.Pos.I)
		res = append(res, semToken{line: p.Line, char: p.Character, length: lines.span(tok.Pos.I, int(n)), typ: typ})
	}
	return res
}

// encodeSemanticTokens produces the relative encoding of the LSP
// semantic tokens protocol.
func encodeSemanticTokens(sts []semToken) []uint32 {
	data := make([]uint32, 0, 5*len(sts))
	var prevLine, prevChar uint32
	for _, st := range sts {
		deltaLine := st.line - prevLine
		deltaChar := st.char
		if deltaLine == 0 {
			deltaChar = st.char - prevChar
		}
		data = append(data, deltaLine, deltaChar, st.length, st.typ, 0)
		prevLine, prevChar = st.line, st.char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(classifyTokens(doc.toks, doc.lines)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	start, end := params.Range.Start.Line, params.Range.End.Line
	var sts []semToken
	for _, st := range classifyTokens(doc.toks, doc.lines) {
		if st.line >= start && st.line <= end {
			sts = append(sts, st)
		}
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(sts),
	}, nil
}
