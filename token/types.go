package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TString TokenType = iota
	TComment
	TOpenBrace
	TCloseBrace
	TEnd
)

func (t TokenType) String() string {
	switch t {
	case TString:
		return "TString"
	case TComment:
		return "TComment"
	case TOpenBrace:
		return "TOpenBrace"
	case TCloseBrace:
		return "TCloseBrace"
	case TEnd:
		return "TEnd"
	default:
		return "TokenType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Token is a lexical unit of a VDF document.
//
// Bytes holds the payload of TString and TComment tokens. Depth is only
// meaningful for TOpenBrace and TCloseBrace. Pos may be nil for synthetic
// tokens.
type Token struct {
	Type  TokenType
	Depth int
	Bytes []byte
	Pos   *Pos
}

func String(s string) Token {
	return Token{Type: TString, Bytes: []byte(s)}
}

func Comment(s string) Token {
	return Token{Type: TComment, Bytes: []byte(s)}
}

func OpenBrace(depth int) Token {
	return Token{Type: TOpenBrace, Depth: depth}
}

func CloseBrace(depth int) Token {
	return Token{Type: TCloseBrace, Depth: depth}
}

func End() Token {
	return Token{Type: TEnd, Depth: -1}
}

func (t *Token) String() string {
	switch t.Type {
	case TString:
		return fmt.Sprintf("%s(%q)", t.Type, t.Bytes)
	case TComment:
		return fmt.Sprintf("%s(%q)", t.Type, t.Bytes)
	case TOpenBrace, TCloseBrace:
		return fmt.Sprintf("%s(%d)", t.Type, t.Depth)
	default:
		return t.Type.String()
	}
}

// Equal compares type, depth and payload, ignoring position.
func (t *Token) Equal(o *Token) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case TString, TComment:
		return string(t.Bytes) == string(o.Bytes)
	case TOpenBrace, TCloseBrace:
		return t.Depth == o.Depth
	default:
		return true
	}
}

// Quoted reports whether a TString token was written between double
// quotes in its source document. It is false when the token has no
// source position.
func (t *Token) Quoted() bool {
	if t.Type != TString || t.Pos == nil || t.Pos.D == nil {
		return false
	}
	d := t.Pos.D.d
	return t.Pos.I < len(d) && d[t.Pos.I] == '"'
}
