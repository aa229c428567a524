package token

import "bytes"

// IsSpace reports whether c is ASCII whitespace: '\t', '\n', '\v', '\f',
// '\r' or ' '.
func IsSpace(c byte) bool {
	return (c >= '\t' && c <= '\r') || c == ' '
}

// HasSpace reports whether s contains ASCII whitespace.
func HasSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		if IsSpace(s[i]) {
			return true
		}
	}
	return false
}

// Tokenize appends the tokens of src to dst. The result always ends with
// a TEnd token. Quoted strings have no escape sequences: they end at the
// next '"'.
//
// On error the tokens scanned so far are returned along with a
// *TokenizeErr; they are not terminated by TEnd.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	// rough average of bytes per token in real documents
	if dst == nil {
		dst = make([]Token, 0, len(src)/8+1)
	}
	depth := 0
	n := len(src)
	i := 0
	fail := func(err error, at int) ([]Token, error) {
		return dst, NewTokenizeErr(err, pd.Pos(at))
	}
	for i < n {
		c := src[i]
		switch {
		case IsSpace(c):
			i++
		case c == '{':
			dst = append(dst, Token{Type: TOpenBrace, Depth: depth, Pos: pd.Pos(i)})
			depth++
			i++
		case c == '}':
			depth--
			if depth < 0 {
				return fail(ErrNegativeDepth, i)
			}
			dst = append(dst, Token{Type: TCloseBrace, Depth: depth, Pos: pd.Pos(i)})
			i++
		case c == '"':
			j := bytes.IndexByte(src[i+1:], '"')
			if j == -1 {
				return fail(ErrUnterminated, i)
			}
			dst = append(dst, Token{Type: TString, Bytes: src[i+1 : i+1+j], Pos: pd.Pos(i)})
			i += j + 2
		case c == '/' && i+1 < n && src[i+1] == '/':
			j := bytes.IndexByte(src[i+2:], '\n')
			if j == -1 {
				dst = append(dst, Token{Type: TComment, Bytes: src[i+2:], Pos: pd.Pos(i)})
				i = n
				break
			}
			dst = append(dst, Token{Type: TComment, Bytes: src[i+2 : i+2+j], Pos: pd.Pos(i)})
			i += j + 3
		default:
			j := i + 1
			for j < n && !IsSpace(src[j]) {
				j++
			}
			dst = append(dst, Token{Type: TString, Bytes: src[i:j], Pos: pd.Pos(i)})
			i = j
		}
	}
	if depth > 0 {
		return fail(ErrUnbalanced, n)
	}
	dst = append(dst, Token{Type: TEnd, Depth: -1, Pos: pd.end()})
	return dst, nil
}
