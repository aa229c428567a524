package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/go-vdf/token"
)

var (
	ErrParse = errors.New("parse error")

	ErrNoValue    = fmt.Errorf("%w: key string has no paired value", ErrParse)
	ErrEndOfInput = fmt.Errorf("%w: key has no value: end of input", ErrParse)
	ErrUnexpected = fmt.Errorf("%w: unexpected token", ErrParse)
)

// ParseErr reports the token at which parsing failed. Index is the
// position of Tok in the document's token sequence and Depth the brace
// nesting depth of the block being parsed.
type ParseErr struct {
	Err   error
	Index int
	Depth int
	Tok   *token.Token
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	if e.Tok == nil {
		return fmt.Sprintf("%s at token %d (depth %d)", e.Err.Error(), e.Index, e.Depth)
	}
	if e.Tok.Pos == nil {
		return fmt.Sprintf("%s at token %d %s (depth %d)", e.Err.Error(), e.Index, e.Tok.String(), e.Depth)
	}
	return fmt.Sprintf("%s at token %d %s (depth %d) %s", e.Err.Error(), e.Index, e.Tok.String(), e.Depth, e.Tok.Pos.String())
}
