package token

import (
	"errors"
	"fmt"
)

var (
	ErrTokenize = errors.New("tokenize error")

	ErrNegativeDepth = fmt.Errorf("%w: more closing than opening braces", ErrTokenize)
	ErrUnbalanced    = fmt.Errorf("%w: more opening than closing braces", ErrTokenize)
	ErrUnterminated  = fmt.Errorf("%w: unterminated quoted string", ErrTokenize)
)

// TokenizeErr records where in the input a tokenization error was detected.
type TokenizeErr struct {
	Err error
	Pos Pos
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
