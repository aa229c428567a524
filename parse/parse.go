package parse

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/go-vdf/debug"
	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Tree, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		if debug.Tokenize() {
			token.PrintTokens(toks, "tokenize failed")
		}
		return nil, err
	}
	return ParseTokens(toks, opts...)
}

// ParseTokens parses a token sequence as produced by token.Tokenize. A
// TEnd token ends the top level; without one the whole sequence is read.
func ParseTokens(toks []token.Token, opts ...ParseOption) (*ir.Tree, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	res, err := parseTokens(toks, 0, pOpts.depth, pOpts)
	if err != nil {
		if debug.Parse() {
			token.PrintTokens(toks, "parse failed")
			var pe *ParseErr
			if errors.As(err, &pe) {
				debug.Logf("i=%d depth=%d\n", pe.Index, pe.Depth)
			}
		}
		return nil, err
	}
	return res, nil
}

// parseTokens parses one brace level. base is the index of toks[0] in the
// document's token sequence.
func parseTokens(toks []token.Token, base, depth int, opts *parseOpts) (*ir.Tree, error) {
	res := &ir.Tree{}
	var poss []*token.Pos
	fail := func(err error, i int) error {
		pe := &ParseErr{Err: err, Index: base + i, Depth: depth}
		if i < len(toks) {
			pe.Tok = &toks[i]
		}
		return pe
	}
	i := 0
	for i < len(toks) {
		tok := &toks[i]
		switch tok.Type {
		case token.TString:
			k := i + 1
			for k < len(toks) && toks[k].Type == token.TComment {
				k++
			}
			if k == len(toks) {
				return nil, fail(ErrEndOfInput, i)
			}
			next := &toks[k]
			switch next.Type {
			case token.TString:
				res.Append(ir.FromString(string(tok.Bytes), string(next.Bytes)))
				poss = append(poss, tok.Pos)
				i = k + 1
			case token.TOpenBrace:
				j := k + 1
				for j < len(toks) && !(toks[j].Type == token.TCloseBrace && toks[j].Depth == next.Depth) {
					j++
				}
				if j == len(toks) {
					return nil, fail(fmt.Errorf("%w: unmatched open brace", ErrUnexpected), k)
				}
				sub := append(slices.Clone(toks[k+1:j]), token.End())
				child, err := parseTokens(sub, base+k+1, depth+1, opts)
				if err != nil {
					return nil, fmt.Errorf("in %q: %w", tok.Bytes, err)
				}
				res.Append(ir.FromTree(string(tok.Bytes), child))
				poss = append(poss, tok.Pos)
				i = j + 1
			default:
				return nil, fail(ErrNoValue, i)
			}
		case token.TComment:
			i++
		case token.TEnd:
			if opts.positions != nil {
				opts.positions[res] = poss
			}
			return res, nil
		default:
			return nil, fail(ErrUnexpected, i)
		}
	}
	// a sequence without TEnd is accepted as if it had one
	if opts.positions != nil {
		opts.positions[res] = poss
	}
	return res, nil
}
