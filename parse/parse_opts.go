package parse

import (
	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/token"
)

// Positions maps each parsed tree to the positions of its entries' key
// tokens, index for index.
type Positions map[*ir.Tree][]*token.Pos

type parseOpts struct {
	positions Positions
	depth     int
}

type ParseOption func(*parseOpts)

// ParsePositions records key token positions of every parsed tree in p.
func ParsePositions(p Positions) ParseOption {
	return func(o *parseOpts) { o.positions = p }
}

// ParseDepth sets the nesting depth reported in errors for the top level.
func ParseDepth(d int) ParseOption {
	return func(o *parseOpts) { o.depth = d }
}
