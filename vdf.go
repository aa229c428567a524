package vdf

import (
	"github.com/signadot/go-vdf/encode"
	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/parse"
)

// Parse tokenizes and parses a whole document. Errors are
// *token.TokenizeErr or wrap *parse.ParseErr.
func Parse(text []byte) (*ir.Tree, error) {
	return parse.Parse(text)
}

// Serialize renders tree in canonical VDF text, tombstones omitted.
func Serialize(tree *ir.Tree) string {
	return encode.MustString(tree)
}

// Compare is ir.Compare.
func Compare(a, b *ir.Tree, ignoreKeys []string, orderInsensitive bool) (bool, error) {
	return ir.Compare(a, b, ignoreKeys, orderInsensitive)
}
