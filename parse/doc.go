// Package parse builds ir trees from VDF text.
//
// Parsing happens in two steps: [token.Tokenize] produces a flat token
// sequence and [ParseTokens] recursively turns it into an [ir.Tree]. A key
// is followed either by a string (a leaf) or by a brace delimited block
// (a subtree). Comments are discarded, including comments between a key
// and its value.
//
// Recursion depth equals the brace nesting depth of the input, so
// pathologically nested documents can exhaust the stack.
package parse
