// Package token provides tokenization support for VDF (Valve KeyValues) text.
//
// [Tokenize] scans a document once, left to right, producing a flat
// sequence of [Token] values which always ends in a [TEnd] token.
//
// Braces carry the nesting depth active before the opening brace, so a
// [TOpenBrace] is matched by the first following [TCloseBrace] carrying the
// same depth without an explicit stack.
package token
