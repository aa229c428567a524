// Package ir provides the in-memory representation of VDF documents.
//
// # Tree Structure
//
// A [Tree] is an ordered sequence of [Entry] values. Keys may repeat, so a
// Tree is not a map: lookups by key return every match, in order.
//
// Each Entry pairs a key with a [Value], a two-variant union tagged by
// [Type]:
//
//   - LeafType: the value is a string
//   - TreeType: the value is a nested, exclusively owned *Tree
//
// Subtrees are never shared between entries. Trees built by the parser are
// constructed bottom-up, so a tree is always a strict forest.
//
// # Tombstones
//
// The zero Entry (empty key, empty leaf) is a tombstone. [Entry.Clear]
// turns an entry into a tombstone in place, which lets callers delete
// entries while iterating without shifting indices. Encoders skip
// tombstones and [Compare] never counts them.
//
// # Comparison
//
// [Compare] tests two trees for equality ignoring entry order and a set of
// keys, pairing entries greedily (first fit).
package ir
