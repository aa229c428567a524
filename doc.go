// Package vdf reads, writes and compares VDF (Valve KeyValues) documents.
//
// [Parse], [Serialize] and [Compare] are the entry points; the packages
// [github.com/signadot/go-vdf/token], [github.com/signadot/go-vdf/parse],
// [github.com/signadot/go-vdf/encode] and [github.com/signadot/go-vdf/ir]
// hold the implementation and expose finer control.
//
// [Select] filters entries with an expr-lang predicate and [Patch] applies
// RFC 6902 JSON patches to a tree through its JSON form.
package vdf
