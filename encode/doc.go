// Package encode renders ir trees as VDF text, or as JSON or YAML.
//
// # Usage
//
//	tree := ir.NewTree(
//	    ir.FromString("classname", "light_environment"),
//	    ir.FromTree("editor", ir.NewTree(ir.FromString("color", "220 30 220"))),
//	)
//	err := encode.Encode(tree, os.Stdout)
//
// produces
//
//	classname "light_environment"
//	editor
//	{
//		color "220 30 220"
//	}
//
// Indentation is one tab per level. Leaf values are always quoted; keys
// are quoted only when they contain whitespace or could not be read back
// unquoted. Nothing is escaped, so a '"' inside a key or value does not
// survive a round trip. Tombstoned entries are skipped.
//
// # Related Packages
//
//   - github.com/signadot/go-vdf/ir - tree representation
//   - github.com/signadot/go-vdf/parse - parse text to a tree
package encode
