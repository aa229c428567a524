package encode

import (
	"io"

	"github.com/signadot/go-vdf/ir"

	"github.com/goccy/go-yaml"
)

// ToMapSlice converts tree to an ordered YAML mapping. Duplicate keys are
// kept as repeated mapping items, which go-yaml writes out verbatim.
func ToMapSlice(tree *ir.Tree) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, tree.Len())
	for _, e := range tree.All() {
		if e.IsTombstone() {
			continue
		}
		item := yaml.MapItem{Key: e.Key}
		switch e.Value.Type {
		case ir.LeafType:
			item.Value = e.Value.String
		case ir.TreeType:
			item.Value = ToMapSlice(e.Value.Tree)
		}
		res = append(res, item)
	}
	return res
}

func encodeYAML(tree *ir.Tree, w io.Writer) error {
	d, err := yaml.Marshal(ToMapSlice(tree))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
