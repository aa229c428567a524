package vdf

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/go-vdf/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to the JSON form of doc (see
// ir.Tree.MarshalJSON) and returns the patched tree. doc is not modified.
//
// Paths address entries by index, e.g. "/0/value/3/value" is the value of
// the fourth entry of the first entry's subtree. Tombstones are dropped
// before the patch is applied, so indices count live entries only.
func Patch(doc *ir.Tree, patchJSON []byte) (*ir.Tree, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	res := &ir.Tree{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, err
	}
	return res, nil
}
