package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// A Tree is represented in JSON as an array of {"key": k, "value": v}
// objects, where v is a string for a leaf and an array for a subtree.
// Tombstones are omitted. Order and duplicate keys survive the round trip.

type jsonEntry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	res := make([]jsonEntry, 0, t.Len())
	for _, e := range t.All() {
		if e.IsTombstone() {
			continue
		}
		var (
			v   []byte
			err error
		)
		switch e.Value.Type {
		case LeafType:
			v, err = json.Marshal(e.Value.String)
		case TreeType:
			v, err = e.Value.Tree.MarshalJSON()
		}
		if err != nil {
			return nil, err
		}
		res = append(res, jsonEntry{Key: e.Key, Value: v})
	}
	return json.Marshal(res)
}

func (t *Tree) UnmarshalJSON(d []byte) error {
	var jes []jsonEntry
	if err := json.Unmarshal(d, &jes); err != nil {
		return fmt.Errorf("%w: %w", ErrJSON, err)
	}
	t.Entries = make([]Entry, 0, len(jes))
	for i := range jes {
		je := &jes[i]
		v := bytes.TrimSpace(je.Value)
		if len(v) == 0 {
			return fmt.Errorf("%w: entry %d (%q) has no value", ErrJSON, i, je.Key)
		}
		switch v[0] {
		case '"':
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("%w: entry %d (%q): %w", ErrJSON, i, je.Key, err)
			}
			t.Entries = append(t.Entries, FromString(je.Key, s))
		case '[':
			sub := &Tree{}
			if err := sub.UnmarshalJSON(v); err != nil {
				return err
			}
			t.Entries = append(t.Entries, FromTree(je.Key, sub))
		default:
			return fmt.Errorf("%w: entry %d (%q) value must be a string or an array", ErrJSON, i, je.Key)
		}
	}
	return nil
}
