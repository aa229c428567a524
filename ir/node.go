package ir

import (
	"iter"
	"slices"
)

// Value is the payload of an Entry. When Type is LeafType only String is
// meaningful; when Type is TreeType only Tree is, and it is non-nil.
type Value struct {
	Type   Type
	String string
	Tree   *Tree
}

func Leaf(s string) Value {
	return Value{Type: LeafType, String: s}
}

func Subtree(t *Tree) Value {
	if t == nil {
		t = &Tree{}
	}
	return Value{Type: TreeType, Tree: t}
}

type Entry struct {
	Key   string
	Value Value
}

func FromString(key, val string) Entry {
	return Entry{Key: key, Value: Leaf(val)}
}

func FromTree(key string, t *Tree) Entry {
	return Entry{Key: key, Value: Subtree(t)}
}

func (e *Entry) IsLeaf() bool {
	return e.Value.Type == LeafType
}

func (e *Entry) IsTree() bool {
	return e.Value.Type == TreeType
}

// IsTombstone reports whether e is the zero entry.
func (e *Entry) IsTombstone() bool {
	return e.Key == "" && e.Value.Type == LeafType && e.Value.String == ""
}

// Clear turns e into a tombstone. The subtree it held, if any, is dropped.
func (e *Entry) Clear() {
	*e = Entry{}
}

// SetLeaf replaces the value of e with the leaf string v.
func (e *Entry) SetLeaf(v string) {
	e.Value = Leaf(v)
}

// SetTree replaces the value of e with the subtree t, which e then owns.
func (e *Entry) SetTree(t *Tree) {
	e.Value = Subtree(t)
}

func (e *Entry) Clone() Entry {
	res := Entry{Key: e.Key, Value: Value{Type: e.Value.Type, String: e.Value.String}}
	if e.Value.Type == TreeType {
		res.Value.Tree = e.Value.Tree.Clone()
	}
	return res
}

// Tree is an ordered sequence of entries. Duplicate keys are allowed.
//
// Pointers returned by At, All, Find and Get point into the tree's backing
// storage and are invalidated by Append.
type Tree struct {
	Entries []Entry
}

func NewTree(entries ...Entry) *Tree {
	return &Tree{Entries: entries}
}

func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Entries)
}

func (t *Tree) At(i int) *Entry {
	return &t.Entries[i]
}

// All iterates over the entries of t in order, tombstones included.
func (t *Tree) All() iter.Seq2[int, *Entry] {
	return func(yield func(int, *Entry) bool) {
		if t == nil {
			return
		}
		for i := range t.Entries {
			if !yield(i, &t.Entries[i]) {
				return
			}
		}
	}
}

func (t *Tree) Append(entries ...Entry) {
	t.Entries = append(t.Entries, entries...)
}

// Clear tombstones the i'th entry without shifting the others.
func (t *Tree) Clear(i int) {
	t.Entries[i].Clear()
}

// Find returns every entry whose key is key, in order. Tombstones are
// never returned.
func (t *Tree) Find(key string) []*Entry {
	var res []*Entry
	for _, e := range t.All() {
		if e.Key == key && !e.IsTombstone() {
			res = append(res, e)
		}
	}
	return res
}

// Indices returns the indices of every entry whose key is key.
func (t *Tree) Indices(key string) []int {
	var res []int
	for i, e := range t.All() {
		if e.Key == key && !e.IsTombstone() {
			res = append(res, i)
		}
	}
	return res
}

// Get returns the first entry with the given key, or nil.
func (t *Tree) Get(key string) *Entry {
	for _, e := range t.All() {
		if e.Key == key && !e.IsTombstone() {
			return e
		}
	}
	return nil
}

// GetString returns the first leaf value under key.
func (t *Tree) GetString(key string) (string, bool) {
	for _, e := range t.All() {
		if e.Key == key && e.IsLeaf() && !e.IsTombstone() {
			return e.Value.String, true
		}
	}
	return "", false
}

func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	res := &Tree{Entries: make([]Entry, len(t.Entries))}
	for i := range t.Entries {
		res.Entries[i] = t.Entries[i].Clone()
	}
	return res
}

// Compact returns a copy of t with every tombstone removed, recursively.
func (t *Tree) Compact() *Tree {
	res := &Tree{Entries: make([]Entry, 0, t.Len())}
	for _, e := range t.All() {
		if e.IsTombstone() {
			continue
		}
		c := Entry{Key: e.Key, Value: e.Value}
		if e.IsTree() {
			c.Value.Tree = e.Value.Tree.Compact()
		}
		res.Entries = append(res.Entries, c)
	}
	return res
}

// Keys returns the distinct keys of t in order of first appearance,
// tombstones excluded.
func (t *Tree) Keys() []string {
	var res []string
	for _, e := range t.All() {
		if e.IsTombstone() || slices.Contains(res, e.Key) {
			continue
		}
		res = append(res, e.Key)
	}
	return res
}

// Walk calls f for every entry of t depth first, parents before children,
// with the chain of keys leading to the entry. Tombstones are skipped.
// Returning false from f skips the entry's subtree.
func (t *Tree) Walk(f func(path []string, e *Entry) bool) {
	t.walk(nil, f)
}

func (t *Tree) walk(prefix []string, f func([]string, *Entry) bool) {
	for _, e := range t.All() {
		if e.IsTombstone() {
			continue
		}
		path := append(slices.Clip(prefix), e.Key)
		if !f(path, e) {
			continue
		}
		if e.IsTree() {
			e.Value.Tree.walk(path, f)
		}
	}
}
