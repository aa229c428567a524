package ir

import "fmt"

type mark uint8

const (
	unmarked mark = iota
	ignored
	paired
)

// Compare reports whether a and b hold the same entries, disregarding
// entries whose key is in ignoreKeys as well as tombstones.
//
// Only order insensitive comparison is defined; passing
// orderInsensitive=false returns ErrUnimplemented.
//
// Entries are paired greedily: each entry of a, in order, takes the first
// unpaired entry of b with an equal key and an equal value. Leaves are
// equal when their strings are; subtrees are compared recursively with the
// same ignore set.
func Compare(a, b *Tree, ignoreKeys []string, orderInsensitive bool) (bool, error) {
	if !orderInsensitive {
		return false, fmt.Errorf("%w: order sensitive comparison", ErrUnimplemented)
	}
	ignore := make(map[string]struct{}, len(ignoreKeys))
	for _, k := range ignoreKeys {
		ignore[k] = struct{}{}
	}
	return compareUnordered(a, b, ignore), nil
}

func compareUnordered(a, b *Tree, ignore map[string]struct{}) bool {
	am := marks(a, ignore)
	bm := marks(b, ignore)
	for i := range am {
		if am[i] != unmarked {
			continue
		}
		ea := &a.Entries[i]
		for j := range bm {
			if bm[j] != unmarked {
				continue
			}
			if !entryEqual(ea, &b.Entries[j], ignore) {
				continue
			}
			am[i] = paired
			bm[j] = paired
			break
		}
		if am[i] != paired {
			return false
		}
	}
	for j := range bm {
		if bm[j] == unmarked {
			return false
		}
	}
	return true
}

func marks(t *Tree, ignore map[string]struct{}) []mark {
	res := make([]mark, t.Len())
	for i, e := range t.All() {
		if e.IsTombstone() {
			res[i] = ignored
			continue
		}
		if _, ok := ignore[e.Key]; ok {
			res[i] = ignored
		}
	}
	return res
}

func entryEqual(a, b *Entry, ignore map[string]struct{}) bool {
	if a.Key != b.Key || a.Value.Type != b.Value.Type {
		return false
	}
	switch a.Value.Type {
	case LeafType:
		return a.Value.String == b.Value.String
	case TreeType:
		return compareUnordered(a.Value.Tree, b.Value.Tree, ignore)
	default:
		panic("unknown value type")
	}
}
