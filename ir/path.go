package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// PathElt addresses the N'th entry (zero based, counting only entries
// with that key) with key Key.
type PathElt struct {
	Key string
	N   int
}

// ParsePath parses a dotted key path such as "entity[2].editor.color".
// A key without an index selects its first occurrence. Keys containing
// '.' or '[' cannot be addressed.
func ParsePath(p string) ([]PathElt, error) {
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	}
	frags := strings.Split(p, ".")
	res := make([]PathElt, 0, len(frags))
	for _, frag := range frags {
		elt := PathElt{Key: frag}
		if i := strings.IndexByte(frag, '['); i != -1 {
			if !strings.HasSuffix(frag, "]") {
				return nil, fmt.Errorf("%w: unclosed index in %q", ErrPath, frag)
			}
			n, err := strconv.Atoi(frag[i+1 : len(frag)-1])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index in %q", ErrPath, frag)
			}
			elt.Key = frag[:i]
			elt.N = n
		}
		if elt.Key == "" {
			return nil, fmt.Errorf("%w: empty key in %q", ErrPath, p)
		}
		res = append(res, elt)
	}
	return res, nil
}

func (p PathElt) String() string {
	if p.N == 0 {
		return p.Key
	}
	return p.Key + "[" + strconv.Itoa(p.N) + "]"
}

// GetPath resolves a path as described by ParsePath.
func (t *Tree) GetPath(p string) (*Entry, error) {
	elts, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	cur := t
	var e *Entry
	for i, elt := range elts {
		if cur == nil {
			return nil, fmt.Errorf("%w: %s is a leaf", ErrPath, pathString(elts[:i]))
		}
		found := cur.Find(elt.Key)
		if elt.N >= len(found) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, pathString(elts[:i+1]))
		}
		e = found[elt.N]
		cur = nil
		if e.IsTree() {
			cur = e.Value.Tree
		}
	}
	return e, nil
}

func pathString(elts []PathElt) string {
	parts := make([]string, len(elts))
	for i := range elts {
		parts[i] = elts[i].String()
	}
	return strings.Join(parts, ".")
}
