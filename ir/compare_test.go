package ir

import (
	"errors"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		a, b   *Tree
		ignore []string
		want   bool
	}{
		{"empty", NewTree(), NewTree(), nil, true},
		{"reordered",
			NewTree(FromString("a", "1"), FromString("b", "2")),
			NewTree(FromString("b", "2"), FromString("a", "1")),
			nil, true},
		{"value differs",
			NewTree(FromString("a", "1")),
			NewTree(FromString("a", "2")),
			nil, false},
		{"extra in b",
			NewTree(FromString("a", "1")),
			NewTree(FromString("a", "1"), FromString("b", "2")),
			nil, false},
		{"extra in a",
			NewTree(FromString("a", "1"), FromString("b", "2")),
			NewTree(FromString("a", "1")),
			nil, false},
		{"ignored id",
			NewTree(FromString("id", "1"), FromString("x", "y")),
			NewTree(FromString("id", "2"), FromString("x", "y")),
			[]string{"id"}, true},
		{"ignored only on one side",
			NewTree(FromString("id", "1"), FromString("x", "y")),
			NewTree(FromString("x", "y")),
			[]string{"id"}, true},
		{"duplicates counted",
			NewTree(FromString("a", "1"), FromString("a", "1")),
			NewTree(FromString("a", "1")),
			nil, false},
		{"leaf vs subtree",
			NewTree(FromString("a", "")),
			NewTree(FromTree("a", NewTree())),
			nil, false},
		{"nested reorder",
			NewTree(FromTree("s", NewTree(FromString("p", "1"), FromString("q", "2")))),
			NewTree(FromTree("s", NewTree(FromString("q", "2"), FromString("p", "1")))),
			nil, true},
		{"nested ignore",
			NewTree(FromTree("s", NewTree(FromString("id", "1"), FromString("q", "2")))),
			NewTree(FromTree("s", NewTree(FromString("id", "9"), FromString("q", "2")))),
			[]string{"id"}, true},
		{"tombstones",
			NewTree(FromString("a", "1"), Entry{}, Entry{}),
			NewTree(FromString("a", "1")),
			nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b, tt.ignore, true)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
			rev, err := Compare(tt.b, tt.a, tt.ignore, true)
			if err != nil {
				t.Fatal(err)
			}
			if rev != tt.want {
				t.Errorf("reversed: got %v want %v", rev, tt.want)
			}
		})
	}
}

func TestCompareOrderSensitive(t *testing.T) {
	_, err := Compare(NewTree(), NewTree(), nil, false)
	if !errors.Is(err, ErrUnimplemented) {
		t.Errorf("got %v", err)
	}
}

func TestCompareDuplicateSubtrees(t *testing.T) {
	a := NewTree(
		FromTree("e", NewTree(FromString("x", "1"), FromString("id", "1"))),
		FromTree("e", NewTree(FromString("x", "1"), FromString("id", "2"), FromString("y", "2"))),
	)
	b := NewTree(
		FromTree("e", NewTree(FromString("y", "2"), FromString("x", "1"))),
		FromTree("e", NewTree(FromString("x", "1"), FromString("id", "3"))),
	)
	got, err := Compare(a, b, []string{"id"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Errorf("expected equal")
	}
	got, err = Compare(a, b, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Errorf("expected ids to differ")
	}
}
