package ir

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTreeMutation(t *testing.T) {
	tree := NewTree(FromString("a", "1"), FromString("b", "2"), FromString("a", "3"))
	found := tree.Find("a")
	if len(found) != 2 {
		t.Fatalf("found %d", len(found))
	}
	found[1].SetLeaf("x")
	tree.Clear(1)
	tree.Append(FromTree("c", NewTree(FromString("d", "4"))))

	want := NewTree(FromString("a", "1"), Entry{}, FromString("a", "x"), FromTree("c", NewTree(FromString("d", "4"))))
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !tree.At(1).IsTombstone() {
		t.Error("expected tombstone")
	}
	if got := tree.Find(""); len(got) != 0 {
		t.Errorf("tombstone found: %v", got)
	}
	if diff := cmp.Diff([]int{0, 2}, tree.Indices("a")); diff != "" {
		t.Errorf("indices (-want +got):\n%s", diff)
	}
}

func TestTombstone(t *testing.T) {
	var e Entry
	if !e.IsTombstone() {
		t.Error("zero entry is a tombstone")
	}
	e = FromString("", "x")
	if e.IsTombstone() {
		t.Error("value set")
	}
	e = FromTree("", NewTree())
	if e.IsTombstone() {
		t.Error("empty subtree")
	}
	e.Clear()
	if !e.IsTombstone() || e.Value.Tree != nil {
		t.Error("clear")
	}
}

func TestCloneIsDeep(t *testing.T) {
	tree := NewTree(FromTree("s", NewTree(FromString("k", "v"))))
	c := tree.Clone()
	c.At(0).Value.Tree.At(0).SetLeaf("changed")
	if v, _ := tree.At(0).Value.Tree.GetString("k"); v != "v" {
		t.Errorf("source tree changed to %q", v)
	}
}

func TestCompact(t *testing.T) {
	tree := NewTree(
		Entry{},
		FromTree("s", NewTree(Entry{}, FromString("k", "v"))),
		FromString("x", "y"),
	)
	want := NewTree(
		FromTree("s", NewTree(FromString("k", "v"))),
		FromString("x", "y"),
	)
	if diff := cmp.Diff(want, tree.Compact()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if tree.Len() != 3 {
		t.Error("compact modified its receiver")
	}
}

func TestKeysAndGet(t *testing.T) {
	tree := NewTree(FromString("b", "1"), FromTree("a", NewTree()), FromString("b", "2"), Entry{})
	if diff := cmp.Diff([]string{"b", "a"}, tree.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if e := tree.Get("b"); e == nil || e.Value.String != "1" {
		t.Errorf("get b: %v", e)
	}
	if tree.Get("zz") != nil {
		t.Error("get zz")
	}
	if _, ok := tree.GetString("a"); ok {
		t.Error("a is a subtree")
	}
}

func TestWalk(t *testing.T) {
	tree := NewTree(
		FromTree("a", NewTree(FromString("b", "1"), Entry{}, FromTree("c", NewTree(FromString("d", "2"))))),
		FromTree("skip", NewTree(FromString("hidden", "3"))),
		FromString("e", "4"),
	)
	var got []string
	tree.Walk(func(path []string, e *Entry) bool {
		got = append(got, strings.Join(path, "."))
		return e.Key != "skip"
	})
	want := []string{"a", "a.b", "a.c", "a.c.d", "skip", "e"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk (-want +got):\n%s", diff)
	}
}

func TestNilTree(t *testing.T) {
	var tree *Tree
	if tree.Len() != 0 {
		t.Error("len")
	}
	for range tree.All() {
		t.Error("iterated nil tree")
	}
}
