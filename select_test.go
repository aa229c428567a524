package vdf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func matchPaths(ms []Match) []string {
	res := make([]string, len(ms))
	for i := range ms {
		res[i] = ms[i].PathString()
	}
	return res
}

func TestSelect(t *testing.T) {
	tree, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		expr string
		opts []SelectOpt
		want []string
	}{
		{"by classname", `key == "entity" && get("classname") startsWith "light"`, nil,
			[]string{"entity"}},
		{"leaves by key", `leaf && key == "id"`, nil,
			[]string{"entity.id", "entity.id"}},
		{"has", `has("editor")`, nil,
			[]string{"entity"}},
		{"by path", `path == "entity.editor.color"`, nil,
			[]string{"entity.editor.color"}},
		{"by value", `value == "12"`, nil,
			[]string{"versioninfo.mapversion"}},
		{"top level subtrees", `!leaf`, []SelectOpt{SelectMaxDepth(0)},
			[]string{"versioninfo", "entity", "entity", "empty block"}},
		{"depth", `depth == 2`, nil,
			[]string{"entity.editor.color"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := Select(tree, tt.expr, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, matchPaths(ms)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectEntry(t *testing.T) {
	tree, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	ms, err := Select(tree, `key == "classname" && value == "info_player_start"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 1 {
		t.Fatalf("got %d matches", len(ms))
	}
	ms[0].Entry.SetLeaf("info_teleport_destination")
	e, err := tree.GetPath("entity[1].classname")
	if err != nil {
		t.Fatal(err)
	}
	if e.Value.String != "info_teleport_destination" {
		t.Errorf("match does not point into the tree: %q", e.Value.String)
	}
}

func TestSelectBadExpr(t *testing.T) {
	tree, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	for _, bad := range []string{`key +`, `key`, `nosuchvar == 1`} {
		if _, err := Select(tree, bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
