package main

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"a.vmf", "sub/b.vmf", "sub/deep/c.vmf", "sub/notes.txt"} {
		full := filepath.Join(dir, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("k v\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := expandGlobs([]string{filepath.Join(dir, "**", "*.vmf"), "literal.vmf"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %v", got)
	}
	slices.Sort(got[:3])
	want := []string{
		filepath.Join(dir, "a.vmf"),
		filepath.Join(dir, "sub", "b.vmf"),
		filepath.Join(dir, "sub", "deep", "c.vmf"),
		"literal.vmf",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := expandGlobs([]string{filepath.Join(dir, "*.none")}); err == nil {
		t.Error("expected error for empty match")
	}
	if _, err := expandGlobs([]string{filepath.Join(dir, "[")}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}
