package encode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-vdf/format"
	"github.com/signadot/go-vdf/ir"
)

func sample() *ir.Tree {
	return ir.NewTree(
		ir.FromString("name", "x y"),
		ir.FromTree("my key", ir.NewTree(
			ir.FromString("a", "1"),
			ir.Entry{},
			ir.FromTree("inner", ir.NewTree()),
		)),
		ir.FromString("a", "2"),
	)
}

func TestEncodeVDF(t *testing.T) {
	want := `name "x y"
"my key"
{
	a "1"
	inner
	{
	}
}
a "2"
`
	if diff := cmp.Diff(want, MustString(sample())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDepth(t *testing.T) {
	tree := ir.NewTree(ir.FromTree("k", ir.NewTree(ir.FromString("v", ""))))
	want := "\t\tk\n\t\t{\n\t\t\tv \"\"\n\t\t}\n"
	if got := MustString(tree, Depth(2)); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	want = "k\n{\n  v \"\"\n}\n"
	if got := MustString(tree, Indent("  ")); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestNeedsQuote(t *testing.T) {
	for k, want := range map[string]bool{
		"plain":  false,
		"a/b":    false,
		"":       true,
		"a b":    true,
		"tab\t":  true,
		"{x":     true,
		"}":      true,
		"//note": true,
	} {
		if got := NeedsQuote(k); got != want {
			t.Errorf("NeedsQuote(%q) = %v", k, got)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	tree := ir.NewTree(
		ir.FromString("a", "1"),
		ir.Entry{},
		ir.FromTree("b", ir.NewTree(ir.FromString("c", "2"))),
	)
	got := MustString(tree, EncodeFormat(format.JSONFormat))
	want := `[
  {
    "key": "a",
    "value": "1"
  },
  {
    "key": "b",
    "value": [
      {
        "key": "c",
        "value": "2"
      }
    ]
  }
]
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	tree := ir.NewTree(
		ir.FromString("a", "one"),
		ir.FromTree("b", ir.NewTree(ir.FromString("c", "x"))),
	)
	got := MustString(tree, EncodeFormat(format.YAMLFormat))
	for _, frag := range []string{"a: one", "b:", "c: x"} {
		if !strings.Contains(got, frag) {
			t.Errorf("%q missing from\n%s", frag, got)
		}
	}
	if strings.Index(got, "a:") > strings.Index(got, "b:") {
		t.Errorf("order not kept:\n%s", got)
	}
}

func TestToMapSlice(t *testing.T) {
	ms := ToMapSlice(ir.NewTree(
		ir.FromString("k", "1"),
		ir.Entry{},
		ir.FromString("k", "2"),
	))
	if len(ms) != 2 {
		t.Fatalf("got %d items", len(ms))
	}
	if ms[0].Value != "1" || ms[1].Value != "2" {
		t.Errorf("got %v", ms)
	}
}

func TestEncodeColors(t *testing.T) {
	c := NewColors()
	c.Map[Colorable{Type: ir.LeafType, Attr: KeyColor}] = func(s string, _ ...any) string { return "<" + s + ">" }
	c.Map[Colorable{Type: ir.LeafType, Attr: ValueColor}] = func(s string, _ ...any) string { return "[" + s + "]" }
	c.Map[Colorable{Type: ir.LeafType, Attr: QuoteColor}] = c.Default
	got := MustString(ir.NewTree(ir.FromString("k", "v")), EncodeColors(c))
	if want := "<k> \"[v]\"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeBadFormat(t *testing.T) {
	var sb strings.Builder
	if err := Encode(ir.NewTree(), &sb, EncodeFormat(format.Format(99))); err == nil {
		t.Error("expected error")
	}
}
