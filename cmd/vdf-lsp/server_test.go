package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const lspDoc = `// header
"my key"
{
	a "1"
	sub
	{
		b "2"
	}
}
a "3"
`

func TestValidateDocument(t *testing.T) {
	if diags := validateDocument(newDocument("file:///ok.vdf", lspDoc, 1)); len(diags) != 0 {
		t.Errorf("unexpected diagnostics %v", diags)
	}
	tests := []struct {
		name      string
		content   string
		line, col uint32
		msg       string
	}{
		{"unterminated", "a \"b\nc d\n", 0, 2, "unterminated"},
		{"negative depth", "a b\n}\n", 1, 0, "more closing"},
		{"no value", "a {\n\tb\n}\n", 1, 1, "no paired value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := validateDocument(newDocument("file:///bad.vdf", tt.content, 1))
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics", len(diags))
			}
			start := diags[0].Range.Start
			if start.Line != tt.line || start.Character != tt.col {
				t.Errorf("at %d:%d want %d:%d", start.Line, start.Character, tt.line, tt.col)
			}
			if !strings.Contains(diags[0].Message, tt.msg) {
				t.Errorf("message %q", diags[0].Message)
			}
		})
	}
}

func TestFindEntryAt(t *testing.T) {
	doc := newDocument("file:///ok.vdf", lspDoc, 1)
	path, e := findEntryAt(doc.tree, doc.positions, 6, 4)
	if e == nil {
		t.Fatal("no entry")
	}
	if diff := cmp.Diff([]string{"my key", "sub", "b"}, path); diff != "" {
		t.Errorf("path (-want +got):\n%s", diff)
	}
	if text := buildHoverText(path, e); !strings.Contains(text, "`my key.sub.b`") {
		t.Errorf("hover %q", text)
	}
	if _, e := findEntryAt(doc.tree, doc.positions, 0, 3); e != nil {
		t.Errorf("comment line matched %v", e)
	}
}

func TestKeyCompletions(t *testing.T) {
	doc := newDocument("file:///ok.vdf", lspDoc, 1)
	var labels []string
	for _, item := range keyCompletions(doc.tree) {
		labels = append(labels, item.Label)
	}
	if diff := cmp.Diff([]string{"my key", "a", "sub", "b"}, labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}

func TestDocumentSymbols(t *testing.T) {
	doc := newDocument("file:///ok.vdf", lspDoc, 1)
	syms := documentSymbols(doc.tree, doc.positions, doc.lines)
	if len(syms) != 2 {
		t.Fatalf("got %d symbols", len(syms))
	}
	if syms[0].Name != "my key" || syms[0].Kind != protocol.SymbolKindObject || len(syms[0].Children) != 2 {
		t.Errorf("got %+v", syms[0])
	}
	if syms[1].Detail != "3" || syms[1].Range.Start.Line != 9 {
		t.Errorf("got %+v", syms[1])
	}
}

func TestSemanticTokens(t *testing.T) {
	doc := newDocument("file:///ok.vdf", "// c\nk { a \"b c\" }\n", 1)
	got := classifyTokens(doc.toks, doc.lines)
	want := []semToken{
		{line: 0, char: 0, length: 4, typ: semComment},
		{line: 1, char: 0, length: 1, typ: semProperty},
		{line: 1, char: 2, length: 1, typ: semOperator},
		{line: 1, char: 4, length: 1, typ: semProperty},
		{line: 1, char: 6, length: 5, typ: semString},
		{line: 1, char: 12, length: 1, typ: semOperator},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(semToken{})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	data := encodeSemanticTokens(got)
	if diff := cmp.Diff([]uint32{0, 0, 4, 0, 0, 1, 0, 1, 1, 0}, data[:10]); diff != "" {
		t.Errorf("encoding (-want +got):\n%s", diff)
	}
	if data[10] != 0 || data[11] != 2 {
		t.Errorf("relative start %v", data[10:12])
	}
}

func TestLineIndex(t *testing.T) {
	li := newLineIndex("ab\n\U0001F600c\n")
	for off, want := range map[int]protocol.Position{
		0:  {Line: 0, Character: 0},
		3:  {Line: 1, Character: 0},
		7:  {Line: 1, Character: 2},
		8:  {Line: 1, Character: 3},
		99: {Line: 2, Character: 0},
	} {
		if got := li.position(off); got != want {
			t.Errorf("position(%d) = %v want %v", off, got, want)
		}
	}
	for _, tc := range []struct {
		p    protocol.Position
		want int
	}{
		{protocol.Position{Line: 1, Character: 2}, 4},
		{protocol.Position{Line: 1, Character: 3}, 5},
		{protocol.Position{Line: 1, Character: 9}, 5},
		{protocol.Position{Line: 7, Character: 0}, 0},
	} {
		if got := li.byteCol(tc.p); got != tc.want {
			t.Errorf("byteCol(%v) = %d want %d", tc.p, got, tc.want)
		}
	}
	if got := li.span(3, 5); got != 3 {
		t.Errorf("span %d", got)
	}
}

func TestNonASCIIColumns(t *testing.T) {
	doc := newDocument("file:///u.vdf", "\"\u00e9\" \"\U0001F600\" b \"2\"\n", 1)
	want := []semToken{
		{line: 0, char: 0, length: 3, typ: semProperty},
		{line: 0, char: 4, length: 4, typ: semString},
		{line: 0, char: 9, length: 1, typ: semProperty},
		{line: 0, char: 11, length: 3, typ: semString},
	}
	if diff := cmp.Diff(want, classifyTokens(doc.toks, doc.lines), cmp.AllowUnexported(semToken{})); diff != "" {
		t.Errorf("semantic tokens (-want +got):\n%s", diff)
	}
	path, e := findEntryAt(doc.tree, doc.positions, 0, doc.lines.byteCol(protocol.Position{Line: 0, Character: 9}))
	if e == nil || e.Value.String != "2" {
		t.Fatalf("hover at 0:9 got %v %v", path, e)
	}
	syms := documentSymbols(doc.tree, doc.positions, doc.lines)
	if len(syms) != 2 || syms[1].Range.Start.Character != 9 {
		t.Errorf("symbols %+v", syms)
	}

	bad := newDocument("file:///u.vdf", "\"\u00e9\" \"\U0001F600\" }\n", 1)
	diags := validateDocument(bad)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	wantRange := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 9},
		End:   protocol.Position{Line: 0, Character: 10},
	}
	if diags[0].Range != wantRange {
		t.Errorf("range %v want %v", diags[0].Range, wantRange)
	}
}

func TestDidChange(t *testing.T) {
	ctx := context.Background()
	s := &Server{}
	s.setupHandlers(ctx)

	res, err := s.Initialize(ctx, &protocol.InitializeParams{})
	if err != nil {
		t.Fatal(err)
	}
	opts, ok := res.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	if !ok || opts.Change != protocol.TextDocumentSyncKindFull {
		t.Fatalf("sync %+v", res.Capabilities.TextDocumentSync)
	}

	uri := protocol.DocumentURI("file:///c.vdf")
	err = s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "a \"1\"\nb \"2\"\n"},
	})
	if err != nil {
		t.Fatal(err)
	}
	// an insert at the start of the file arrives as the whole new text
	changed := "// c\na \"1\"\nb \"2\"\n"
	err = s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: changed}},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(string(uri))
	if doc.content != changed || doc.version != 2 {
		t.Fatalf("got %q version %d", doc.content, doc.version)
	}
	if doc.tree == nil || doc.tree.Len() != 2 {
		t.Errorf("tree %v", doc.tree)
	}

	if err := s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///unopened.vdf"},
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "x y"}},
	}); err != nil {
		t.Fatal(err)
	}
	if s.docs.get("file:///unopened.vdf") != nil {
		t.Error("unopened document stored")
	}
}
