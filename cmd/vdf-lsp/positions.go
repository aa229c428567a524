package main

import (
	"sort"
	"strings"
	"unicode/utf16"

	"go.lsp.dev/protocol"
)

// lineIndex converts between byte offsets of a document and LSP
// positions, whose characters count UTF-16 code units.
type lineIndex struct {
	content string
	starts  []int
}

func newLineIndex(content string) *lineIndex {
	li := &lineIndex{content: content, starts: []int{0}}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			li.starts = append(li.starts, i+1)
		}
	}
	return li
}

// position returns the position of byte offset off, clamped to the
// document.
func (li *lineIndex) position(off int) protocol.Position {
	off = min(max(off, 0), len(li.content))
	line := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > off
	}) - 1
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(li.content[li.starts[line]:off])),
	}
}

// span returns the UTF-16 length of the n bytes at off.
func (li *lineIndex) span(off, n int) uint32 {
	off = min(max(off, 0), len(li.content))
	end := min(off+n, len(li.content))
	return uint32(utf16Len(li.content[off:end]))
}

// byteCol returns the byte column of p within its line. Characters past
// the end of the line map to its end.
func (li *lineIndex) byteCol(p protocol.Position) int {
	if int(p.Line) >= len(li.starts) {
		return 0
	}
	line := li.content[li.starts[p.Line]:]
	if i := strings.IndexByte(line, '\n'); i != -1 {
		line = line[:i]
	}
	var n uint32
	for i, r := range line {
		if n >= p.Character {
			return i
		}
		n += uint32(utf16.RuneLen(r))
	}
	return len(line)
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
