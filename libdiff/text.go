package libdiff

import (
	"strings"

	"github.com/signadot/go-vdf/encode"
	"github.com/signadot/go-vdf/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one line of a line diff, without its terminating newline.
type Line struct {
	Op   Op
	Text string
}

// DiffLines diffs from and to line by line.
func DiffLines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Format renders lines with "+", "-" or " " prefixes. color, if non-nil,
// decorates each rendered line.
func Format(lines []Line, color func(Op, string) string) string {
	var sb strings.Builder
	for i := range lines {
		ln := lines[i].Op.Prefix() + lines[i].Text
		if color != nil {
			ln = color(lines[i].Op, ln)
		}
		sb.WriteString(ln)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DiffTrees diffs the canonical serializations of from and to.
func DiffTrees(from, to *ir.Tree) []Line {
	return DiffLines(encode.MustString(from), encode.MustString(to))
}
