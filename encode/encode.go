package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-vdf/format"
	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/token"
)

type EncState struct {
	depth  int
	indent string
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(tree *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.VDFFormat:
		return encode(tree, w, es)
	case format.JSONFormat:
		return encodeJSON(tree, w)
	case format.YAMLFormat:
		return encodeYAML(tree, w)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func encode(tree *ir.Tree, w io.Writer, es *EncState) error {
	tabs := strings.Repeat(es.indent, es.depth)
	for _, e := range tree.All() {
		if e.IsTombstone() {
			continue
		}
		switch e.Value.Type {
		case ir.LeafType:
			line := tabs + quoteKey(e.Key, ir.LeafType, es) + " " +
				quote(e.Value.String, ir.LeafType, ValueColor, es) + "\n"
			if err := writeString(w, line); err != nil {
				return err
			}
		case ir.TreeType:
			open := tabs + quoteKey(e.Key, ir.TreeType, es) + "\n" +
				tabs + colored("{", ir.TreeType, BraceColor, es) + "\n"
			if err := writeString(w, open); err != nil {
				return err
			}
			es.depth++
			err := encode(e.Value.Tree, w, es)
			es.depth--
			if err != nil {
				return err
			}
			if err := writeString(w, tabs+colored("}", ir.TreeType, BraceColor, es)+"\n"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: value type %s", ErrEncoding, e.Value.Type)
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// NeedsQuote reports whether key must be quoted to be read back as a single
// string token: it contains whitespace, is empty, or starts like a brace or
// a comment.
func NeedsQuote(key string) bool {
	if key == "" || token.HasSpace(key) {
		return true
	}
	switch key[0] {
	case '{', '}', '"':
		return true
	}
	return strings.HasPrefix(key, "//")
}

func quoteKey(key string, t ir.Type, es *EncState) string {
	if NeedsQuote(key) {
		return quote(key, t, KeyColor, es)
	}
	return colored(key, t, KeyColor, es)
}

func quote(s string, t ir.Type, a ColorAttr, es *EncState) string {
	q := colored(`"`, t, QuoteColor, es)
	return q + colored(s, t, a, es) + q
}

func colored(s string, t ir.Type, a ColorAttr, es *EncState) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeJSON(tree *ir.Tree, w io.Writer) error {
	d, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
