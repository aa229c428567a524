package token

import (
	"fmt"
	"os"
)

func PrintTokens(toks []Token, msg string) {
	fmt.Fprintf(os.Stderr, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(os.Stderr, "\t%d %s %s\n", i, t.String(), posString(t.Pos))
	}
}

func posString(p *Pos) string {
	if p == nil {
		return "<synthetic>"
	}
	return p.String()
}
