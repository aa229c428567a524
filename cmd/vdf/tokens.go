package main

import (
	"fmt"

	"github.com/signadot/go-vdf/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		d, err := readFile(cc, path)
		if err != nil {
			return err
		}
		toks, tErr := token.Tokenize(nil, d)
		for i := range toks {
			t := &toks[i]
			if cfg.Pos && t.Pos != nil {
				line, col := t.Pos.LineCol()
				fmt.Fprintf(cc.Out, "%d:%d\t%s\n", line+1, col+1, t.String())
				continue
			}
			fmt.Fprintln(cc.Out, t.String())
		}
		if tErr != nil {
			return fmt.Errorf("error tokenizing %s: %w", path, tErr)
		}
	}
	return nil
}
