package main

import (
	"fmt"

	vdf "github.com/signadot/go-vdf"
	"github.com/signadot/go-vdf/encode"
	"github.com/signadot/go-vdf/ir"

	"github.com/scott-cotton/cli"
)

func selectEntries(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Where == "" {
		return fmt.Errorf("%w: select requires -where", cli.ErrUsage)
	}
	opts := cfg.encOpts(cc.Out)
	return eachFile(cc, args, func(path string, tree *ir.Tree) error {
		matches, err := vdf.Select(tree, cfg.Where, vdf.SelectMaxDepth(cfg.MaxDepth))
		if err != nil {
			return err
		}
		if cfg.Paths {
			for i := range matches {
				fmt.Fprintln(cc.Out, matches[i].PathString())
			}
			return nil
		}
		res := &ir.Tree{}
		for i := range matches {
			res.Append(matches[i].Entry.Clone())
		}
		return encode.Encode(res, cc.Out, opts...)
	})
}
