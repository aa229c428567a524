package main

import (
	"fmt"

	vdf "github.com/signadot/go-vdf"
	"github.com/signadot/go-vdf/encode"
	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/libdiff"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p := []byte(args[0])
	if cfg.File {
		p, err = readFile(cc, args[0])
		if err != nil {
			return err
		}
	}
	opts := cfg.encOpts(cc.Out)
	return eachFile(cc, args[1:], func(path string, tree *ir.Tree) error {
		res, err := vdf.Patch(tree, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", path, err)
		}
		if !cfg.Diff {
			return encode.Encode(res, cc.Out, opts...)
		}
		lines := libdiff.DiffTrees(tree, res)
		if !libdiff.Changed(lines) {
			fmt.Fprintf(cc.Out, "%s: no change\n", path)
			return nil
		}
		fmt.Fprint(cc.Out, libdiff.Format(lines, cfg.diffColorizer(cc.Out)))
		return nil
	})
}
