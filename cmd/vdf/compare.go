package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/libdiff"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
)

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		cfg.Compare.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	same, err := ir.Compare(a, b, cfg.Ignore, !cfg.Ordered)
	if err != nil {
		return err
	}
	if same {
		return nil
	}
	if cfg.Diff {
		fmt.Fprint(cc.Out, libdiff.Format(libdiff.DiffTrees(a, b), cfg.diffColorizer(cc.Out)))
	}
	return cli.ExitCodeErr(1)
}

func (cfg *MainConfig) diffColorizer(w io.Writer) func(libdiff.Op, string) string {
	if cfg.Color || (!cfg.colorSet() && isTerminal(w)) {
		return diffColor
	}
	return nil
}

func diffColor(op libdiff.Op, s string) string {
	switch op {
	case libdiff.Insert:
		return color.GreenString("%s", s)
	case libdiff.Delete:
		return color.RedString("%s", s)
	default:
		return s
	}
}
