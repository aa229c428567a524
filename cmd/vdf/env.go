package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/go-vdf/encode"
	"github.com/signadot/go-vdf/parse"
	"github.com/signadot/go-vdf/vmf"

	"github.com/scott-cotton/cli"

	"github.com/bmatcuk/doublestar/v4"
)

func env(cfg *EnvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Env.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no input", cli.ErrUsage)
	}
	paths, err := expandGlobs(args)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintf(cc.Out, "Processing %q\n", path)
		if !vmf.IsVMF(path) {
			fmt.Fprintf(cc.Out, "WARNING: %q does not end with \".vmf\", skipping\n", path)
			continue
		}
		if err := envFile(cfg, cc, path); err != nil {
			return fmt.Errorf("error processing %s: %w", path, err)
		}
	}
	return nil
}

func envFile(cfg *EnvConfig, cc *cli.Context, path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return err
	}
	stats, err := vmf.Extract(doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "kept %d entities, %d duplicates, %d dropped, %d solids, %d other\n",
		stats.Kept, stats.Duplicates, stats.Dropped, stats.Solids, stats.Other)
	if cfg.DryRun {
		return nil
	}
	out := path + cfg.Suffix
	if cfg.Suffix == "" {
		out = vmf.OutputPath(path)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Writing to %q\n", out)
	return os.WriteFile(out, buf.Bytes(), 0644)
}

// expandGlobs expands arguments containing glob metacharacters, "**"
// included. Other arguments are passed through untouched.
func expandGlobs(args []string) ([]string, error) {
	var res []string
	for _, a := range args {
		if !strings.ContainsAny(a, "*?[{") {
			res = append(res, a)
			continue
		}
		matches, err := doublestar.FilepathGlob(a)
		if err != nil {
			return nil, fmt.Errorf("%w: bad pattern %q: %w", cli.ErrUsage, a, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", a)
		}
		res = append(res, matches...)
	}
	return res, nil
}
