package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-vdf/ir"
	"github.com/signadot/go-vdf/parse"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string) (*ir.Tree, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

// eachFile calls f for each argument, or once for stdin if there are none.
func eachFile(cc *cli.Context, args []string, f func(path string, tree *ir.Tree) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		tree, err := getObjFile(cc, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		if err := f(path, tree); err != nil {
			return err
		}
	}
	return nil
}
