package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-vdf/encode"
	"github.com/signadot/go-vdf/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	var f format.Format
	switch {
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := cfg.outFormat()
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
	}
	if !f.IsVDF() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.colorSet() {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorSet reports whether -color was given explicitly, e.g. -no-color.
func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Pos bool `cli:"name=pos desc='show token positions'"`

	Tokens *cli.Command
}

type CompareConfig struct {
	*MainConfig

	Ignore  []string
	Diff    bool `cli:"name=d aliases=diff desc='print a line diff when the documents differ'"`
	Ordered bool `cli:"name=ordered desc='compare entry order too (unimplemented)'"`

	Compare *cli.Command
}

func (cfg *CompareConfig) ignoreOpt(_ *cli.Context, a string) (any, error) {
	cfg.Ignore = append(cfg.Ignore, a)
	return a, nil
}

type EnvConfig struct {
	*MainConfig

	Suffix string `cli:"name=suffix desc='output file suffix' default=.env.vmf"`
	DryRun bool   `cli:"name=n desc='report what would be done without writing'"`

	Env *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Where    string `cli:"name=where desc='expr predicate over key, value, leaf, depth, path'"`
	MaxDepth int    `cli:"name=depth desc='maximum depth to select at (-1 for no limit)' default=-1"`
	Paths    bool   `cli:"name=paths desc='print only the paths of matches'"`

	Select *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File bool `cli:"name=f desc='patch arg is a file path'"`
	Diff bool `cli:"name=d aliases=diff desc='print a line diff against the patched document instead of the result'"`

	Patch *cli.Command
}
