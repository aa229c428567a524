package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: vdf/v, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "vdf").
		WithSynopsis("vdf [opts] command [opts]").
		WithDescription("vdf is a tool for working with Valve KeyValues (VDF/VMF) documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vdfMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			TokensCommand(cfg),
			CompareCommand(cfg),
			EnvCommand(cfg),
			SelectCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("parse documents and print them in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("tokens").
		WithAliases("tok", "t").
		WithOpts(opts...).
		WithSynopsis("tokens [-pos] [files]").
		WithDescription("print the token stream of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
	cfg.Tokens = cmd
	return cmd
}

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "i",
			Aliases:     []string{"ignore"},
			Description: "ignore entries with this key (repeatable)",
			Type:        cli.NamedFuncOpt(cfg.ignoreOpt, "(key)"),
		})
	cmd := cli.NewCommand("compare").
		WithAliases("c", "cmp", "diff").
		WithOpts(opts...).
		WithSynopsis("compare [-i key]... [-d] a b").
		WithDescription("compare two documents ignoring entry order; exits 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
	cfg.Compare = cmd
	return cmd
}

func EnvCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EnvConfig{MainConfig: mainCfg, Suffix: ".env.vmf"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("env").
		WithAliases("e").
		WithOpts(opts...).
		WithSynopsis("env [-n] [-suffix s] files-or-globs...").
		WithDescription("extract the environment entities of .vmf maps into <file>.env.vmf").
		WithRun(func(cc *cli.Context, args []string) error {
			return env(cfg, cc, args)
		})
	cfg.Env = cmd
	return cmd
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg, MaxDepth: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("select").
		WithAliases("s", "sel").
		WithOpts(opts...).
		WithSynopsis("select -where <expr> [files]").
		WithDescription("print entries matching an expr predicate").
		WithRun(func(cc *cli.Context, args []string) error {
			return selectEntries(cfg, cc, args)
		})
	cfg.Select = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-f] [-d] <json-patch> [files]").
		WithDescription("apply an RFC 6902 JSON patch to the JSON form of documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
