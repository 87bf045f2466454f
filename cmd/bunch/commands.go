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
			Description: "output format: bunch/b, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "config",
			Description: "configuration file, drop-ins are read from <file>.d",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "bunch").
		WithSynopsis("bunch [opts] command [opts]").
		WithDescription("bunch is a tool for working with bunch documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bunchMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			DumpCommand(cfg),
			MergeCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg),
			DirCommand(cfg),
			LayersCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w | -check] [files]").
		WithDescription("rewrite bunch documents in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtFiles(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-n name] [files]").
		WithDescription("convert bunch documents to json (default), yaml or bunch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge file1 file2 [files...]").
		WithDescription("merge documents, later files taking priority").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a dotted path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-text] [-r] a b").
		WithDescription("diff two documents, exiting 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expression> [files]").
		WithDescription(queryDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `query evaluates an expression against a document.

The expression language is expr (https://expr-lang.org). Top level keys
are variables and nested blocks are maps. In addition:

  getpath("a.b")  value at a dotted path
  haspath("a.b")  whether a dotted path exists
  keys("a")       keys of the block at a dotted path, "" for the top
  getenv("NAME")  environment variable

With several files, the query runs against their merge.`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-m] <patch.json> [file]").
		WithDescription("apply an RFC 6902 JSON patch, or with -m a JSON merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DirCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DirConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dir, "dir").
		WithSynopsis("dir <directory>").
		WithDescription("read a directory tree as one document").
		WithRun(func(cc *cli.Context, args []string) error {
			return dir(cfg, cc, args)
		})
}

func LayersCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LayersConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Layers, "layers").
		WithAliases("l").
		WithSynopsis("layers <base-file> <drop-in-dir>").
		WithDescription("merge a base file with the documents of a drop-in directory").
		WithRun(func(cc *cli.Context, args []string) error {
			return layers(cfg, cc, args)
		})
}
