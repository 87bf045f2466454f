package main

import (
	"fmt"

	"github.com/bunch-format/bunch/encode"
	"github.com/bunch-format/bunch/format"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		from, to = to, from
	}
	if cfg.Text {
		return textDiff(cfg, cc, from, to)
	}
	cs := libdiff.Diff(from, to)
	for _, c := range cs {
		fmt.Fprintln(cc.Out, c)
	}
	if len(cs) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func textDiff(cfg *DiffConfig, cc *cli.Context, from, to *ir.Bunch) error {
	opts := append(cfg.Conf.EncodeOptions(), encode.EncodeFormat(format.BunchFormat))
	a, err := encode.Serialize(from, opts...)
	if err != nil {
		return fmt.Errorf("error encoding first document: %w", err)
	}
	b, err := encode.Serialize(to, opts...)
	if err != nil {
		return fmt.Errorf("error encoding second document: %w", err)
	}
	d := libdiff.Text(a, b)
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}
