package main

import (
	"fmt"

	"github.com/bunch-format/bunch/encode"
	"github.com/bunch-format/bunch/format"
	"github.com/bunch-format/bunch/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.encOptsFormat(cc.Out, cfg.outFormat(format.JSONFormat))
	for _, file := range args {
		b, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if cfg.Named != "" {
			err = encode.EncodeNamed(cfg.Named, b, cc.Out, opts...)
		} else {
			err = encode.Encode(b, cc.Out, opts...)
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// emit writes b to the command output in the selected format.
func emit(cfg *MainConfig, cc *cli.Context, b *ir.Bunch) error {
	if err := encode.Encode(b, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
