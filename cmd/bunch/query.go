package main

import (
	"fmt"

	"github.com/bunch-format/bunch/eval"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	b, err := getMerged(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	v, err := eval.EvalValue(args[0], b)
	if err != nil {
		return err
	}
	return emitValue(cfg.MainConfig, cc, v)
}
