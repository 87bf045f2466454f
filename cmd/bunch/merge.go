package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 files", cli.ErrUsage)
	}
	b, err := getMerged(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	theLog.Debug("merged", "files", len(args), "keys", b.Len())
	return emit(cfg.MainConfig, cc, b)
}
