package main

import (
	"fmt"
	"os"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and optionally a file to which to apply it", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getMerged(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return fmt.Errorf("error decoding target: %w", err)
	}
	var res *ir.Bunch
	if cfg.Merge {
		res, err = mergeop.MergePatch(target, p)
	} else {
		res, err = mergeop.JSONPatch(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching with %s: %w", args[0], err)
	}
	return emit(cfg.MainConfig, cc, res)
}
