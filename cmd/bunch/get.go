package main

import (
	"fmt"

	"github.com/bunch-format/bunch/format"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/literal"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	b, err := getMerged(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	v, err := b.GetPath(path)
	if err != nil {
		return fmt.Errorf("error getting %s: %w", path, err)
	}
	return emitValue(cfg.MainConfig, cc, v)
}

// emitValue writes a bunch like emit and any other value as a literal, or
// as JSON/YAML when that output format is selected.
func emitValue(cfg *MainConfig, cc *cli.Context, v *ir.Value) error {
	if v.Type == ir.BunchType {
		return emit(cfg, cc, v.Bunch)
	}
	if cfg.outFormat(format.BunchFormat) != format.BunchFormat {
		wrapped := ir.NewBunch()
		wrapped.Set("value", v)
		return emit(cfg, cc, wrapped)
	}
	s, err := literal.Format(v)
	if err != nil {
		return fmt.Errorf("error formatting result: %w", err)
	}
	_, err = fmt.Fprintln(cc.Out, s)
	return err
}
