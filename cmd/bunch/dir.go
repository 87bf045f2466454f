package main

import (
	"fmt"

	"github.com/bunch-format/bunch/dirbuild"

	"github.com/scott-cotton/cli"
)

func dir(cfg *DirConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dir.Parse(cc, args)
	if err != nil {
		cfg.Dir.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dir requires a directory", cli.ErrUsage)
	}
	b, err := dirbuild.Load(args[0], cfg.dirOpts()...)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	return emit(cfg.MainConfig, cc, b)
}

func layers(cfg *LayersConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Layers.Parse(cc, args)
	if err != nil {
		cfg.Layers.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: layers requires a base file and a drop-in directory", cli.ErrUsage)
	}
	b, err := dirbuild.LoadLayers(args[0], args[1], cfg.dirOpts()...)
	if err != nil {
		return fmt.Errorf("error loading layers: %w", err)
	}
	return emit(cfg.MainConfig, cc, b)
}
