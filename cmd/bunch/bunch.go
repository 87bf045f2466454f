package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bunch-format/bunch/internal/conf"

	"github.com/scott-cotton/cli"
)

func bunchMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.loadConf(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) loadConf() error {
	src := conf.DefaultSource()
	if cfg.ConfigPath != "" {
		src = conf.SourceAt(cfg.ConfigPath)
	}
	c, err := src.Read()
	if err != nil {
		return fmt.Errorf("error reading configuration: %w", err)
	}
	cfg.Conf = c
	logLevel.Set(c.LogLevel)
	theLog.Debug("configuration", "path", src.Path, "dropins", src.DropInDir)
	return nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	cfg.ConfigPath = a
	return a, nil
}
