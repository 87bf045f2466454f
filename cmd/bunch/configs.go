package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bunch-format/bunch/dirbuild"
	"github.com/bunch-format/bunch/encode"
	"github.com/bunch-format/bunch/format"
	"github.com/bunch-format/bunch/internal/conf"
	"github.com/bunch-format/bunch/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	OutFormat  *format.Format
	ConfigPath string
	Conf       conf.Config

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return cfg.Conf.ParseOptions()
}

func (cfg *MainConfig) dirOpts() []dirbuild.DirOption {
	return cfg.Conf.DirOptions()
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

// encOpts returns encoder options for w in the -O format, bunch by
// default.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return cfg.encOptsFormat(w, cfg.outFormat(format.BunchFormat))
}

func (cfg *MainConfig) encOptsFormat(w io.Writer, f format.Format) []encode.EncodeOption {
	res := append(cfg.Conf.EncodeOptions(), encode.EncodeFormat(f))
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	switch cfg.Conf.Color {
	case conf.ColorAlways:
		return true
	case conf.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to source file instead of stdout'"`
	Check bool `cli:"name=check desc='list files whose formatting differs and fail'"`

	Fmt *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Named string `cli:"name=n desc='wrap the document in a block of this name'"`

	Dump *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text    bool `cli:"name=text desc='show a line diff of the canonical forms'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m desc='treat the patch as a JSON merge patch'"`

	Patch *cli.Command
}

type DirConfig struct {
	*MainConfig

	Dir *cli.Command
}

type LayersConfig struct {
	*MainConfig

	Layers *cli.Command
}
