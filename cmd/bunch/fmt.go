package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/bunch-format/bunch/encode"
	"github.com/bunch-format/bunch/format"
	"github.com/bunch-format/bunch/parse"

	"github.com/scott-cotton/cli"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && cfg.Check {
		return fmt.Errorf("%w: -w and -check are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
		}
		in, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
		out, err := cfg.canonical(in)
		if err != nil {
			return err
		}
		if cfg.Check {
			if !bytes.Equal(in, out) {
				fmt.Fprintln(cc.Out, "-")
				return cli.ExitCodeErr(1)
			}
			return nil
		}
		_, err = cc.Out.Write(out)
		return err
	}
	differ := false
	for _, file := range args {
		changed, err := cfg.fmtFile(cc.Out, file)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
		differ = differ || changed
	}
	if cfg.Check && differ {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// fmtFile formats file according to cfg, reporting whether its content
// differs from the canonical form.
func (cfg *FmtConfig) fmtFile(w io.Writer, file string) (bool, error) {
	in, err := os.ReadFile(file)
	if err != nil {
		return false, err
	}
	out, err := cfg.canonical(in, parse.ParseFilename(file))
	if err != nil {
		return false, err
	}
	changed := !bytes.Equal(in, out)
	switch {
	case cfg.Check:
		if changed {
			fmt.Fprintln(w, file)
		}
	case cfg.Write:
		if changed {
			theLog.Info("rewrote", "file", file)
			return true, os.WriteFile(file, out, 0644)
		}
	default:
		_, err = w.Write(out)
	}
	return changed, err
}

func (cfg *FmtConfig) canonical(in []byte, opts ...parse.ParseOption) ([]byte, error) {
	b, err := parse.Parse(in, append(cfg.parseOpts(), opts...)...)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	eOpts := append(cfg.Conf.EncodeOptions(), encode.EncodeFormat(format.BunchFormat))
	if err := encode.Encode(b, buf, eOpts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
