package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/mergeop"
	"github.com/bunch-format/bunch/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Bunch, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", parse.ErrIO, err)
		}
		defer f.Close()
		r = f
		opts = append(opts, parse.ParseFilename(path))
	} else {
		r = cc.In
	}
	return parse.ParseReader(r, opts...)
}

// getMerged reads files, or stdin when there are none, and merges them in
// order.
func getMerged(cfg *MainConfig, cc *cli.Context, files []string) (*ir.Bunch, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	bs := make([]*ir.Bunch, 0, len(files))
	for _, file := range files {
		b, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return nil, err
		}
		bs = append(bs, b)
	}
	return mergeop.Merge(bs...), nil
}
