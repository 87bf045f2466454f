package dirbuild

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bunch-format/bunch/debug"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/mergeop"
	"github.com/bunch-format/bunch/parse"
)

// LoadLayers merges the file at base with every recognized file of
// dropInDir, taken in lexical order, later files overriding earlier ones.
// A missing base file or drop-in directory contributes nothing.
func LoadLayers(base, dropInDir string, opts ...DirOption) (*ir.Bunch, error) {
	dir := OpenDir(dropInDir, opts...)
	layers := []*ir.Bunch{ir.NewBunchOrder(parse.OrderFromOpts(dir.parseOpts...))}

	if base != "" {
		b, err := parse.ParseFile(base, dir.parseOpts...)
		switch {
		case err == nil:
			layers = append(layers, b)
		case errors.Is(err, fs.ErrNotExist):
			if debug.Dir() {
				debug.Logf("layers: no base file %s\n", base)
			}
		default:
			return nil, err
		}
	}

	files, err := dir.dropIns()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if debug.Dir() {
			debug.Logf("layers: drop-in %s\n", f)
		}
		b, err := parse.ParseFile(f, dir.parseOpts...)
		if err != nil {
			return nil, err
		}
		layers = append(layers, b)
	}
	return mergeop.Merge(layers...), nil
}

// dropIns lists the recognized regular files of dir.Root in lexical order.
func (dir *Dir) dropIns() ([]string, error) {
	if dir.Root == "" {
		return nil, nil
	}
	ents, err := os.ReadDir(dir.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", parse.ErrIO, err)
	}
	var res []string
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		if _, ok := dir.stripExtension(ent.Name()); !ok {
			continue
		}
		res = append(res, filepath.Join(dir.Root, ent.Name()))
	}
	slices.Sort(res)
	return res, nil
}
