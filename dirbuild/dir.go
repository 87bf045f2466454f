// Package dirbuild builds bunches from directory trees.
//
// Load maps a directory onto a bunch: every subdirectory becomes a nested
// bunch and every file with the recognized extension becomes a nested
// bunch named after the file without its extension. LoadLayers reads a
// base file and a drop-in directory and merges them in priority order.
package dirbuild

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bunch-format/bunch/debug"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/mergeop"
	"github.com/bunch-format/bunch/parse"
	"github.com/bunch-format/bunch/token"
)

type Dir struct {
	Root      string
	Extension string

	parseOpts []parse.ParseOption
}

type DirOption func(*Dir)

// WithExtension sets the recognized file extension, matched without
// regard to case.
func WithExtension(ext string) DirOption {
	return func(d *Dir) { d.Extension = ext }
}

func WithParseOptions(opts ...parse.ParseOption) DirOption {
	return func(d *Dir) { d.parseOpts = append(d.parseOpts, opts...) }
}

func OpenDir(path string, opts ...DirOption) *Dir {
	dir := &Dir{Root: path, Extension: token.DefaultExtension}
	for _, opt := range opts {
		opt(dir)
	}
	return dir
}

// Load parses the directory tree at path into a single bunch. When a file
// and a directory share a name, the directory's definitions override the
// file's.
func Load(path string, opts ...DirOption) (*ir.Bunch, error) {
	return OpenDir(path, opts...).Load()
}

func (dir *Dir) Load() (*ir.Bunch, error) {
	fi, err := os.Stat(dir.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", parse.ErrIO, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", parse.ErrIO, dir.Root)
	}
	return dir.load(dir.Root)
}

func (dir *Dir) load(path string) (*ir.Bunch, error) {
	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", parse.ErrIO, err)
	}
	res := ir.NewBunchOrder(parse.OrderFromOpts(dir.parseOpts...))
	for _, ent := range ents {
		name := ent.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(path, name)
		isDir, err := isDirEntry(full, ent)
		if err != nil {
			return nil, err
		}
		var (
			key string
			sub *ir.Bunch
		)
		switch {
		case isDir:
			key = name
			sub, err = dir.load(full)
		default:
			var ok bool
			key, ok = dir.stripExtension(name)
			if !ok {
				continue
			}
			sub, err = parse.ParseFile(full, dir.parseOpts...)
		}
		if err != nil {
			return nil, err
		}
		if debug.Dir() {
			debug.Logf("dir: %s -> %q\n", full, key)
		}
		if prev, ok := res.Lookup(key); ok {
			if isDir {
				sub = mergeop.Merge(prev.Bunch, sub)
			} else {
				sub = mergeop.Merge(sub, prev.Bunch)
			}
		}
		res.SetBunch(key, sub)
	}
	return res, nil
}

// stripExtension returns name without the recognized extension, and
// whether it had one.
func (dir *Dir) stripExtension(name string) (string, bool) {
	n, e := len(name), len(dir.Extension)
	if n <= e || !strings.EqualFold(name[n-e:], dir.Extension) {
		return "", false
	}
	return name[:n-e], true
}

func isDirEntry(full string, ent fs.DirEntry) (bool, error) {
	if ent.Type()&fs.ModeSymlink == 0 {
		return ent.IsDir(), nil
	}
	fi, err := os.Stat(full)
	if err != nil {
		return false, fmt.Errorf("%w: %w", parse.ErrIO, err)
	}
	return fi.IsDir(), nil
}
