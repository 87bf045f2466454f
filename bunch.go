package bunch

import (
	"github.com/bunch-format/bunch/dirbuild"
	"github.com/bunch-format/bunch/encode"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/libdiff"
	"github.com/bunch-format/bunch/mergeop"
	"github.com/bunch-format/bunch/parse"
)

func Parse(d []byte, opts ...parse.ParseOption) (*ir.Bunch, error) {
	return parse.Parse(d, opts...)
}

func ParseString(s string, opts ...parse.ParseOption) (*ir.Bunch, error) {
	return parse.ParseString(s, opts...)
}

func ParseFile(path string, opts ...parse.ParseOption) (*ir.Bunch, error) {
	return parse.ParseFile(path, opts...)
}

// ParseDir maps the directory tree at path onto a bunch; see dirbuild.Load.
func ParseDir(path string, opts ...dirbuild.DirOption) (*ir.Bunch, error) {
	return dirbuild.Load(path, opts...)
}

// Merge merges bunches in increasing priority.
func Merge(bunches ...*ir.Bunch) *ir.Bunch {
	return mergeop.Merge(bunches...)
}

func Serialize(b *ir.Bunch, opts ...encode.EncodeOption) (string, error) {
	return encode.Serialize(b, opts...)
}

func SerializeNamed(name string, b *ir.Bunch, opts ...encode.EncodeOption) (string, error) {
	return encode.SerializeNamed(name, b, opts...)
}

func Diff(from, to *ir.Bunch) []libdiff.Change {
	return libdiff.Diff(from, to)
}

// Get returns the value at a dotted path.
func Get(b *ir.Bunch, path string) (*ir.Value, error) {
	return b.GetPath(path)
}
