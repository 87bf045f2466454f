package dirbuild

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/parse"
	"github.com/google/go-cmp/cmp"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		opts  []DirOption
		want  map[string]any
	}{
		{
			name: "files and dirs",
			files: map[string]string{
				"app.bunch":        "name = 'svc'\nport = 80\n",
				"db/primary.bunch": "host = 'h1'\n",
				"db/notes.txt":     "ignored\n",
			},
			want: map[string]any{
				"app": map[string]any{"name": "svc", "port": 80},
				"db": map[string]any{
					"primary": map[string]any{"host": "h1"},
				},
			},
		},
		{
			name: "extension ignores case",
			files: map[string]string{
				"A.BUNCH": "x = 1\n",
				"b.Bunch": "y = 2\n",
			},
			want: map[string]any{
				"A": map[string]any{"x": 1},
				"b": map[string]any{"y": 2},
			},
		},
		{
			name: "dot files skipped",
			files: map[string]string{
				".hidden.bunch": "x = 1\n",
				".git/a.bunch":  "x = 1\n",
				"visible.bunch": "x = 2\n",
			},
			want: map[string]any{"visible": map[string]any{"x": 2}},
		},
		{
			name: "directory overrides file",
			files: map[string]string{
				"svc.bunch":      "port = 80\nname = 'a'\n",
				"svc/port.bunch": "n = 1\n",
			},
			want: map[string]any{
				"svc": map[string]any{
					"name": "a",
					"port": map[string]any{"n": 1},
				},
			},
		},
		{
			name: "custom extension",
			files: map[string]string{
				"a.conf":  "x = 1\n",
				"b.bunch": "y = 2\n",
			},
			opts: []DirOption{WithExtension(".conf")},
			want: map[string]any{"a": map[string]any{"x": 1}},
		},
		{
			name:  "extension alone is not a name",
			files: map[string]string{".bunch": "x = 1\n", "x.bunch": ""},
			want:  map[string]any{"x": map[string]any{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, tt.files)
			b, err := Load(root, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, ir.BunchToAny(b)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadOrder(t *testing.T) {
	root := writeTree(t, map[string]string{
		"c.bunch":   "",
		"a.bunch":   "",
		"b/x.bunch": "",
	})
	b, err := Load(root, WithParseOptions(parse.ParseOrder(ir.InsertionOrder)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, b.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, parse.ErrIO) {
			t.Errorf("got %v, want ErrIO", err)
		}
	})
	t.Run("not a directory", func(t *testing.T) {
		root := writeTree(t, map[string]string{"f.bunch": ""})
		_, err := Load(filepath.Join(root, "f.bunch"))
		if !errors.Is(err, parse.ErrIO) {
			t.Errorf("got %v, want ErrIO", err)
		}
	})
	t.Run("bad file", func(t *testing.T) {
		root := writeTree(t, map[string]string{"sub/bad.bunch": "a = [\n"})
		_, err := Load(root)
		if !errors.Is(err, parse.ErrLiteral) {
			t.Errorf("got %v, want ErrLiteral", err)
		}
		var pe *parse.Error
		if !errors.As(err, &pe) || filepath.Base(pe.File) != "bad.bunch" {
			t.Errorf("got %v, want error naming bad.bunch", err)
		}
	})
}

func TestLoadLayers(t *testing.T) {
	root := writeTree(t, map[string]string{
		"base.bunch":         "level = 'info'\nhttp:\n    port = 80\n    host = 'h'\n",
		"conf.d/20-b.bunch":  "level = 'debug'\n",
		"conf.d/10-a.bunch":  "level = 'warn'\nhttp:\n    port = 8080\n",
		"conf.d/README":      "not a layer\n",
		"conf.d/sub/x.bunch": "level = 'error'\n",
	})
	b, err := LoadLayers(filepath.Join(root, "base.bunch"), filepath.Join(root, "conf.d"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"level": "debug",
		"http":  map[string]any{"port": 8080, "host": "h"},
	}
	if diff := cmp.Diff(want, ir.BunchToAny(b)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadLayersMissing(t *testing.T) {
	root := t.TempDir()
	b, err := LoadLayers(filepath.Join(root, "none.bunch"), filepath.Join(root, "none.d"))
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("got %d keys, want 0", b.Len())
	}
}
