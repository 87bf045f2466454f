package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/token"
	"github.com/google/go-cmp/cmp"
)

func toAny(t *testing.T, in string, opts ...ParseOption) map[string]any {
	t.Helper()
	b, err := ParseString(in, opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return ir.BunchToAny(b)
}

func TestParseOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]any
	}{
		{"empty", "", map[string]any{}},
		{"comments only", "# a\n\n   # b\n", map[string]any{}},
		{"assignment", "a = 1\n", map[string]any{"a": 1}},
		{"no trailing newline", "a = 'x'", map[string]any{"a": "x"}},
		{"nested",
			"a:\n    b = 1\nc = 2\n",
			map[string]any{"a": map[string]any{"b": 1}, "c": 2}},
		{"empty block",
			"a:\nb = 1\n",
			map[string]any{"a": map[string]any{}, "b": 1}},
		{"empty block at end", "a:\n", map[string]any{"a": map[string]any{}}},
		{"list", "a = [1, 2, 3]\n", map[string]any{"a": []any{1, 2, 3}}},
		{"last wins", "a = 1\na = 2\n", map[string]any{"a": 2}},
		{"block replaces scalar", "a = 1\na:\n  x = 1\n", map[string]any{"a": map[string]any{"x": 1}}},
		{"deep",
			"a:\n  b:\n    c:\n      d = true\n  e = null\nf = 1.5\n",
			map[string]any{
				"a": map[string]any{
					"b": map[string]any{"c": map[string]any{"d": true}},
					"e": nil,
				},
				"f": 1.5,
			}},
		{"dedent two levels",
			"a:\n\tb:\n\t\tc = 1\nd = 2\n",
			map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}, "d": 2}},
		{"tabs",
			"a:\n\tb = 1\n\tc = 2\n",
			map[string]any{"a": map[string]any{"b": 1, "c": 2}}},
		{"mixed but consistent",
			"a:\n \tb = 1\n \tc:\n \t  d = 2\n",
			map[string]any{"a": map[string]any{"b": 1, "c": map[string]any{"d": 2}}}},
		{"value with colon", `url = "http://x:80/"`, map[string]any{"url": "http://x:80/"}},
		{"map value", `m = {"k": (1, 2)}`, map[string]any{"m": map[string]any{"k": []any{1, 2}}}},
		{"trailing comment", "a = 1  # one\nb:  # block\n    c = 2\n",
			map[string]any{"a": 1, "b": map[string]any{"c": 2}}},
		{"crlf", "a:\r\n    b = 1\r\n", map[string]any{"a": map[string]any{"b": 1}}},
		{"key with spaces", "my key = 1\n", map[string]any{"my key": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, toAny(t, tt.in)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind error
		line int
	}{
		{"operator", "a = 1 + 1\n", ErrLiteral, 1},
		{"name", "a = b\n", ErrLiteral, 1},
		{"empty value", "a =\n", ErrLiteral, 1},
		{"no marker", "a = 1\nhello\n", ErrSyntax, 2},
		{"empty key", "= 1\n", ErrSyntax, 1},
		{"block trailer", "a: 1\n", ErrSyntax, 1},
		{"indented first line", "  a = 1\n", ErrIndentation, 1},
		{"unexpected indent", "a = 1\n    b = 2\n", ErrIndentation, 2},
		{"tab vs spaces",
			"a:\n    b = 1\n\t\t\t\tc = 2\n", ErrIndentation, 3},
		{"partial dedent",
			"a:\n    b = 1\n  c = 2\n", ErrIndentation, 3},
		{"deeper in body",
			"a:\n  b = 1\n    c = 2\n", ErrIndentation, 3},
		{"error after comments", "# c\n\n# d\nx y\n", ErrSyntax, 4},
		{"nested literal", "a:\n  b:\n    c = [1,\n", ErrLiteral, 3},
		{"invalid utf-8", "a = 'ok'\nb = 'x\xffy'\n", ErrLiteral, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.in)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("got %v, want %v", err, tt.kind)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("%T is not *Error", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line = %d, want %d", pe.Line, tt.line)
			}
			want := strings.Split(strings.ReplaceAll(tt.in, "\r", ""), "\n")[tt.line-1]
			if pe.Text != want {
				t.Errorf("text = %q, want %q", pe.Text, want)
			}
		})
	}
}

func TestIgnoredLinesAnywhere(t *testing.T) {
	base := "a:\n    b = 1\n    c:\n        d = 2\ne = 3\n"
	want := toAny(t, base)
	lines := strings.Split(strings.TrimSuffix(base, "\n"), "\n")
	for i := 0; i <= len(lines); i++ {
		for _, extra := range []string{"", "# comment", "      ", "\t# tabbed comment"} {
			mod := append(append(append([]string{}, lines[:i]...), extra), lines[i:]...)
			in := strings.Join(mod, "\n") + "\n"
			if diff := cmp.Diff(want, toAny(t, in)); diff != "" {
				t.Errorf("inserting %q at %d (-want +got):\n%s", extra, i, diff)
			}
		}
	}
}

func TestParseOrder(t *testing.T) {
	in := "z = 1\nm:\n    y = 1\n    b = 2\na = 3\n"
	b, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "m", "a"}, b.Keys()); diff != "" {
		t.Errorf("insertion (-want +got):\n%s", diff)
	}
	s, err := ParseString(in, ParseOrder(ir.SortedOrder))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "m", "z"}, s.Keys()); diff != "" {
		t.Errorf("sorted (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "y"}, s.Get("m").Bunch.Keys()); diff != "" {
		t.Errorf("nested sorted (-want +got):\n%s", diff)
	}
	if !b.Equal(s) {
		t.Error("order changed content")
	}
}

func TestParseMarkers(t *testing.T) {
	m := token.Markers{Comment: ";", Assign: ":=", Block: "{"}
	in := "; settings\nname := 'x' ; trailing\nsub {\n    n := 1\n"
	got := toAny(t, in, ParseMarkers(m))
	want := map[string]any{"name": "x", "sub": map[string]any{"n": 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ParseString("a = 1", ParseMarkers(token.Markers{Comment: "#", Assign: "=", Block: "="})); !errors.Is(err, token.ErrMarkers) {
		t.Errorf("clashing markers: %v", err)
	}
}

func TestParseMaxDepth(t *testing.T) {
	if _, err := ParseString("a = [[[1]]]", ParseMaxDepth(2)); !errors.Is(err, ErrLiteral) {
		t.Errorf("got %v", err)
	}
	if _, err := ParseString("a = [[[1]]]", ParseMaxDepth(3)); err != nil {
		t.Errorf("got %v", err)
	}
}

func TestParsePaths(t *testing.T) {
	paths := map[int][]string{}
	_, err := ParseString("a:\n    # c\n    b = 1\n    c:\nd = 2\n", ParsePaths(paths))
	if err != nil {
		t.Fatal(err)
	}
	want := map[int][]string{
		1: {"a"},
		3: {"a", "b"},
		4: {"a", "c"},
		5: {"d"},
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestErrorColumn(t *testing.T) {
	_, err := ParseString("key = [1, x]\n")
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %v", err)
	}
	if pe.Text[pe.Col:] != "x]" {
		t.Errorf("col %d points at %q", pe.Col, pe.Text[pe.Col:])
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.bunch")
	if err := os.WriteFile(path, []byte("a:\n  b = 'c'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := b.GetPath("a.b"); v == nil || v.String != "c" {
		t.Errorf("a.b = %v", v)
	}

	_, err = ParseFile(filepath.Join(dir, "missing.bunch"))
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}

	bad := filepath.Join(dir, "bad.bunch")
	if err := os.WriteFile(bad, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ParseFile(bad)
	var pe *Error
	if !errors.As(err, &pe) || pe.File != bad {
		t.Errorf("bad file: %v", err)
	}
}
