package mergeop

import (
	"errors"
	"testing"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/parse"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string, opts ...parse.ParseOption) *ir.Bunch {
	t.Helper()
	b, err := parse.ParseString(s, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want map[string]any
	}{
		{"none", nil, map[string]any{}},
		{"single", []string{"a = 1\n"}, map[string]any{"a": 1}},
		{"scalar override", []string{"a = 1\n", "a = 2\n"}, map[string]any{"a": 2}},
		{"disjoint", []string{"a = 1\n", "b = 2\n"}, map[string]any{"a": 1, "b": 2}},
		{"nested",
			[]string{"x:\n    a = 1\n", "x:\n    b = 2\n"},
			map[string]any{"x": map[string]any{"a": 1, "b": 2}}},
		{"scalar between bunches",
			[]string{"x:\n    a = 1\n", "x = 5\n", "x:\n    b = 2\n"},
			map[string]any{"x": map[string]any{"b": 2}}},
		{"bunch replaced by scalar",
			[]string{"x:\n    a = 1\n", "x = [1]\n"},
			map[string]any{"x": []any{1}}},
		{"absent key does not cut run",
			[]string{"x:\n    a = 1\n", "y = 1\n", "x:\n    b = 2\n"},
			map[string]any{"x": map[string]any{"a": 1, "b": 2}, "y": 1}},
		{"deep",
			[]string{
				"s:\n  t:\n    a = 1\n    b = 1\n",
				"s:\n  t:\n    b = 2\n  u = 3\n",
				"s:\n  t:\n    c = 4\n",
			},
			map[string]any{"s": map[string]any{
				"t": map[string]any{"a": 1, "b": 2, "c": 4},
				"u": 3,
			}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := make([]*ir.Bunch, len(tt.in))
			for i, s := range tt.in {
				bs[i] = mustParse(t, s)
			}
			got := Merge(bs...)
			if diff := cmp.Diff(tt.want, ir.BunchToAny(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeDoesNotMutate(t *testing.T) {
	a := mustParse(t, "x:\n    l = [1]\n    n:\n        k = 1\n")
	b := mustParse(t, "x:\n    m = 2\n")
	aBefore, bBefore := a.Clone(), b.Clone()

	res := Merge(a, b)
	res.Get("x").Bunch.Get("l").Values[0].Int64 = 99
	res.Get("x").Bunch.Get("n").Bunch.Set("k", ir.FromInt(7))
	res.Get("x").Bunch.Set("m", ir.Null())

	if !a.Equal(aBefore) {
		t.Error("first input changed")
	}
	if !b.Equal(bBefore) {
		t.Error("second input changed")
	}
	single := Merge(a)
	if single == a || single.Get("x").Bunch == a.Get("x").Bunch {
		t.Error("single merge aliases its input")
	}
}

func TestMergeOrder(t *testing.T) {
	a := mustParse(t, "z = 1\nn:\n    y = 1\n", parse.ParseOrder(ir.SortedOrder))
	b := mustParse(t, "a = 2\nn:\n    x = 1\n")

	res := Merge(a, b)
	if res.Order() != ir.SortedOrder {
		t.Errorf("order = %v", res.Order())
	}
	if diff := cmp.Diff([]string{"a", "n", "z"}, res.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := res.Get("n").Bunch.Order(); got != ir.SortedOrder {
		t.Errorf("nested order = %v", got)
	}

	ins := Merge(b, a)
	if diff := cmp.Diff([]string{"a", "n", "z"}, ins.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y"}, ins.Get("n").Bunch.Keys()); diff != "" {
		t.Errorf("nested (-want +got):\n%s", diff)
	}
}

func TestMergeNil(t *testing.T) {
	a := mustParse(t, "a = 1\n")
	got := Merge(nil, a, nil)
	if diff := cmp.Diff(map[string]any{"a": 1}, ir.BunchToAny(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestJSONPatch(t *testing.T) {
	b := mustParse(t, "a = 1\nb:\n    c = [1, 2]\n")
	got, err := JSONPatch(b, []byte(`[
		{"op": "replace", "path": "/a", "value": "x"},
		{"op": "add", "path": "/b/c/-", "value": 3},
		{"op": "add", "path": "/d", "value": {"e": 1.5}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": "x",
		"b": map[string]any{"c": []any{1, 2, 3}},
		"d": map[string]any{"e": 1.5},
	}
	if diff := cmp.Diff(want, ir.BunchToAny(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if b.Get("a").Int64 != 1 {
		t.Error("input changed")
	}
	if _, err := JSONPatch(b, []byte(`[{"op": "remove", "path": "/nope"}]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("bad path: %v", err)
	}
	if _, err := JSONPatch(b, []byte(`{`)); !errors.Is(err, ErrPatch) {
		t.Errorf("bad patch: %v", err)
	}
}

func TestMergePatch(t *testing.T) {
	b := mustParse(t, "a = 1\nb:\n    c = 2\n    d = 3\n", parse.ParseOrder(ir.SortedOrder))
	got, err := MergePatch(b, []byte(`{"a": null, "b": {"d": "x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"b": map[string]any{"c": 2, "d": "x"}}
	if diff := cmp.Diff(want, ir.BunchToAny(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got.Order() != ir.SortedOrder {
		t.Errorf("order = %v", got.Order())
	}
}
