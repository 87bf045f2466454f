package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/bunch-format/bunch/format"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/parse"
	"github.com/bunch-format/bunch/token"
	"github.com/google/go-cmp/cmp"
)

func sample() *ir.Bunch {
	tls := ir.NewBunch()
	tls.Set("cert", ir.FromString("/etc/cert.pem"))
	b := ir.NewBunch()
	b.Set("replica", ir.FromInt(3))
	b.SetBunch("tls", tls)
	b.Set("name", ir.FromString("web"))
	b.SetBunch("empty", nil)
	return b
}

func TestSerialize(t *testing.T) {
	got, err := Serialize(sample())
	if err != nil {
		t.Fatal(err)
	}
	want := `empty:
name    = "web"
replica = 3
tls:
    cert = "/etc/cert.pem"
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSerializeNamed(t *testing.T) {
	got, err := SerializeNamed("server", sample(), EncodeIndent("  "))
	if err != nil {
		t.Fatal(err)
	}
	want := `server:
  empty:
  name    = "web"
  replica = 3
  tls:
    cert = "/etc/cert.pem"
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	empty, err := SerializeNamed("x", ir.NewBunch())
	if err != nil {
		t.Fatal(err)
	}
	if empty != "x:\n" {
		t.Errorf("empty named = %q", empty)
	}
}

func TestSerializeEmpty(t *testing.T) {
	got, err := Serialize(ir.NewBunch())
	if err != nil || got != "" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestSerializeSortsByText(t *testing.T) {
	b := ir.NewBunch()
	b.Set("b", ir.FromInt(1))
	b.Set("B", ir.FromInt(2))
	b.Set("a b", ir.FromInt(3))
	b.Set("a", ir.FromInt(4))
	got, err := Serialize(b)
	if err != nil {
		t.Fatal(err)
	}
	want := "B   = 2\na   = 4\na b = 3\nb   = 1\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		"",
		"a = 1\n",
		"a:\n    b = 1\nc = 2\n",
		"a:\nb = 1\n",
		`x = [1, (2,), {3, 4}, {"k": (1, "v")}, None, 1.0, -0.5e-3]` + "\n",
		"s = 'it''s \\n \"quoted\"'\n",
		"deep:\n  deeper:\n    deepest:\n      v = true\n  w = 'x'\n",
		"k with space = 1\nunicode é = 'ü'\n",
		"n:\n\tm:\n\to = 1\n",
	}
	for _, d := range docs {
		t.Run(d, func(t *testing.T) {
			b, err := parse.ParseString(d)
			if err != nil {
				t.Fatal(err)
			}
			for _, opts := range [][]EncodeOption{nil, {EncodeIndent("\t")}} {
				s, err := Serialize(b, opts...)
				if err != nil {
					t.Fatal(err)
				}
				back, err := parse.ParseString(s)
				if err != nil {
					t.Fatalf("reparse of\n%s: %v", s, err)
				}
				if !b.Equal(back) {
					t.Errorf("round trip changed value:\n%s", s)
				}
				again, err := Serialize(back, opts...)
				if err != nil {
					t.Fatal(err)
				}
				if again != s {
					t.Errorf("not canonical:\n%s\nvs\n%s", s, again)
				}
			}
		})
	}
}

func TestRoundTripMarkers(t *testing.T) {
	m := token.Markers{Comment: ";", Assign: ":=", Block: "{"}
	b := sample()
	s, err := Serialize(b, EncodeMarkers(m))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "replica := 3") {
		t.Errorf("markers not used:\n%s", s)
	}
	back, err := parse.ParseString(s, parse.ParseMarkers(m))
	if err != nil {
		t.Fatal(err)
	}
	if !b.Equal(back) {
		t.Errorf("round trip changed value:\n%s", s)
	}
}

func TestSerializeErrors(t *testing.T) {
	tests := []struct {
		name string
		b    func() *ir.Bunch
		opts []EncodeOption
		err  error
	}{
		{"empty key", func() *ir.Bunch {
			b := ir.NewBunch()
			b.Set("", ir.FromInt(1))
			return b
		}, nil, ErrKey},
		{"marker in key", func() *ir.Bunch {
			b := ir.NewBunch()
			b.Set("a=b", ir.FromInt(1))
			return b
		}, nil, ErrKey},
		{"comment key", func() *ir.Bunch {
			b := ir.NewBunch()
			b.SetBunch("#x", nil)
			return b
		}, nil, ErrKey},
		{"untrimmed nested key", func() *ir.Bunch {
			in := ir.NewBunch()
			in.Set(" a", ir.Null())
			b := ir.NewBunch()
			b.SetBunch("n", in)
			return b
		}, nil, ErrKey},
		{"nan", func() *ir.Bunch {
			b := ir.NewBunch()
			b.Set("f", ir.FromFloat(math.NaN()))
			return b
		}, nil, nil},
		{"bad indent", sample, []EncodeOption{EncodeIndent("--")}, ErrIndent},
		{"no indent", sample, []EncodeOption{EncodeIndent("")}, ErrIndent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Serialize(tt.b(), tt.opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestExport(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(sample(), buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	want := `{
  "empty": {},
  "name": "web",
  "replica": 3,
  "tls": {
    "cert": "/etc/cert.pem"
  }
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("json (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := EncodeNamed("svc", sample(), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	y := buf.String()
	for _, frag := range []string{"svc:", "name: web", "replica: 3", "cert: /etc/cert.pem"} {
		if !strings.Contains(y, frag) {
			t.Errorf("yaml missing %q:\n%s", frag, y)
		}
	}
	if strings.Index(y, "name:") > strings.Index(y, "tls:") {
		t.Errorf("yaml keys not sorted:\n%s", y)
	}
}

func TestColorsKeepText(t *testing.T) {
	c := NewColors()
	c.Map = map[Colorable]func(string, ...any) string{}
	got, err := Serialize(sample(), EncodeColors(c))
	if err != nil {
		t.Fatal(err)
	}
	plain, _ := Serialize(sample())
	if got != plain {
		t.Errorf("identity colors changed output:\n%s", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(sample()); !strings.HasPrefix(got, "empty:\nname") {
		t.Errorf("got %q", got)
	}
}
