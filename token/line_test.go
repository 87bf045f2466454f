package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Line
	}{
		{"blank", "", Line{Kind: Ignored}},
		{"whitespace", " \t ", Line{Kind: Ignored, Indent: " \t "}},
		{"comment", "# note", Line{Kind: Ignored}},
		{"indented comment", "    # a = 1", Line{Kind: Ignored, Indent: "    "}},
		{"assignment", "a = 1", Line{Kind: Assignment, Key: "a", Text: "1"}},
		{"assignment no spaces", "a=1", Line{Kind: Assignment, Key: "a", Text: "1"}},
		{"indented", "\t key  =  'v' ", Line{Kind: Assignment, Indent: "\t ", Key: "key", Text: "'v'"}},
		{"key with spaces", "my key = 2", Line{Kind: Assignment, Key: "my key", Text: "2"}},
		{"leftmost equals", `a = {"b": 1}`, Line{Kind: Assignment, Key: "a", Text: `{"b": 1}`}},
		{"leftmost colon", "a: = 1", Line{Kind: Malformed, Key: "a", Err: ErrBlockTrailer}},
		{"url value", `u = "http://x"`, Line{Kind: Assignment, Key: "u", Text: `"http://x"`}},
		{"block", "server:", Line{Kind: BlockHeader, Key: "server"}},
		{"block spaced", "  server :  ", Line{Kind: BlockHeader, Indent: "  ", Key: "server"}},
		{"block comment", "server: # main", Line{Kind: BlockHeader, Key: "server"}},
		{"empty value", "a =", Line{Kind: Assignment, Key: "a"}},
		{"no marker", "just words", Line{Kind: Malformed, Err: ErrNoMarker}},
		{"empty key", " = 1", Line{Kind: Malformed, Indent: " ", Err: ErrEmptyKey}},
		{"empty block key", ":", Line{Kind: Malformed, Err: ErrEmptyKey}},
	}
	ignore := cmpopts.IgnoreFields(Line{}, "Num", "Raw", "KeyOff", "MarkerOff", "TextOff", "Err")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw, 1, DefaultMarkers())
			if diff := cmp.Diff(tt.want, got, ignore); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if !errors.Is(got.Err, tt.want.Err) {
				t.Errorf("err = %v, want %v", got.Err, tt.want.Err)
			}
		})
	}
}

func TestClassifyOffsets(t *testing.T) {
	ln := Classify("  ab = [1]", 3, DefaultMarkers())
	if ln.Num != 3 {
		t.Errorf("num = %d", ln.Num)
	}
	if ln.Raw[ln.KeyOff:ln.KeyOff+len(ln.Key)] != "ab" {
		t.Errorf("key offset %d", ln.KeyOff)
	}
	if ln.Raw[ln.MarkerOff] != '=' {
		t.Errorf("marker offset %d", ln.MarkerOff)
	}
	if ln.Raw[ln.TextOff:] != "[1]" {
		t.Errorf("text offset %d", ln.TextOff)
	}
}

func TestClassifyCustomMarkers(t *testing.T) {
	m := Markers{Comment: ";", Assign: ":=", Block: "{"}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		raw  string
		kind Kind
		key  string
	}{
		{"; comment", Ignored, ""},
		{"# now a key := 1", Assignment, "# now a key"},
		{"a := 1", Assignment, "a"},
		{"a {", BlockHeader, "a"},
		{"a = 1", Malformed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Classify(tt.raw, 1, m)
			if got.Kind != tt.kind || got.Key != tt.key {
				t.Errorf("got %v %q, want %v %q", got.Kind, got.Key, tt.kind, tt.key)
			}
		})
	}
}

func TestMarkersValidate(t *testing.T) {
	tests := []struct {
		name string
		m    Markers
		ok   bool
	}{
		{"default", DefaultMarkers(), true},
		{"empty", Markers{Comment: "#", Assign: "", Block: ":"}, false},
		{"space", Markers{Comment: "#", Assign: "= ", Block: ":"}, false},
		{"same", Markers{Comment: "#", Assign: ":", Block: ":"}, false},
		{"prefix", Markers{Comment: "#", Assign: "=", Block: "=>"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v", err)
			}
			if err != nil && !errors.Is(err, ErrMarkers) {
				t.Errorf("error %v is not ErrMarkers", err)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\n", []string{"a", ""}},
		{"\ufeffa = 1\n", []string{"a = 1"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Split([]byte(tt.in))); diff != "" {
			t.Errorf("Split(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}
