package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bunch-format/bunch/internal/conf"
)

func newFmtConfig(write, check bool) *FmtConfig {
	return &FmtConfig{
		MainConfig: &MainConfig{Conf: conf.Default()},
		Write:      write,
		Check:      check,
	}
}

func TestFmtFile(t *testing.T) {
	const messy = "# comment\nz = 1\na:\n  y = 'x'\n"
	const canon = "a:\n    y = \"x\"\nz = 1\n"
	tests := []struct {
		name        string
		write       bool
		check       bool
		in          string
		wantOut     string
		wantFile    string
		wantChanged bool
	}{
		{"stdout", false, false, messy, canon, messy, true},
		{"write", true, false, messy, "", canon, true},
		{"check dirty", false, true, messy, "FILE\n", messy, true},
		{"check clean", false, true, canon, "", canon, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "x.bunch")
			if err := os.WriteFile(p, []byte(tt.in), 0o644); err != nil {
				t.Fatal(err)
			}
			buf := bytes.NewBuffer(nil)
			changed, err := newFmtConfig(tt.write, tt.check).fmtFile(buf, p)
			if err != nil {
				t.Fatal(err)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			wantOut := tt.wantOut
			if wantOut == "FILE\n" {
				wantOut = p + "\n"
			}
			if got := buf.String(); got != wantOut {
				t.Errorf("output = %q, want %q", got, wantOut)
			}
			got, err := os.ReadFile(p)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.wantFile {
				t.Errorf("file = %q, want %q", got, tt.wantFile)
			}
		})
	}
}

func TestFmtFileError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.bunch")
	if err := os.WriteFile(p, []byte("a = [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := newFmtConfig(false, false).fmtFile(bytes.NewBuffer(nil), p); err == nil {
		t.Error("expected error")
	}
}
