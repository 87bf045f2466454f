package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Merge bool
	Match bool
	Dir   bool
	Eval  bool
}

var d *debug

func init() {
	d = load()
}

func load() *debug {
	return &debug{
		Parse: boolEnv("BUNCH_DEBUG_PARSE"),
		Merge: boolEnv("BUNCH_DEBUG_MERGE"),
		Match: boolEnv("BUNCH_DEBUG_MATCH"),
		Dir:   boolEnv("BUNCH_DEBUG_DIR"),
		Eval:  boolEnv("BUNCH_DEBUG_EVAL"),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Match() bool {
	return d.Match
}
func Dir() bool {
	return d.Dir
}
func Eval() bool {
	return d.Eval
}
