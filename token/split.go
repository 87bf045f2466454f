package token

import "strings"

const bom = "\ufeff"

// Split splits a document into lines. A trailing newline does not start a
// new line and a carriage return before a newline is dropped.
func Split(d []byte) []string {
	s := strings.TrimPrefix(string(d), bom)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// ClassifyAll splits d and classifies every line.
func ClassifyAll(d []byte, m Markers) []Line {
	raw := Split(d)
	res := make([]Line, len(raw))
	for i, r := range raw {
		res[i] = Classify(r, i+1, m)
	}
	return res
}
