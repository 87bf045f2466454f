package main

import (
	"sync"

	"github.com/bunch-format/bunch/internal/conf"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/parse"
	"github.com/bunch-format/bunch/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
	cfg  conf.Config
}

type document struct {
	uri     string
	content string
	version int32

	bunch *ir.Bunch
	err   error
	// paths maps 1-based line numbers to the key path defined there.
	paths map[int][]string
	lines []token.Line
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := ds.load(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) load(uri string, content string, version int32) *document {
	paths := make(map[int][]string)
	opts := append(ds.cfg.ParseOptions(), parse.ParsePaths(paths))
	b, err := parse.ParseString(content, opts...)
	return &document{
		uri:     uri,
		content: content,
		version: version,
		bunch:   b,
		err:     err,
		paths:   paths,
		lines:   token.ClassifyAll([]byte(content), ds.cfg.Markers),
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// line returns the classified line at the 0-based LSP line number.
func (doc *document) line(n int) *token.Line {
	if n < 0 || n >= len(doc.lines) {
		return nil
	}
	return &doc.lines[n]
}

// utf16Len is the length of s in UTF-16 code units, the unit of LSP
// character offsets.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// byteOffset converts a UTF-16 character offset in s to a byte offset.
func byteOffset(s string, char int) int {
	n := 0
	for i, r := range s {
		if n >= char {
			return i
		}
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return len(s)
}
