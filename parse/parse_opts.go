package parse

import (
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/literal"
	"github.com/bunch-format/bunch/token"
)

type parseOpts struct {
	markers  token.Markers
	order    ir.Order
	maxDepth int
	filename string
	paths    map[int][]string
}

type ParseOption func(*parseOpts)

func ParseMarkers(m token.Markers) ParseOption {
	return func(o *parseOpts) { o.markers = m }
}

// ParseOrder selects the key order of every bunch the parser builds.
func ParseOrder(ord ir.Order) ParseOption {
	return func(o *parseOpts) { o.order = ord }
}

// ParseMaxDepth bounds composite literal nesting.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseFilename names the input in errors.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParsePaths records, for each assignment and block header, the key path it
// defines indexed by 1-based line number.
func ParsePaths(m map[int][]string) ParseOption {
	return func(o *parseOpts) { o.paths = m }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{
		markers:  token.DefaultMarkers(),
		order:    ir.InsertionOrder,
		maxDepth: literal.DefaultMaxDepth,
	}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func OrderFromOpts(opts ...ParseOption) ir.Order {
	return newParseOpts(opts).order
}

func MarkersFromOpts(opts ...ParseOption) token.Markers {
	return newParseOpts(opts).markers
}

func (o *parseOpts) literalOpts() []literal.Option {
	return []literal.Option{
		literal.MaxDepth(o.maxDepth),
		literal.CommentMarker(o.markers.Comment),
	}
}
