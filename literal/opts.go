package literal

import "github.com/bunch-format/bunch/token"

const DefaultMaxDepth = 32

type evalOpts struct {
	maxDepth int
	comment  string
}

type Option func(*evalOpts)

// MaxDepth bounds the nesting of composite literals. Values <= 0 restore
// DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o *evalOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// CommentMarker sets the marker that starts a trailing comment after a
// value.
func CommentMarker(m string) Option {
	return func(o *evalOpts) {
		o.comment = m
	}
}

func newOpts(opts []Option) *evalOpts {
	o := &evalOpts{maxDepth: DefaultMaxDepth, comment: token.CommentMarker}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
