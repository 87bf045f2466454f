package encode

import (
	"github.com/bunch-format/bunch/format"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/token"
)

type EncState struct {
	format  format.Format
	indent  string
	markers token.Markers

	Color func(ir.Type, ColorAttr, string) string
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	return newState(opts).format
}

// EncodeIndent sets the indentation unit of nested blocks.
func EncodeIndent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}
func EncodeMarkers(m token.Markers) EncodeOption {
	return func(es *EncState) { es.markers = m }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{
		format:  format.BunchFormat,
		indent:  token.DefaultIndent,
		markers: token.DefaultMarkers(),
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
