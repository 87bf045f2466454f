// Package gomap maps bunches onto Go values and back.
//
// The mapping goes through the JSON form of a bunch, so the encoding/json
// struct tags and Unmarshaler implementations of the target type apply.
// Types implementing IRFromer or IRToer take over the mapping themselves.
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/parse"
)

type fromOpts struct {
	strict    bool
	parseOpts []parse.ParseOption
}

type FromOption func(*fromOpts)

// Strict rejects keys with no corresponding struct field.
func Strict(v bool) FromOption { return func(o *fromOpts) { o.strict = v } }

func WithParseOptions(opts ...parse.ParseOption) FromOption {
	return func(o *fromOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}

type IRFromer interface {
	FromIR(*ir.Bunch) error
}

type IRToer interface {
	ToIR() (*ir.Bunch, error)
}

// Load parses d and maps the result onto p.
func Load(d []byte, p any, opts ...FromOption) error {
	fo := &fromOpts{}
	for _, f := range opts {
		f(fo)
	}
	b, err := parse.Parse(d, fo.parseOpts...)
	if err != nil {
		return err
	}
	return FromIR(b, p, opts...)
}

// FromIR maps b onto p, which must be a non-nil pointer.
func FromIR(b *ir.Bunch, p any, opts ...FromOption) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(b)
	}
	fo := &fromOpts{}
	for _, f := range opts {
		f(fo)
	}
	d, err := json.Marshal(ir.BunchToAny(b))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMapping, err)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	if fo.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("%w: %w", ErrMapping, err)
	}
	return nil
}

// ToIR maps v, which must marshal to a JSON object, onto a bunch.
// Nested objects become nested bunches.
func ToIR(v any) (*ir.Bunch, error) {
	if x, ok := v.(IRToer); ok {
		return x.ToIR()
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapping, err)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapping, err)
	}
	b, err := ir.BunchFromAny(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapping, err)
	}
	return b, nil
}
