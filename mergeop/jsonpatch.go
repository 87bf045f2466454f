package mergeop

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bunch-format/bunch/debug"
	"github.com/bunch-format/bunch/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSONPatch applies an RFC 6902 patch document to b and returns the result.
func JSONPatch(b *ir.Bunch, patch []byte) (*ir.Bunch, error) {
	if debug.Merge() {
		debug.Logf("json-patch %s on\n%s", patch, b)
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := json.Marshal(ir.BunchToAny(b))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(out, b.Order())
}

// MergePatch applies an RFC 7386 merge patch to b and returns the result.
func MergePatch(b *ir.Bunch, patch []byte) (*ir.Bunch, error) {
	if debug.Merge() {
		debug.Logf("merge-patch %s on\n%s", patch, b)
	}
	d, err := json.Marshal(ir.BunchToAny(b))
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(out, b.Order())
}

func fromJSON(d []byte, order ir.Order) (*ir.Bunch, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, err
	}
	b, err := ir.BunchFromAny(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return Merge(ir.NewBunchOrder(order), b), nil
}
