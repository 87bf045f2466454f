package encode

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bunch-format/bunch/format"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/literal"
)

// Encode writes b to w.
func Encode(b *ir.Bunch, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(ir.BunchToAny(b), w)
	case format.YAMLFormat:
		return encodeYAML(bunchYAML(b), w)
	}
	if err := es.check(); err != nil {
		return err
	}
	entries, err := es.entries(b, "", nil)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := io.WriteString(w, e.out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// EncodeNamed writes b as the body of a block called name.
func EncodeNamed(name string, b *ir.Bunch, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(map[string]any{name: ir.BunchToAny(b)}, w)
	case format.YAMLFormat:
		return encodeYAML(namedYAML(name, b), w)
	}
	if err := es.check(); err != nil {
		return err
	}
	if err := es.checkKey(name, nil); err != nil {
		return err
	}
	e, err := es.named(name, b, "", nil)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, e.out+"\n")
	return err
}

func Serialize(b *ir.Bunch, opts ...EncodeOption) (string, error) {
	sb := &strings.Builder{}
	if err := Encode(b, sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func SerializeNamed(name string, b *ir.Bunch, opts ...EncodeOption) (string, error) {
	sb := &strings.Builder{}
	if err := EncodeNamed(name, b, sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// entry is one rendered key. plain is used for ordering, out is written.
type entry struct {
	plain string
	out   string
}

func (es *EncState) entries(b *ir.Bunch, prefix string, path []string) ([]entry, error) {
	keys := b.Keys()
	width := 0
	for _, k := range keys {
		if err := es.checkKey(k, path); err != nil {
			return nil, err
		}
		if b.Get(k).Type != ir.BunchType {
			width = max(width, utf8.RuneCountInString(k))
		}
	}
	res := make([]entry, 0, len(keys))
	for _, k := range keys {
		v := b.Get(k)
		if v.Type == ir.BunchType {
			e, err := es.named(k, v.Bunch, prefix, path)
			if err != nil {
				return nil, err
			}
			res = append(res, e)
			continue
		}
		lit, err := literal.Format(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ir.JoinPath(append(slices.Clip(path), k)), err)
		}
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(k))
		sep := " " + es.markers.Assign + " "
		e := entry{plain: prefix + k + pad + sep + lit}
		e.out = e.plain
		if es.Color != nil {
			e.out = prefix + es.Color(v.Type, KeyColor, k) + pad +
				es.Color(v.Type, SepColor, sep) + es.Color(v.Type, ValueColor, lit)
		}
		res = append(res, e)
	}
	slices.SortFunc(res, func(a, b entry) int {
		return strings.Compare(a.plain, b.plain)
	})
	return res, nil
}

func (es *EncState) named(name string, b *ir.Bunch, prefix string, path []string) (entry, error) {
	e := entry{plain: prefix + name + es.markers.Block}
	e.out = e.plain
	if es.Color != nil {
		e.out = prefix + es.Color(ir.BunchType, KeyColor, name) + es.Color(ir.BunchType, SepColor, es.markers.Block)
	}
	kids, err := es.entries(b, prefix+es.indent, append(slices.Clip(path), name))
	if err != nil {
		return entry{}, err
	}
	plain, out := []string{e.plain}, []string{e.out}
	for _, k := range kids {
		plain = append(plain, k.plain)
		out = append(out, k.out)
	}
	e.plain = strings.Join(plain, "\n")
	e.out = strings.Join(out, "\n")
	return e, nil
}

func (es *EncState) check() error {
	if es.indent == "" || strings.TrimSpace(es.indent) != "" {
		return fmt.Errorf("%w: %q", ErrIndent, es.indent)
	}
	return es.markers.Validate()
}

// checkKey rejects keys that would not classify back to themselves.
func (es *EncState) checkKey(k string, path []string) error {
	m := es.markers
	if k == "" || strings.TrimSpace(k) != k ||
		strings.ContainsAny(k, "\r\n") ||
		strings.Contains(k, m.Assign) || strings.Contains(k, m.Block) ||
		strings.HasPrefix(k, m.Comment) {
		if len(path) == 0 {
			return fmt.Errorf("%w: %q", ErrKey, k)
		}
		return fmt.Errorf("%w: %q in %s", ErrKey, k, ir.JoinPath(path))
	}
	return nil
}
