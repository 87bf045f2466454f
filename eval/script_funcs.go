package eval

import (
	"errors"
	"os"

	"github.com/bunch-format/bunch/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(b *ir.Bunch) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			v, err := b.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := b.GetPath(params[0].(string))
			switch {
			case err == nil:
				return true, nil
			case errors.Is(err, ir.ErrNotFound), errors.Is(err, ir.ErrNotBunch):
				return false, nil
			default:
				return nil, err
			}
		},
			new(func(string) bool)),
		expr.Function("keys", func(params ...any) (any, error) {
			v, err := b.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			if v.Type != ir.BunchType {
				return nil, ir.ErrNotBunch
			}
			ks := v.Bunch.Keys()
			res := make([]any, len(ks))
			for i, k := range ks {
				res[i] = k
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
