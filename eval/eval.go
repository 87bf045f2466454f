package eval

import (
	"fmt"

	"github.com/bunch-format/bunch/debug"
	"github.com/bunch-format/bunch/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the variable environment of an expression.
type Env map[string]any

// NewEnv exposes the top level keys of b as variables.
func NewEnv(b *ir.Bunch) Env {
	return Env(ir.BunchToAny(b))
}

// Eval compiles expression and runs it against b. The result is a plain
// Go value as produced by expr.
func Eval(expression string, b *ir.Bunch) (any, error) {
	if b == nil {
		b = ir.NewBunch()
	}
	env := NewEnv(b)
	opts := append(exprOpts(b), expr.Env(map[string]any(env)))
	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, expression, err)
	}
	res, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrRun, expression, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", expression, res)
	}
	return res, nil
}

// EvalValue is Eval with the result converted to a Value.
func EvalValue(expression string, b *ir.Bunch) (*ir.Value, error) {
	res, err := Eval(expression, b)
	if err != nil {
		return nil, err
	}
	v, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrRun, expression, err)
	}
	return v, nil
}
