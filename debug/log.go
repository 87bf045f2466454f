package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/literal"
)

// Logf writes to stderr. Bunch, value and JSON-like arguments are rendered
// as text first.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Bunch:
			d, err := json.MarshalIndent(ir.BunchToAny(x), "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Bunch] %v", ir.BunchToAny(x))
				continue
			}
			args[i] = string(d)
		case *ir.Value:
			s, err := literal.Format(x)
			if err != nil {
				args[i] = fmt.Sprintf("[%s]", x.Type)
				continue
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
