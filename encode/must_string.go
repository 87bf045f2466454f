package encode

import (
	"bytes"
	"strings"

	"github.com/bunch-format/bunch/ir"
)

func MustString(b *ir.Bunch) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(b, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
