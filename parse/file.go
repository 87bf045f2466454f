package parse

import (
	"fmt"
	"io"
	"os"

	"github.com/bunch-format/bunch/ir"
)

// ParseFile reads and parses the file at path. Read failures wrap ErrIO.
func ParseFile(path string, opts ...ParseOption) (*ir.Bunch, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Parse(d, append([]ParseOption{ParseFilename(path)}, opts...)...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Bunch, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Parse(d, opts...)
}
