package mergeop

import "errors"

var ErrPatch = errors.New("patch error")
