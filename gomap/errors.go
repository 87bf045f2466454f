package gomap

import "errors"

var ErrMapping = errors.New("mapping error")
