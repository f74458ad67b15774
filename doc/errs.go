package doc

import "errors"

var (
	ErrMissingKey = errors.New("missing key")
	ErrBadShape   = errors.New("unexpected shape")
)
