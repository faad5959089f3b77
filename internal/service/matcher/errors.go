package matcher

import "errors"

var (
	ErrInvalidOrigin = errors.New("invalid origin coordinate")
	ErrInvalidRadius = errors.New("invalid radius")
)
