package fee

import "errors"

var (
	ErrInvalidDistance  = errors.New("invalid distance")
	ErrUnknownItemClass = errors.New("unknown item class")
	ErrInvalidPricing   = errors.New("invalid pricing configuration")
)
