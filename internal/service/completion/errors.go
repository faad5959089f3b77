package completion

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrNotApplicable     = errors.New("delivery status does not allow the effect")
	ErrUndefinedEffect   = errors.New("undefined completion effect")
)
