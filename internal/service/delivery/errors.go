package delivery

import "errors"

var (
	ErrInvalidDeliveryID    = errors.New("invalid delivery id")
	ErrInvalidCourierID     = errors.New("invalid courier id")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidPoint         = errors.New("invalid coordinates")
	ErrInvalidItemClass     = errors.New("invalid item class")
	ErrInvalidVehicle       = errors.New("invalid vehicle")
	ErrInvalidUrgency       = errors.New("invalid urgency")
	ErrInvalidScheduling    = errors.New("invalid scheduling mode")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidOverrideFee   = errors.New("invalid override fee")
	ErrInvalidStatus        = errors.New("invalid target status")
	ErrInvalidActor         = errors.New("invalid cancel actor")

	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrCourierNotFound    = errors.New("courier not found")
	ErrAlreadyTaken       = errors.New("delivery already taken")
	ErrNotPending         = errors.New("delivery is not pending")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrNotAssignedCourier = errors.New("courier is not assigned to delivery")
	ErrAlreadyDelivered   = errors.New("delivery already delivered")
	ErrAlreadyCancelled   = errors.New("delivery already cancelled")
	ErrNotOwner           = errors.New("delivery belongs to another customer")
)
