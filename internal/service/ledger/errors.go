package ledger

import "errors"

var (
	ErrInvalidDeliveryID    = errors.New("invalid delivery id")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrUnmappedStatus       = errors.New("delivery status has no order projection")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists for delivery")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentTerminal    = errors.New("payment is in a terminal state")

	ErrSettlementNotFound   = errors.New("settlement not found")
	ErrSettlementNotAllowed = errors.New("settlement requires a delivered delivery with an assigned courier")
	ErrSettlementNotPending = errors.New("settlement is not pending")
	ErrInsufficientPending  = errors.New("insufficient pending balance")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
)
