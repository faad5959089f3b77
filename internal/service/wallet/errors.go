package wallet

import "errors"

var (
	ErrInvalidCourierID    = errors.New("invalid courier id")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidPayoutID     = errors.New("invalid payout id")
	ErrInvalidSettlementID = errors.New("invalid settlement id")
	ErrInvalidAction       = errors.New("invalid payout action")

	ErrWalletNotFound          = errors.New("wallet not found")
	ErrPayoutNotFound          = errors.New("payout request not found")
	ErrBelowMinimumPayout      = errors.New("amount is below minimum payout")
	ErrInsufficientBalance     = errors.New("insufficient available balance")
	ErrPayoutInProgress        = errors.New("courier already has a payout in progress")
	ErrIllegalPayoutTransition = errors.New("illegal payout status transition")
)
