package referral

import "errors"

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidCourierID  = errors.New("invalid courier id")
	ErrInvalidRate       = errors.New("invalid reward rate")

	ErrLinkNotFound    = errors.New("referral link not found")
	ErrPolicyNotFound  = errors.New("active reward policy not found")
	ErrCourierNotFound = errors.New("courier not found")
)
