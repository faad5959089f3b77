package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidTransport      = errors.New("invalid transport type")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrCourierNotFound = errors.New("courier not found")
	ErrConflict        = errors.New("resource already exists")
)

var validationErrors = []error{
	ErrMissingRequiredFields,
	ErrInvalidCourierID,
	ErrInvalidName,
	ErrInvalidStatus,
	ErrInvalidPhone,
	ErrInvalidTransport,
	ErrInvalidLocation,
}

// IsValidationError - ошибка во входных данных, а не в хранилище.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
