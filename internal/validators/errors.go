package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidInput wraps every struct-tag validation failure.
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidEmail          = errors.New("invalid email address")
	ErrEmailDomainNotAllowed = errors.New("email domain is not allowed")

	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordNoDigit   = errors.New("password must contain at least one number")
	ErrPasswordNoSpecial = errors.New("password must contain at least one special character")
)
