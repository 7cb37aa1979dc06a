package service

import "errors"

// Error categories. The HTTP layer maps each to a status code; match them
// with [errors.Is].
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)

// Caller-facing errors. Each one matches its category with [errors.Is].
var (
	ErrInvalidToken      = &Error{Kind: ErrUnauthorized, Message: "Invalid or expired token"}
	ErrWrongCredentials  = &Error{Kind: ErrInvalidCredentials, Message: "Invalid credentials."}
	ErrWrongOTP          = &Error{Kind: ErrInvalidOTP, Message: "Invalid OTP or email."}
	ErrUserAlreadyExists = &Error{Kind: ErrConflict, Message: "User already exists."}
	ErrPasswordInUse     = &Error{Kind: ErrConflict, Message: "Password already in use. Please choose a different one."}
	ErrUserNotFound      = &Error{Kind: ErrNotFound, Message: "User not found"}
	ErrJDNotFound        = &Error{Kind: ErrNotFound, Message: "JD not found"}
	ErrFileNotFound      = &Error{Kind: ErrNotFound, Message: "File not found"}
	ErrInvalidJDID       = &Error{Kind: ErrValidation, Message: "Invalid jd_id format"}
	ErrNoResultsProvided = &Error{Kind: ErrValidation, Message: "No AI results provided"}
	ErrTooManyResults    = &Error{Kind: ErrValidation, Message: "Too many AI results in one request"}
	ErrNoFilesProvided   = &Error{Kind: ErrValidation, Message: "No files provided for upload."}
)

// Error is an error whose message is safe to return to API callers.
type Error struct {
	// Kind is the category sentinel, e.g. [ErrValidation].
	Kind    error
	Message string
	// Err is the optional underlying cause.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// invalid wraps a validation failure so that its message reaches the caller.
func invalid(err error) error {
	return &Error{Kind: ErrValidation, Message: err.Error(), Err: err}
}
