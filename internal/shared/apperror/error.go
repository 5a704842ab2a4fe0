package apperror

import "fmt"

type AppError struct {
	Code       string // e.g. INVALID_INPUT
	Message    string // safe to show to the user
	HTTPStatus int
	Err        error // optional cause
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithCause returns a copy of a catalog error carrying err as its cause, so
// errors.Is against the catalog value no longer matches but the code and
// status are preserved.
func (e *AppError) WithCause(err error) *AppError {
	return Wrap(err, e.Code, e.Message, e.HTTPStatus)
}
