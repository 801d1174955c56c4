package apperror

import "fmt"

// Kind is the machine-readable error category exposed to API clients.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindValidation      Kind = "validation_error"
	KindInvalidFileType Kind = "invalid_file_type"
	KindInternal        Kind = "internal_error"
)

// Error is the application error carried from services up to the HTTP error
// handler, which maps Kind to a status code.
type Error struct {
	Kind    Kind
	Message string
	// Allowed is set for invalid-file-type errors so the response can
	// enumerate the accepted extensions.
	Allowed []string
	// Err is the wrapped cause, logged but never serialized to clients.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func InvalidFileType(message string, allowed []string) *Error {
	return &Error{Kind: KindInvalidFileType, Message: message, Allowed: allowed}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}
