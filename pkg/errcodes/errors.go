package errcodes

import (
	"fmt"
	"net/http"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// Duplicate returns a 400 error for an insert that collides with an existing
// identifier, e.g. Duplicate("User") -> "User ID already exists."
func Duplicate(resource string) error {
	return &Error{
		http.StatusBadRequest,
		resource + " ID already exists.",
		"duplicate_key",
	}
}

// BookUnavailable returns a 400 error for an issue request against a book
// that is missing or already on loan. The two cases are deliberately not
// distinguished.
func BookUnavailable() error {
	return &Error{
		http.StatusBadRequest,
		"Book not available.",
		"book_unavailable",
	}
}

// NoActiveLoan returns a 400 error for a return request with no open loan
// for the given user and book.
func NoActiveLoan() error {
	return &Error{
		http.StatusBadRequest,
		"Book not borrowed by the user.",
		"no_active_loan",
	}
}

// InvalidDate returns a 400 error for a value that does not parse as a
// YYYY-MM-DD calendar date.
func InvalidDate(value string) error {
	return &Error{
		http.StatusBadRequest,
		fmt.Sprintf("%q is not a valid date in the format YYYY-MM-DD.", value),
		"invalid_date",
	}
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		http.StatusNotFound,
		resource + " not found.",
		"not_found",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		http.StatusUnsupportedMediaType,
		"Unsupported Media Type",
		"unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Unknown Parameter %q", param),
		"unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_error",
	}
}

func MalformedPayload() error {
	return &Error{
		http.StatusBadRequest,
		"Malformed Payload",
		"malformed_payload",
	}
}
