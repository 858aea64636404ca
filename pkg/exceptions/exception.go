package exceptions

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// FromResponse maps a failed API response to the matching sentinel, falling
// back to a generic Exception carrying the server's message and status.
func FromResponse(statusCode int, message string) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrNotAuthorized
	case http.StatusBadRequest:
		if message == ErrTaskNotFound.Message {
			return ErrTaskNotFound
		}
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &Exception{Message: message, StatusCode: statusCode}
}
