package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Message:    "email already registered",
	StatusCode: http.StatusBadRequest,
}
