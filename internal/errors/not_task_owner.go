package errors

import "net/http"

var ErrNotTaskOwner = &Exception{
	Message:    "user not authorized",
	StatusCode: http.StatusUnauthorized,
}
