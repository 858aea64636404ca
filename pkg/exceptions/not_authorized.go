package exceptions

import "net/http"

var ErrNotAuthorized = &Exception{
	Message:    "not authorized",
	StatusCode: http.StatusUnauthorized,
}
