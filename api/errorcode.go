package api

import "github.com/microcollab/microcollab-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1101: store.ErrUserNotFound.Error(),

		1200: store.ErrRequestNotFound.Error(),
		1210: store.ErrOfferNotFound.Error(),
		1220: store.ErrSessionNotFound.Error(),
		1230: store.ErrNotificationNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound = errorJSON(1101)

	errorRequestNotFound      = errorJSON(1200)
	errorOfferNotFound        = errorJSON(1210)
	errorSessionNotFound      = errorJSON(1220)
	errorNotificationNotFound = errorJSON(1230)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
