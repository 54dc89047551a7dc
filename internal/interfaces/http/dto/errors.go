package dto

import "net/http"

// Error codes shared between the domain layer and the HTTP surface.
// Domain errors carry these codes directly; the HTTP layer only decides
// the status code.
const (
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request body validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when creating a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeInvalidState is used when an operation is invalid for the current state
	ErrCodeInvalidState = "INVALID_STATE"
	// ErrCodeAuthFailed is used when the external authorization service fails
	ErrCodeAuthFailed = "AUTH_FAILED"
	// ErrCodePersistence is used when the storage layer fails
	ErrCodePersistence = "PERSISTENCE_ERROR"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeAlreadyExists:   http.StatusConflict,
	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeRateLimited:     http.StatusTooManyRequests,

	// the upstream authorization service misbehaved, not the caller
	ErrCodeAuthFailed:  http.StatusBadGateway,
	ErrCodePersistence: http.StatusInternalServerError,

	// domain validation codes raised by the billing aggregates
	"INVALID_INPUT":   http.StatusBadRequest,
	"INVALID_RUC":     http.StatusBadRequest,
	"INVALID_NAME":    http.StatusBadRequest,
	"INVALID_EMAIL":   http.StatusBadRequest,
	"INVALID_ADDRESS": http.StatusBadRequest,
	"INVALID_CLIENT":  http.StatusBadRequest,
	"INVALID_ITEM":    http.StatusBadRequest,
	"INVALID_TOTAL":   http.StatusBadRequest,
	"INVALID_TOKEN":   http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
