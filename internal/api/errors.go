package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/api-wrapper/internal/api/shared"
	"github.com/phrazzld/api-wrapper/internal/domain"
	"github.com/phrazzld/api-wrapper/internal/platform/jsonplaceholder"
)

// Client-facing messages.
const (
	MsgPostNotFound        = "Post not found"
	MsgNoPostsForUser      = "No posts found for this user"
	MsgInternalServerError = "Internal Server Error"
	MsgNotFound            = "Not Found"
	MsgMethodNotAllowed    = "Method Not Allowed"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return http.StatusUnprocessableEntity

	case errors.Is(err, jsonplaceholder.ErrPostNotFound):
		return http.StatusNotFound

	// Upstream faults, a closed client and anything unrecognized
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalServerError
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return "Invalid request parameter"

	case errors.Is(err, jsonplaceholder.ErrPostNotFound):
		return MsgPostNotFound

	default:
		return MsgInternalServerError
	}
}

// HandleAPIError maps err to a status code and safe message, logs the
// redacted details and writes the error response.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// NotFound renders the JSON body for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgNotFound)
}

// MethodNotAllowed renders the JSON body for routes matched with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
