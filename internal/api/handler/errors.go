package handler

import (
	"net/http"

	"seabattle/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest  = apierr.CodeInvalidRequest
	CodeInvalidConfig   = apierr.CodeInvalidConfig
	CodeMatchNotFound   = apierr.CodeMatchNotFound
	CodeMatchFinished   = apierr.CodeMatchFinished
	CodePlacementFailed = apierr.CodePlacementFailed
	CodeMalformedGuess  = apierr.CodeMalformedGuess
	CodeGuessOutOfRange = apierr.CodeGuessOutOfRange
	CodeAlreadyGuessed  = apierr.CodeAlreadyGuessed
	CodeStatsNotFound   = apierr.CodeStatsNotFound
	CodeInternalError   = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
