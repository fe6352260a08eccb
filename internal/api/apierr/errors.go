package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"seabattle/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidConfig   = "INVALID_CONFIG"
	CodeMatchNotFound   = "MATCH_NOT_FOUND"
	CodeMatchFinished   = "MATCH_FINISHED"
	CodePlacementFailed = "PLACEMENT_FAILED"
	CodeMalformedGuess  = "MALFORMED_GUESS"
	CodeGuessOutOfRange = "GUESS_OUT_OF_RANGE"
	CodeAlreadyGuessed  = "ALREADY_GUESSED"
	CodeStatsNotFound   = "STATS_NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Setup failure: the requested fleet does not fit
	var placement *model.PlacementError
	if errors.As(err, &placement) {
		return &httpError{http.StatusConflict, APIError{CodePlacementFailed, placement.Error()}}
	}

	// Recoverable input failure: the guess was rejected
	var rejected *model.GuessRejectedError
	if errors.As(err, &rejected) {
		return &httpError{http.StatusBadRequest, APIError{rejectionCode(rejected.Reason), rejected.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrMatchFinished):
		return &httpError{http.StatusConflict, APIError{CodeMatchFinished, "Match is already finished"}}
	case errors.Is(err, model.ErrInvalidMatchConfig):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, "Invalid match configuration"}}
	case errors.Is(err, model.ErrStatsNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeStatsNotFound, "No recorded matches for this player"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// rejectionCode maps a guess rejection reason to its API error code
func rejectionCode(reason model.RejectReason) string {
	switch reason {
	case model.RejectMalformedLength:
		return CodeMalformedGuess
	case model.RejectOutOfRange:
		return CodeGuessOutOfRange
	case model.RejectAlreadyGuessed:
		return CodeAlreadyGuessed
	default:
		return CodeInvalidRequest
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
