package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"batepapo/internal/model"
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
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeNameRequired        = "NAME_REQUIRED"
	CodeParticipantExists   = "PARTICIPANT_EXISTS"
	CodeParticipantNotFound = "PARTICIPANT_NOT_FOUND"
	CodeMessageNotFound     = "MESSAGE_NOT_FOUND"
	CodeNotMessageAuthor    = "NOT_MESSAGE_AUTHOR"
	CodeAuthorNotRegistered = "AUTHOR_NOT_REGISTERED"
	CodeInvalidMessageType  = "INVALID_MESSAGE_TYPE"
	CodeRecipientRequired   = "RECIPIENT_REQUIRED"
	CodeTextRequired        = "TEXT_REQUIRED"
	CodeInvalidLimit        = "INVALID_LIMIT"
	CodeMissingRequester    = "MISSING_REQUESTER"
	CodeInternalError       = "INTERNAL_ERROR"
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

	// Map model errors
	switch {
	case errors.Is(err, model.ErrNameRequired):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeNameRequired, "Name is required"}}
	case errors.Is(err, model.ErrParticipantExists):
		return &httpError{http.StatusConflict, APIError{CodeParticipantExists, "Participant name already taken"}}
	case errors.Is(err, model.ErrParticipantNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeParticipantNotFound, "Participant not found"}}
	case errors.Is(err, model.ErrMessageNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMessageNotFound, "Message not found"}}
	case errors.Is(err, model.ErrNotMessageAuthor):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotMessageAuthor, "Only the author may modify this message"}}
	case errors.Is(err, model.ErrAuthorNotRegistered):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeAuthorNotRegistered, "Author must be a registered participant"}}
	case errors.Is(err, model.ErrInvalidMessageType):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidMessageType, "Type must be message or private_message"}}
	case errors.Is(err, model.ErrRecipientRequired):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeRecipientRequired, "Recipient is required"}}
	case errors.Is(err, model.ErrTextRequired):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeTextRequired, "Text is required"}}
	case errors.Is(err, model.ErrInvalidLimit):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidLimit, "Limit must be a positive integer"}}

	default:
		// Store failures and anything unexpected: no internal detail leaks
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewValidationError creates a 422 error for a malformed request
func NewValidationError(message string) error {
	return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidRequest, message}}
}

// NewMissingRequesterError creates a 422 error for a missing User header
func NewMissingRequesterError() error {
	return &httpError{http.StatusUnprocessableEntity, APIError{CodeMissingRequester, "User header is required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
