package handler

import (
	"net/http"

	"batepapo/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeNameRequired        = apierr.CodeNameRequired
	CodeParticipantExists   = apierr.CodeParticipantExists
	CodeParticipantNotFound = apierr.CodeParticipantNotFound
	CodeMessageNotFound     = apierr.CodeMessageNotFound
	CodeNotMessageAuthor    = apierr.CodeNotMessageAuthor
	CodeAuthorNotRegistered = apierr.CodeAuthorNotRegistered
	CodeInvalidMessageType  = apierr.CodeInvalidMessageType
	CodeRecipientRequired   = apierr.CodeRecipientRequired
	CodeTextRequired        = apierr.CodeTextRequired
	CodeInvalidLimit        = apierr.CodeInvalidLimit
	CodeMissingRequester    = apierr.CodeMissingRequester
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates a 422 error for a malformed request
func NewInvalidRequestError(message string) error {
	return apierr.NewValidationError(message)
}
