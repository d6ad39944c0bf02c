package model

import "errors"

// Common errors used across the application
var (
	// Participant errors
	ErrParticipantExists   = errors.New("participant name already taken")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNameRequired        = errors.New("name is required")

	// Message errors
	ErrMessageNotFound     = errors.New("message not found")
	ErrNotMessageAuthor    = errors.New("requester is not the message author")
	ErrAuthorNotRegistered = errors.New("author is not a registered participant")
	ErrInvalidMessageType  = errors.New("invalid message type")
	ErrRecipientRequired   = errors.New("recipient is required")
	ErrTextRequired        = errors.New("text is required")

	// Query errors
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)
