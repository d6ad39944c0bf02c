package storage

import (
	"context"

	"batepapo/internal/model"
)

// Storage defines the interface for data persistence.
//
// Each call is individually atomic; the store is the serialization point
// between request handlers and the expiry reaper.
type Storage interface {
	// Participant operations.
	// CreateParticipant is a conditional insert: it fails with
	// model.ErrParticipantExists if the name is already registered, so
	// concurrent joins with the same name cannot both succeed.
	CreateParticipant(ctx context.Context, p *model.Participant) error
	SaveParticipant(ctx context.Context, p *model.Participant) error
	GetParticipant(ctx context.Context, name string) (*model.Participant, error)
	ListParticipants(ctx context.Context) ([]*model.Participant, error)
	DeleteParticipant(ctx context.Context, name string) error

	// Message operations. ListMessages returns messages in append order;
	// that order is the durable ordering used for most-recent-N queries.
	AppendMessage(ctx context.Context, msg *model.Message) error
	GetMessage(ctx context.Context, id string) (*model.Message, error)
	SaveMessage(ctx context.Context, msg *model.Message) error
	DeleteMessage(ctx context.Context, id string) error
	ListMessages(ctx context.Context) ([]*model.Message, error)
}
