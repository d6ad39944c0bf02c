package presence

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"batepapo/internal/dependencies/clock"
	"batepapo/internal/model"
	"batepapo/internal/storage"
)

// Service is the participant registry: it tracks who is present and when
// they were last seen.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new presence service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Join registers a participant under the given claimed name and records a
// broadcast status message announcing them. Names are trimmed; a name
// already held by a non-expired participant fails with
// model.ErrParticipantExists.
func (s *Service) Join(ctx context.Context, name string) (*model.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}

	now := s.clock.Now()
	p := &model.Participant{
		Name:       name,
		LastSeenAt: now,
	}

	// The store enforces name uniqueness; no separate existence check
	if err := s.storage.CreateParticipant(ctx, p); err != nil {
		return nil, err
	}

	joined := &model.Message{
		ID:   uuid.NewString(),
		From: name,
		To:   model.BroadcastTarget,
		Text: "joined",
		Type: model.MessageTypeStatus,
		Time: now.Format(model.TimeLayout),
	}
	if err := s.storage.AppendMessage(ctx, joined); err != nil {
		return nil, err
	}

	s.logger.Info("participant joined", slog.String("participant", name))
	return p, nil
}

// Heartbeat refreshes the participant's last-seen time. Unknown names
// fail with model.ErrParticipantNotFound.
func (s *Service) Heartbeat(ctx context.Context, name string) error {
	p, err := s.storage.GetParticipant(ctx, name)
	if err != nil {
		return err
	}

	p.LastSeenAt = s.clock.Now()
	return s.storage.SaveParticipant(ctx, p)
}

// List returns a snapshot of all current participants
func (s *Service) List(ctx context.Context) ([]*model.Participant, error) {
	return s.storage.ListParticipants(ctx)
}
