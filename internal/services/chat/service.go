package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"batepapo/internal/dependencies/clock"
	"batepapo/internal/model"
	"batepapo/internal/storage"
)

// Service owns the message log: posting, the per-requester visibility
// filter, and the author-only mutation guard.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new chat service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Post appends a new interactive message authored by from. The author
// must currently be registered. This is a liveness check, not
// authentication: any caller claiming a registered name may post as it.
func (s *Service) Post(ctx context.Context, from, to, text string, msgType model.MessageType) (*model.Message, error) {
	to = strings.TrimSpace(to)
	text = strings.TrimSpace(text)

	if !msgType.Interactive() {
		return nil, model.ErrInvalidMessageType
	}
	if to == "" {
		return nil, model.ErrRecipientRequired
	}
	if text == "" {
		return nil, model.ErrTextRequired
	}

	if _, err := s.storage.GetParticipant(ctx, from); err != nil {
		if errors.Is(err, model.ErrParticipantNotFound) {
			return nil, model.ErrAuthorNotRegistered
		}
		return nil, err
	}

	msg := &model.Message{
		ID:   uuid.NewString(),
		From: from,
		To:   to,
		Text: text,
		Type: msgType,
		Time: s.clock.Now().Format(model.TimeLayout),
	}
	if err := s.storage.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// ListFor returns the messages visible to requester: those they authored,
// those addressed to them, and everything sent to the broadcast target.
//
// With no limit the full visible set is returned in append order
// (oldest first). With a limit the visible set is reversed (newest
// first) and truncated. The asymmetry is contractual: limited and
// unlimited views deliberately order differently.
func (s *Service) ListFor(ctx context.Context, requester string, limit *int) ([]*model.Message, error) {
	if limit != nil && *limit <= 0 {
		return nil, model.ErrInvalidLimit
	}

	all, err := s.storage.ListMessages(ctx)
	if err != nil {
		return nil, err
	}

	visible := lo.Filter(all, func(m *model.Message, _ int) bool {
		return m.VisibleTo(requester)
	})

	if limit == nil {
		return visible, nil
	}

	visible = lo.Reverse(visible)
	if len(visible) > *limit {
		visible = visible[:*limit]
	}
	return visible, nil
}

// Update replaces the mutable fields (to, text, type) of a message.
// Only the author may edit; ID, From and Time are immutable.
func (s *Service) Update(ctx context.Context, id, requester, to, text string, msgType model.MessageType) (*model.Message, error) {
	msg, err := s.guard(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	to = strings.TrimSpace(to)
	text = strings.TrimSpace(text)

	if !msgType.Interactive() {
		return nil, model.ErrInvalidMessageType
	}
	if to == "" {
		return nil, model.ErrRecipientRequired
	}
	if text == "" {
		return nil, model.ErrTextRequired
	}

	msg.To = to
	msg.Text = text
	msg.Type = msgType
	if err := s.storage.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// Delete removes a message. Only the author may delete.
func (s *Service) Delete(ctx context.Context, id, requester string) error {
	if _, err := s.guard(ctx, id, requester); err != nil {
		return err
	}
	return s.storage.DeleteMessage(ctx, id)
}

// guard enforces the mutation rules: the message must exist (checked
// before authorship, so an unknown id is NotFound even for strangers)
// and the requester must be its author.
func (s *Service) guard(ctx context.Context, id, requester string) (*model.Message, error) {
	msg, err := s.storage.GetMessage(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.From != requester {
		return nil, model.ErrNotMessageAuthor
	}
	return msg, nil
}
